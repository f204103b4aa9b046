package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

type CommentAPI interface {
	ListComments(ctx context.Context, postID string) (models.CommentThread, error)
	AddComment(ctx context.Context, postID, text string) error
	DeleteComment(ctx context.Context, postID, commentID string) error
}

func LoadCommentThread(ctx context.Context, api CommentAPI, postID string) (models.CommentThread, error) {
	thread, err := api.ListComments(ctx, postID)
	if err != nil {
		return thread, fmt.Errorf("unable to load comments: %v", err)
	}
	return thread, nil
}

// AddComment posts a comment and reloads the thread; ordering stays
// server-determined. Blank input is dropped before it reaches the network.
func AddComment(ctx context.Context, api CommentAPI, thread models.CommentThread, text string) (models.CommentThread, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return thread, nil
	}
	if err := api.AddComment(ctx, thread.PostID, text); err != nil {
		return thread, fmt.Errorf("unable to add comment: %v", err)
	}
	return LoadCommentThread(ctx, api, thread.PostID)
}

// DeleteComment removes one comment after the caller confirmed, then reloads
// the thread. Declining the confirmation leaves the thread untouched.
func DeleteComment(ctx context.Context, api CommentAPI, thread models.CommentThread, commentID string, confirm func() bool) (models.CommentThread, error) {
	if !confirm() {
		return thread, nil
	}
	if err := api.DeleteComment(ctx, thread.PostID, commentID); err != nil {
		return thread, fmt.Errorf("unable to delete comment: %v", err)
	}
	return LoadCommentThread(ctx, api, thread.PostID)
}
