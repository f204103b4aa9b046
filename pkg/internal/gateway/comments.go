package gateway

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

func (c *Client) ListComments(ctx context.Context, postID string) (models.CommentThread, error) {
	thread := models.CommentThread{PostID: postID}

	envelope, err := c.do(ctx, http.MethodGet, "/comments/"+postID, nil, "")
	if err != nil {
		return thread, err
	}

	if len(envelope.Data) > 0 {
		if err := jsoniter.Unmarshal(envelope.Data, &thread.Comments); err != nil {
			return thread, fmt.Errorf("unable to decode comment list: %v", err)
		}
	}
	thread.ViewerID = envelope.UserID
	thread.AuthorID = envelope.AuthorID
	return thread, nil
}

func (c *Client) AddComment(ctx context.Context, postID, text string) error {
	payload := map[string]any{"text": text}
	return c.sendJSON(ctx, http.MethodPost, "/comments/"+postID, payload, nil)
}

func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/comments/"+postID+"/"+commentID, nil, "")
	return err
}
