package services

import (
	"context"
	"errors"
	"testing"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

type fakeCommentAPI struct {
	thread   models.CommentThread
	addCalls int
	failAdd  bool
}

func (f *fakeCommentAPI) ListComments(_ context.Context, postID string) (models.CommentThread, error) {
	thread := f.thread
	thread.PostID = postID
	return thread, nil
}

func (f *fakeCommentAPI) AddComment(_ context.Context, postID, text string) error {
	f.addCalls++
	if f.failAdd {
		return errors.New("boom")
	}
	f.thread.Comments = append(f.thread.Comments, models.Comment{
		ID:   "new",
		Text: text,
		User: models.UserRef{ID: f.thread.ViewerID},
	})
	return nil
}

func (f *fakeCommentAPI) DeleteComment(_ context.Context, postID, commentID string) error {
	kept := f.thread.Comments[:0:0]
	for _, comment := range f.thread.Comments {
		if comment.ID != commentID {
			kept = append(kept, comment)
		}
	}
	f.thread.Comments = kept
	return nil
}

func threeCommentThread() models.CommentThread {
	return models.CommentThread{
		PostID:   "p1",
		ViewerID: "viewer-1",
		AuthorID: "author-1",
		Comments: []models.Comment{
			{ID: "c1", Text: "first", User: models.UserRef{ID: "other-1"}},
			{ID: "c2", Text: "second", User: models.UserRef{ID: "viewer-1"}},
			{ID: "c3", Text: "third", User: models.UserRef{ID: "other-2"}},
		},
	}
}

func TestDeleteCommentKeepsOrder(t *testing.T) {
	api := &fakeCommentAPI{thread: threeCommentThread()}
	thread, err := LoadCommentThread(context.Background(), api, "p1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	thread, err = DeleteComment(context.Background(), api, thread, "c2", func() bool { return true })
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(thread.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(thread.Comments))
	}
	if thread.Comments[0].ID != "c1" || thread.Comments[1].ID != "c3" {
		t.Fatalf("relative order lost: %+v", thread.Comments)
	}
}

func TestDeleteCommentDeclined(t *testing.T) {
	api := &fakeCommentAPI{thread: threeCommentThread()}
	thread, _ := LoadCommentThread(context.Background(), api, "p1")

	thread, err := DeleteComment(context.Background(), api, thread, "c2", func() bool { return false })
	if err != nil {
		t.Fatalf("declined delete errored: %v", err)
	}
	if len(thread.Comments) != 3 {
		t.Fatalf("declined confirmation must not delete: got %d comments", len(thread.Comments))
	}
}

func TestAddCommentSkipsBlankInput(t *testing.T) {
	api := &fakeCommentAPI{thread: threeCommentThread()}
	thread, _ := LoadCommentThread(context.Background(), api, "p1")

	thread, err := AddComment(context.Background(), api, thread, "   ")
	if err != nil {
		t.Fatalf("blank comment errored: %v", err)
	}
	if api.addCalls != 0 {
		t.Fatalf("blank comment must never reach the network")
	}

	thread, err = AddComment(context.Background(), api, thread, " hello ")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(thread.Comments) != 4 {
		t.Fatalf("expected 4 comments after add, got %d", len(thread.Comments))
	}
	if thread.Comments[3].Text != "hello" {
		t.Fatalf("comment text should be trimmed, got %q", thread.Comments[3].Text)
	}
}
