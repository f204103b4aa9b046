package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/linkup-social/linkup/pkg/internal/gateway"
)

func TestCreatePostMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/post/" {
			t.Errorf("wrong route: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if got := r.FormValue("content"); got != "hello world" {
			t.Errorf("wrong content: %q", got)
		}
		if got := r.FormValue("visibility"); got != "friends" {
			t.Errorf("wrong visibility: %q", got)
		}
		if len(r.MultipartForm.File["images"]) != 1 {
			t.Errorf("expected one image part")
		}
		w.Write([]byte(`{"status":"success"}`))
	})

	err := client.CreatePost(context.Background(), gateway.PostDraft{
		Content:    "hello world",
		Visibility: "friends",
		ImageName:  "pic.png",
		Image:      []byte{0x89, 0x50},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
}

// Editing without a new file must not send an images part at all; the backend
// keeps the stored image only when the field is absent.
func TestEditPostWithoutImageKeepsStoredOne(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/post/" {
			t.Errorf("wrong route: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if got := r.FormValue("postId"); got != "p1" {
			t.Errorf("wrong postId: %q", got)
		}
		if len(r.MultipartForm.File["images"]) != 0 {
			t.Errorf("no image was attached, none must be sent")
		}
		w.Write([]byte(`{"status":"success"}`))
	})

	err := client.EditPost(context.Background(), "p1", gateway.PostDraft{
		Content:    "edited content",
		Visibility: "public",
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
}

func TestDeletePostReturnsMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/post/p1" {
			t.Errorf("wrong route: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","data":"Post deleted successfully"}`))
	})

	message, err := client.DeletePost(context.Background(), "p1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if message != "Post deleted successfully" {
		t.Fatalf("wrong message: %q", message)
	}
}

func TestListUserPostsRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/post/user/u1" {
			t.Errorf("wrong path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","data":[{"_id":"p1","content":"hi","visibility":"public"}]}`))
	})

	posts, err := client.ListUserPosts(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}
