package gateway

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

// PostDraft is the multipart payload for creating or editing a post. A nil
// Image means "no new file": on edit the backend then keeps the image it
// already stores.
type PostDraft struct {
	Content    string
	Visibility models.PostVisibility
	ImageName  string
	Image      []byte
}

func (d PostDraft) encode(extra map[string]string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range extra {
		if err := writer.WriteField(field, value); err != nil {
			return nil, "", err
		}
	}
	if err := writer.WriteField("content", d.Content); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("visibility", d.Visibility); err != nil {
		return nil, "", err
	}
	if len(d.Image) > 0 {
		part, err := writer.CreateFormFile("images", d.ImageName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(d.Image); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func (c *Client) CreatePost(ctx context.Context, draft PostDraft) error {
	body, contentType, err := draft.encode(nil)
	if err != nil {
		return fmt.Errorf("unable to encode post: %v", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/post/", body, contentType)
	return err
}

func (c *Client) EditPost(ctx context.Context, postID string, draft PostDraft) error {
	body, contentType, err := draft.encode(map[string]string{"postId": postID})
	if err != nil {
		return fmt.Errorf("unable to encode post: %v", err)
	}
	_, err = c.do(ctx, http.MethodPut, "/post/", body, contentType)
	return err
}

// DeletePost removes a post and returns the backend's confirmation message.
func (c *Client) DeletePost(ctx context.Context, postID string) (string, error) {
	envelope, err := c.do(ctx, http.MethodDelete, "/post/"+postID, nil, "")
	if err != nil {
		return "", err
	}
	var message string
	_ = decodeData(envelope, "/post/"+postID, &message)
	return message, nil
}

func (c *Client) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.getJSON(ctx, "/post/all", &posts)
	return posts, err
}

func (c *Client) ListFriendsPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.getJSON(ctx, "/post/friends", &posts)
	return posts, err
}

func (c *Client) ListUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := c.getJSON(ctx, "/post/user/"+userID, &posts)
	return posts, err
}

func (c *Client) GetPost(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	err := c.getJSON(ctx, "/post/"+postID, &post)
	return post, err
}
