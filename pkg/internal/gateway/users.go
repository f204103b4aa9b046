package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

// ErrOwnProfile is returned by GetUser when the requested user is the viewer;
// the backend answers with a marker instead of the user record and the pages
// route to the own-profile view.
var ErrOwnProfile = errors.New("requested user is the viewer")

// Profile fetches the viewer's account together with their own posts, which
// arrive in the same envelope.
func (c *Client) Profile(ctx context.Context) (models.Profile, []models.Post, error) {
	var data struct {
		MyProfile models.Profile `json:"myProfile"`
		Posts     []models.Post  `json:"posts"`
	}
	if err := c.getJSON(ctx, "/user/profile", &data); err != nil {
		return models.Profile{}, nil, err
	}
	return data.MyProfile, data.Posts, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (models.Profile, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/user/"+userID, nil, "")
	if err != nil {
		return models.Profile{}, err
	}

	var marker string
	if jsoniter.Unmarshal(envelope.Data, &marker) == nil && marker == "this is your profile" {
		return models.Profile{}, ErrOwnProfile
	}

	var user models.Profile
	if err := jsoniter.Unmarshal(envelope.Data, &user); err != nil {
		return user, fmt.Errorf("unable to decode user: %v", err)
	}
	return user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := c.getJSON(ctx, "/user/all", &users)
	return users, err
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := c.getJSON(ctx, "/user/search?query="+url.QueryEscape(query), &users)
	return users, err
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	payload := map[string]any{"name": name, "email": email, "password": password}
	return c.sendJSON(ctx, http.MethodPost, "/user/register", payload, nil)
}

// Login exchanges credentials for a bearer token. Storing it is the caller's
// concern.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	payload := map[string]any{"email": email, "password": password}
	if err := c.sendJSON(ctx, http.MethodPost, "/user/login", payload, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/user/logout", nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.sendJSON(ctx, http.MethodPost, "/user/forgot-password", map[string]any{"email": email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	payload := map[string]any{"email": email, "otp": otp, "newPassword": newPassword}
	return c.sendJSON(ctx, http.MethodPost, "/user/reset-password", payload, nil)
}

// ProfileDraft is the multipart payload for profile edits. A nil Image keeps
// the stored picture, same as post edits.
type ProfileDraft struct {
	Name      string
	Bio       string
	ImageName string
	Image     []byte
}

func (c *Client) EditProfile(ctx context.Context, draft ProfileDraft) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("name", draft.Name); err != nil {
		return err
	}
	if err := writer.WriteField("bio", draft.Bio); err != nil {
		return err
	}
	if len(draft.Image) > 0 {
		part, err := writer.CreateFormFile("profileImage", draft.ImageName)
		if err != nil {
			return err
		}
		if _, err := part.Write(draft.Image); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	_, err := c.do(ctx, http.MethodPut, "/user/profile", body, writer.FormDataContentType())
	return err
}
