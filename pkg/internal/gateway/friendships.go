package gateway

import (
	"context"
	"net/http"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

func (c *Client) SendFriendRequest(ctx context.Context, toID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/friend/request", map[string]any{"toId": toID}, nil)
}

func (c *Client) AcceptFriendRequest(ctx context.Context, fromID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/friend/accept", map[string]any{"fromId": fromID}, nil)
}

func (c *Client) RejectFriendRequest(ctx context.Context, fromID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/friend/reject", map[string]any{"fromId": fromID}, nil)
}

func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/friend/remove", map[string]any{"friendId": friendID}, nil)
}

func (c *Client) ListFriends(ctx context.Context) ([]models.UserRef, error) {
	var friends []models.UserRef
	err := c.getJSON(ctx, "/friend/all", &friends)
	return friends, err
}

func (c *Client) ListFriendRequests(ctx context.Context) ([]models.UserRef, error) {
	var requests []models.UserRef
	err := c.getJSON(ctx, "/friend/requests", &requests)
	return requests, err
}
