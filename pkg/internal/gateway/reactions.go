package gateway

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

// AddReaction sets the viewer's reaction on a post. The backend keeps one
// record per (post, user), so sending a different type replaces the old one.
func (c *Client) AddReaction(ctx context.Context, postID string, kind models.ReactionType) error {
	payload := map[string]any{"postId": postID, "type": kind}
	return c.sendJSON(ctx, http.MethodPost, "/reaction", payload, nil)
}

func (c *Client) RemoveReaction(ctx context.Context, postID string) error {
	payload := map[string]any{"postId": postID}
	return c.sendJSON(ctx, http.MethodDelete, "/reaction", payload, nil)
}

// ListReactions fetches a post's reaction records. The envelope also names
// the post's author, which the reactions page links back to.
func (c *Client) ListReactions(ctx context.Context, postID string) ([]models.ReactionRecord, string, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/reaction/"+postID, nil, "")
	if err != nil {
		return nil, "", err
	}

	var records []models.ReactionRecord
	if len(envelope.Data) > 0 {
		if err := jsoniter.Unmarshal(envelope.Data, &records); err != nil {
			return nil, "", fmt.Errorf("unable to decode reaction list: %v", err)
		}
	}
	return records, envelope.AuthorID, nil
}
