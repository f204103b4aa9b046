package models

import "time"

type PostVisibility = string

const (
	VisibilityPublic  = PostVisibility("public")
	VisibilityFriends = PostVisibility("friends")
	VisibilityPrivate = PostVisibility("private")
)

// Post is the client view of a backend post. Likes and UserReaction are
// derived locally by the reconciliation service and stay nil until it ran for
// this post; the UI flags are transient and reset on every reload.
type Post struct {
	ID         string         `json:"_id"`
	Author     UserRef        `json:"authorId"`
	Content    string         `json:"content"`
	Images     []string       `json:"images"`
	Visibility PostVisibility `json:"visibility"`
	CreatedAt  time.Time      `json:"createdAt"`
	Comments   []Comment      `json:"comments"`

	Likes        []ReactionEntry `json:"likes,omitempty"`
	UserReaction *UserReaction   `json:"userReaction,omitempty"`

	MenuOpen   bool `json:"-"`
	PickerOpen bool `json:"-"`
}

func (p Post) OwnedBy(userID string) bool {
	return p.Author.ID == userID
}

// Image returns the post's attached image, if any. The backend stores at most
// one per post even though the wire shape is a list.
func (p Post) Image() (string, bool) {
	if len(p.Images) == 0 {
		return "", false
	}
	return p.Images[0], true
}
