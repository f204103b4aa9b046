package models

type Comment struct {
	ID     string  `json:"_id"`
	User   UserRef `json:"userId"`
	Text   string  `json:"text"`
	PostID string  `json:"postId,omitempty"`
}

// CommentThread is a post's comment list together with the identities the
// backend returns alongside it: the viewer (to mark own comments deletable)
// and the post author (for navigation back to their profile).
type CommentThread struct {
	PostID   string
	Comments []Comment
	ViewerID string
	AuthorID string
}
