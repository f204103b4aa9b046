package models

import "slices"

type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionWow   ReactionType = "wow"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

var ReactionTypes = []ReactionType{
	ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry,
}

func (t ReactionType) Valid() bool {
	return slices.Contains(ReactionTypes, t)
}

// ReactionRecord is one reaction as the backend reports it, keyed by the
// reacting user.
type ReactionRecord struct {
	Type ReactionType `json:"type"`
	User UserRef      `json:"userId"`
}

// ReactionEntry is the flattened row kept on a post's Likes list.
type ReactionEntry struct {
	Type         ReactionType `json:"type"`
	UserID       string       `json:"userId"`
	Name         string       `json:"name"`
	ProfileImage string       `json:"profileImage"`
}

// UserReaction is the viewer's own reaction on a post. An empty Type means
// the reaction state was resolved and the viewer has none.
type UserReaction struct {
	Type   ReactionType `json:"type"`
	UserID string       `json:"userId"`
}

func (r UserReaction) None() bool {
	return r.Type == ""
}
