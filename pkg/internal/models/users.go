package models

// UserRef is the embedded author shape the backend attaches to posts,
// comments and reaction records.
type UserRef struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

type FriendshipRelation = string

const (
	RelationNone    = FriendshipRelation("none")
	RelationPending = FriendshipRelation("pending")
	RelationFriend  = FriendshipRelation("friend")
)

// UserSummary is a directory row: a user plus their relation to the viewer.
type UserSummary struct {
	ID           string             `json:"_id"`
	Name         string             `json:"name"`
	ProfileImage string             `json:"profileImage"`
	Relation     FriendshipRelation `json:"relation"`
}

// Profile is the full account record, the viewer's own or another user's.
type Profile struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

func (p Profile) Ref() UserRef {
	return UserRef{ID: p.ID, Name: p.Name, ProfileImage: p.ProfileImage}
}
