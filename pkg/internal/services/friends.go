package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

type FriendshipAPI interface {
	SendFriendRequest(ctx context.Context, toID string) error
	AcceptFriendRequest(ctx context.Context, fromID string) error
	RejectFriendRequest(ctx context.Context, fromID string) error
	RemoveFriend(ctx context.Context, friendID string) error
	ListFriends(ctx context.Context) ([]models.UserRef, error)
	ListFriendRequests(ctx context.Context) ([]models.UserRef, error)
}

// RequestFriend sends a friend request and flips the listed relation to
// pending so the page renders the waiting state right away.
func RequestFriend(ctx context.Context, api FriendshipAPI, users []models.UserSummary, toID string) ([]models.UserSummary, error) {
	if err := api.SendFriendRequest(ctx, toID); err != nil {
		return users, fmt.Errorf("unable to send friend request: %v", err)
	}
	return setRelation(users, toID, models.RelationPending), nil
}

func AcceptFriend(ctx context.Context, api FriendshipAPI, users []models.UserSummary, fromID string) ([]models.UserSummary, error) {
	if err := api.AcceptFriendRequest(ctx, fromID); err != nil {
		return users, fmt.Errorf("unable to accept friend request: %v", err)
	}
	return setRelation(users, fromID, models.RelationFriend), nil
}

func RejectFriend(ctx context.Context, api FriendshipAPI, users []models.UserSummary, fromID string) ([]models.UserSummary, error) {
	if err := api.RejectFriendRequest(ctx, fromID); err != nil {
		return users, fmt.Errorf("unable to reject friend request: %v", err)
	}
	return setRelation(users, fromID, models.RelationNone), nil
}

// DropFriend removes a confirmed friend after the caller confirmed the
// blocking prompt.
func DropFriend(ctx context.Context, api FriendshipAPI, friends []models.UserRef, friendID string, confirm func() bool) ([]models.UserRef, error) {
	if !confirm() {
		return friends, nil
	}
	if err := api.RemoveFriend(ctx, friendID); err != nil {
		return friends, fmt.Errorf("unable to remove friend: %v", err)
	}
	return lo.Filter(friends, func(friend models.UserRef, _ int) bool {
		return friend.ID != friendID
	}), nil
}

func setRelation(users []models.UserSummary, userID string, relation models.FriendshipRelation) []models.UserSummary {
	return lo.Map(users, func(user models.UserSummary, _ int) models.UserSummary {
		if user.ID == userID {
			user.Relation = relation
		}
		return user
	})
}
