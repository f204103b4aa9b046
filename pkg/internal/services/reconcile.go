package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/linkup-social/linkup/pkg/internal/models"
)

// ReactionSource is the slice of the gateway the reconciliation needs. The
// gateway client satisfies it; tests substitute a fake backend.
type ReactionSource interface {
	ListReactions(ctx context.Context, postID string) ([]models.ReactionRecord, string, error)
	AddReaction(ctx context.Context, postID string, kind models.ReactionType) error
	RemoveReaction(ctx context.Context, postID string) error
}

// AttachReactions merges each post with its independently fetched reaction
// records: Likes becomes the full aggregate list and UserReaction the
// viewer's own record, or empty when they have none. Fetches run concurrently
// and all settle before the result is returned. A post whose fetch failed
// passes through unchanged, so one bad post never blanks the whole feed.
func AttachReactions(ctx context.Context, api ReactionSource, posts []models.Post, viewer models.UserRef) []models.Post {
	merged := make([]models.Post, len(posts))

	var wg sync.WaitGroup
	for idx, post := range posts {
		wg.Add(1)
		go func(idx int, post models.Post) {
			defer wg.Done()

			records, _, err := api.ListReactions(ctx, post.ID)
			if err != nil {
				log.Debug().Err(err).Str("post", post.ID).
					Msg("Reaction fetch failed, leaving post without reaction state...")
				merged[idx] = post
				return
			}

			post.Likes = lo.Map(records, func(record models.ReactionRecord, _ int) models.ReactionEntry {
				return models.ReactionEntry{
					Type:         record.Type,
					UserID:       record.User.ID,
					Name:         record.User.Name,
					ProfileImage: record.User.ProfileImage,
				}
			})

			own := models.UserReaction{UserID: viewer.ID}
			if record, found := lo.Find(records, func(record models.ReactionRecord) bool {
				return record.User.ID == viewer.ID
			}); found {
				own.Type = record.Type
			}
			post.UserReaction = &own

			merged[idx] = post
		}(idx, post)
	}
	wg.Wait()

	return merged
}

// ApplyReaction reflects the viewer's reaction choice on the post and issues
// the matching backend call. Reacting with the current type toggles it off;
// any other type adds or replaces. The mutation is optimistic, but if the
// call fails the previous reaction state is restored and returned, so the
// view never keeps a reaction the backend refused.
func ApplyReaction(ctx context.Context, api ReactionSource, post models.Post, viewer models.UserRef, kind models.ReactionType) (models.Post, error) {
	prevLikes := post.Likes
	prevOwn := post.UserReaction

	if post.UserReaction != nil && post.UserReaction.Type == kind {
		post.UserReaction = &models.UserReaction{UserID: viewer.ID}
		post.Likes = lo.Filter(prevLikes, func(entry models.ReactionEntry, _ int) bool {
			return entry.UserID != viewer.ID
		})

		if err := api.RemoveReaction(ctx, post.ID); err != nil {
			post.Likes = prevLikes
			post.UserReaction = prevOwn
			return post, fmt.Errorf("unable to remove reaction: %v", err)
		}
		return post, nil
	}

	post.UserReaction = &models.UserReaction{Type: kind, UserID: viewer.ID}
	post.Likes = slices.Clone(prevLikes)
	if _, idx, found := lo.FindIndexOf(post.Likes, func(entry models.ReactionEntry) bool {
		return entry.UserID == viewer.ID
	}); found {
		post.Likes[idx].Type = kind
	} else {
		post.Likes = append(post.Likes, models.ReactionEntry{
			Type:         kind,
			UserID:       viewer.ID,
			Name:         viewer.Name,
			ProfileImage: viewer.ProfileImage,
		})
	}

	if err := api.AddReaction(ctx, post.ID, kind); err != nil {
		post.Likes = prevLikes
		post.UserReaction = prevOwn
		return post, fmt.Errorf("unable to set reaction: %v", err)
	}
	return post, nil
}

// ChooseReaction is ApplyReaction plus closing the reaction picker, which
// happens whether or not the call went through.
func ChooseReaction(ctx context.Context, api ReactionSource, post models.Post, viewer models.UserRef, kind models.ReactionType) (models.Post, error) {
	next, err := ApplyReaction(ctx, api, post, viewer, kind)
	next.PickerOpen = false
	return next, err
}

// ReplacePost swaps the post with the same identifier for its updated value.
// Posts are treated as values: mutations produce a new post which replaces
// the old one here instead of editing shared list items in place.
func ReplacePost(posts []models.Post, next models.Post) []models.Post {
	return lo.Map(posts, func(post models.Post, _ int) models.Post {
		if post.ID == next.ID {
			return next
		}
		return post
	})
}

// RemovePost drops a post from the rendered list after a confirmed delete.
func RemovePost(posts []models.Post, postID string) []models.Post {
	return lo.Filter(posts, func(post models.Post, _ int) bool {
		return post.ID != postID
	})
}
