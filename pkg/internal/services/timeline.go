package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/linkup-social/linkup/pkg/internal/cache"
	"github.com/linkup-social/linkup/pkg/internal/gateway"
	"github.com/linkup-social/linkup/pkg/internal/models"
)

// TimelineAPI is the gateway surface the timeline loaders consume.
type TimelineAPI interface {
	ReactionSource
	Profile(ctx context.Context) (models.Profile, []models.Post, error)
	ListPublicPosts(ctx context.Context) ([]models.Post, error)
	ListFriendsPosts(ctx context.Context) ([]models.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]models.Post, error)
	GetUser(ctx context.Context, userID string) (models.Profile, error)
}

// Timeline is the merged view model a post page renders: the viewer, the
// profile being looked at (nil outside the user-profile page) and the posts
// with reaction state attached.
type Timeline struct {
	Viewer models.Profile
	Target *models.Profile
	Posts  []models.Post
}

const viewerCacheKey = "viewer-profile"

// viewerIdentity loads the viewer's profile, keeping it cached for a few
// minutes so page navigation does not refetch identity every time.
func viewerIdentity(ctx context.Context, api TimelineAPI) (models.Profile, error) {
	if localCache.S == nil {
		profile, _, err := api.Profile(ctx)
		return profile, err
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)

	if hit, err := marshal.Get(ctx, viewerCacheKey, new(models.Profile)); err == nil {
		return *(hit.(*models.Profile)), nil
	}

	profile, _, err := api.Profile(ctx)
	if err != nil {
		return profile, err
	}

	_ = marshal.Set(
		ctx,
		viewerCacheKey,
		profile,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"viewer"}),
	)
	return profile, nil
}

// WarmViewerIdentity refreshes the cached viewer profile; the boot job calls
// it periodically so page loads rarely pay for the identity round trip.
func WarmViewerIdentity(ctx context.Context, api TimelineAPI) error {
	FlushViewerIdentity(ctx)
	_, err := viewerIdentity(ctx, api)
	return err
}

// FlushViewerIdentity drops the cached viewer profile. Called on logout and
// after a profile edit.
func FlushViewerIdentity(ctx context.Context) {
	if localCache.S == nil {
		return
	}
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Invalidate(ctx, store.WithInvalidateTags([]string{"viewer"}))
}

// LoadHomeTimeline is the home feed: all public posts with reaction state.
func LoadHomeTimeline(ctx context.Context, api TimelineAPI) (Timeline, error) {
	viewer, err := viewerIdentity(ctx, api)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load viewer profile: %v", err)
	}

	posts, err := api.ListPublicPosts(ctx)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load public posts: %v", err)
	}

	return Timeline{
		Viewer: viewer,
		Posts:  AttachReactions(ctx, api, posts, viewer.Ref()),
	}, nil
}

// LoadFriendsTimeline is the friends feed, same merge over a narrower source.
func LoadFriendsTimeline(ctx context.Context, api TimelineAPI) (Timeline, error) {
	viewer, err := viewerIdentity(ctx, api)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load viewer profile: %v", err)
	}

	posts, err := api.ListFriendsPosts(ctx)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load friends posts: %v", err)
	}

	return Timeline{
		Viewer: viewer,
		Posts:  AttachReactions(ctx, api, posts, viewer.Ref()),
	}, nil
}

// LoadProfileTimeline is the viewer's own page; their posts arrive inside the
// profile envelope, so this skips the separate post listing.
func LoadProfileTimeline(ctx context.Context, api TimelineAPI) (Timeline, error) {
	viewer, posts, err := api.Profile(ctx)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load profile: %v", err)
	}

	return Timeline{
		Viewer: viewer,
		Posts:  AttachReactions(ctx, api, posts, viewer.Ref()),
	}, nil
}

// LoadUserTimeline is another user's page. When the requested user turns out
// to be the viewer, it falls through to the own-profile view, mirroring the
// backend's marker answer.
func LoadUserTimeline(ctx context.Context, api TimelineAPI, userID string) (Timeline, error) {
	viewer, err := viewerIdentity(ctx, api)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load viewer profile: %v", err)
	}

	target, err := api.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gateway.ErrOwnProfile) {
			return LoadProfileTimeline(ctx, api)
		}
		return Timeline{}, fmt.Errorf("unable to load user: %v", err)
	}

	posts, err := api.ListUserPosts(ctx, userID)
	if err != nil {
		return Timeline{}, fmt.Errorf("unable to load user posts: %v", err)
	}

	return Timeline{
		Viewer: viewer,
		Target: &target,
		Posts:  AttachReactions(ctx, api, posts, viewer.Ref()),
	}, nil
}
