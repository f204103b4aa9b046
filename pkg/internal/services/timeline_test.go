package services

import (
	"context"
	"errors"
	"testing"

	"github.com/linkup-social/linkup/pkg/internal/gateway"
	"github.com/linkup-social/linkup/pkg/internal/models"
)

type fakeTimelineAPI struct {
	fakeReactionAPI
	profile     models.Profile
	ownPosts    []models.Post
	publicPosts []models.Post
	userPosts   map[string][]models.Post
	users       map[string]models.Profile
	failPublic  bool
}

func (f *fakeTimelineAPI) Profile(_ context.Context) (models.Profile, []models.Post, error) {
	return f.profile, f.ownPosts, nil
}

func (f *fakeTimelineAPI) ListPublicPosts(_ context.Context) ([]models.Post, error) {
	if f.failPublic {
		return nil, errors.New("boom")
	}
	return f.publicPosts, nil
}

func (f *fakeTimelineAPI) ListFriendsPosts(_ context.Context) ([]models.Post, error) {
	return f.publicPosts, nil
}

func (f *fakeTimelineAPI) ListUserPosts(_ context.Context, userID string) ([]models.Post, error) {
	return f.userPosts[userID], nil
}

func (f *fakeTimelineAPI) GetUser(_ context.Context, userID string) (models.Profile, error) {
	if userID == f.profile.ID {
		return models.Profile{}, gateway.ErrOwnProfile
	}
	user, ok := f.users[userID]
	if !ok {
		return models.Profile{}, errors.New("no such user")
	}
	return user, nil
}

func newFakeTimelineAPI() *fakeTimelineAPI {
	return &fakeTimelineAPI{
		fakeReactionAPI: fakeReactionAPI{records: map[string][]models.ReactionRecord{
			"p1": {record(viewer.ID, models.ReactionLike)},
			"p2": {},
		}},
		profile:     models.Profile{ID: viewer.ID, Name: viewer.Name},
		ownPosts:    []models.Post{{ID: "p2", Author: models.UserRef{ID: viewer.ID}}},
		publicPosts: []models.Post{{ID: "p1", Author: models.UserRef{ID: "other-1"}}, {ID: "p2", Author: models.UserRef{ID: viewer.ID}}},
		userPosts: map[string][]models.Post{
			"other-1": {{ID: "p1", Author: models.UserRef{ID: "other-1"}}},
		},
		users: map[string]models.Profile{
			"other-1": {ID: "other-1", Name: "Other"},
		},
	}
}

func TestLoadHomeTimeline(t *testing.T) {
	api := newFakeTimelineAPI()

	timeline, err := LoadHomeTimeline(context.Background(), api)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if timeline.Viewer.ID != viewer.ID {
		t.Fatalf("wrong viewer: %q", timeline.Viewer.ID)
	}
	if len(timeline.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(timeline.Posts))
	}
	if timeline.Posts[0].UserReaction == nil || timeline.Posts[0].UserReaction.Type != models.ReactionLike {
		t.Fatalf("reaction state missing on p1")
	}
}

func TestLoadHomeTimelineAborts(t *testing.T) {
	api := newFakeTimelineAPI()
	api.failPublic = true

	if _, err := LoadHomeTimeline(context.Background(), api); err == nil {
		t.Fatalf("a failed post load must surface, not hang")
	}
}

func TestLoadProfileTimeline(t *testing.T) {
	api := newFakeTimelineAPI()

	timeline, err := LoadProfileTimeline(context.Background(), api)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(timeline.Posts) != 1 || timeline.Posts[0].ID != "p2" {
		t.Fatalf("profile timeline should use the envelope posts: %+v", timeline.Posts)
	}
	if timeline.Posts[0].UserReaction == nil {
		t.Fatalf("reaction state missing on own post")
	}
}

func TestLoadUserTimeline(t *testing.T) {
	api := newFakeTimelineAPI()

	timeline, err := LoadUserTimeline(context.Background(), api, "other-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if timeline.Target == nil || timeline.Target.ID != "other-1" {
		t.Fatalf("target user missing")
	}
	if len(timeline.Posts) != 1 || timeline.Posts[0].ID != "p1" {
		t.Fatalf("unexpected posts: %+v", timeline.Posts)
	}
}

func TestLoadUserTimelineFallsBackToOwnProfile(t *testing.T) {
	api := newFakeTimelineAPI()

	timeline, err := LoadUserTimeline(context.Background(), api, viewer.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if timeline.Target != nil {
		t.Fatalf("own profile must not carry a target user")
	}
	if len(timeline.Posts) != 1 || timeline.Posts[0].ID != "p2" {
		t.Fatalf("expected the own-profile posts: %+v", timeline.Posts)
	}
}
