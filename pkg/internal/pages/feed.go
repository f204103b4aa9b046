package pages

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/linkup-social/linkup/pkg/internal/models"
	"github.com/linkup-social/linkup/pkg/internal/services"
)

func (p *Pages) Home(ctx context.Context) (*services.Timeline, error) {
	timeline, err := services.LoadHomeTimeline(ctx, p.API)
	if err != nil {
		p.notice(err)
		return nil, nil
	}
	p.renderTimeline(&timeline)
	return &timeline, nil
}

func (p *Pages) FriendsFeed(ctx context.Context) (*services.Timeline, error) {
	timeline, err := services.LoadFriendsTimeline(ctx, p.API)
	if err != nil {
		p.notice(err)
		return nil, nil
	}
	p.renderTimeline(&timeline)
	return &timeline, nil
}

func (p *Pages) Profile(ctx context.Context) (*services.Timeline, error) {
	timeline, err := services.LoadProfileTimeline(ctx, p.API)
	if err != nil {
		p.notice(err)
		return nil, nil
	}
	p.renderTimeline(&timeline)
	return &timeline, nil
}

func (p *Pages) UserProfile(ctx context.Context, userID string) (*services.Timeline, error) {
	timeline, err := services.LoadUserTimeline(ctx, p.API, userID)
	if err != nil {
		p.notice(err)
		return nil, nil
	}
	p.renderTimeline(&timeline)
	return &timeline, nil
}

// React applies the viewer's reaction choice to one post of the rendered
// timeline and swaps the updated post value into the list.
func (p *Pages) React(ctx context.Context, timeline *services.Timeline, postID string, kind models.ReactionType) {
	if !kind.Valid() {
		p.warn(fmt.Sprintf("Unknown reaction %q.", kind))
		return
	}

	post, found := lo.Find(timeline.Posts, func(post models.Post) bool {
		return post.ID == postID
	})
	if !found {
		p.warn("No such post on this page.")
		return
	}

	next, err := services.ChooseReaction(ctx, p.API, post, timeline.Viewer.Ref(), kind)
	timeline.Posts = services.ReplacePost(timeline.Posts, next)
	if err != nil {
		p.notice(err)
	}
}

// DeletePost is owner-only and guarded by a blocking confirmation before the
// destructive call fires.
func (p *Pages) DeletePost(ctx context.Context, timeline *services.Timeline, postID string) {
	post, found := lo.Find(timeline.Posts, func(post models.Post) bool {
		return post.ID == postID
	})
	if !found {
		p.warn("No such post on this page.")
		return
	}
	if !post.OwnedBy(timeline.Viewer.ID) {
		p.warn("Only the author can delete a post.")
		return
	}
	if !p.In.Confirm("Delete this post? You won't be able to revert this!") {
		return
	}

	message, err := p.API.DeletePost(ctx, postID)
	if err != nil {
		p.notice(err)
		return
	}
	timeline.Posts = services.RemovePost(timeline.Posts, postID)

	if message == "" {
		message = "Post deleted."
	}
	p.success(message)
}

func (p *Pages) renderTimeline(timeline *services.Timeline) {
	if timeline.Target != nil {
		fmt.Fprintln(p.Out, color.New(color.Bold).Sprintf("%s's posts", timeline.Target.Name))
	}
	if len(timeline.Posts) == 0 {
		fmt.Fprintln(p.Out, "No posts to show.")
		return
	}

	for _, post := range timeline.Posts {
		p.renderPost(post)
	}
}

func (p *Pages) renderPost(post models.Post) {
	header := fmt.Sprintf("%s · %s · %s",
		color.New(color.Bold).Sprint(post.Author.Name),
		post.CreatedAt.Local().Format("2006-01-02 15:04"),
		post.Visibility,
	)
	fmt.Fprintln(p.Out, header)
	fmt.Fprintln(p.Out, post.Content)
	if image, ok := post.Image(); ok {
		fmt.Fprintln(p.Out, color.New(color.Faint).Sprintf("[image] %s", image))
	}

	summary := fmt.Sprintf("%d reactions · %d comments", len(post.Likes), len(post.Comments))
	if post.UserReaction != nil && !post.UserReaction.None() {
		summary += fmt.Sprintf(" · you: %s", post.UserReaction.Type)
	}
	fmt.Fprintf(p.Out, "%s  (%s)\n\n", summary, post.ID)
}
