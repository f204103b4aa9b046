package pages

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/linkup-social/linkup/pkg/internal/services"
)

func (p *Pages) Friends(ctx context.Context) error {
	friends, err := p.API.ListFriends(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}
	requests, err := p.API.ListFriendRequests(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	if len(requests) > 0 {
		fmt.Fprintln(p.Out, color.New(color.Bold).Sprint("Friend requests"))
		for _, request := range requests {
			fmt.Fprintf(p.Out, "  %s  (%s)\n", request.Name, request.ID)
		}
	}

	fmt.Fprintln(p.Out, color.New(color.Bold).Sprint("Friends"))
	if len(friends) == 0 {
		fmt.Fprintln(p.Out, "  No friends yet.")
		return nil
	}
	for _, friend := range friends {
		fmt.Fprintf(p.Out, "  %s  (%s)\n", friend.Name, friend.ID)
	}
	return nil
}

func (p *Pages) RemoveFriend(ctx context.Context, friendID string) error {
	friends, err := p.API.ListFriends(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	friends, err = services.DropFriend(ctx, p.API, friends, friendID, func() bool {
		return p.In.Confirm("Remove this friend?")
	})
	if err != nil {
		p.notice(err)
		return nil
	}

	p.success(fmt.Sprintf("%d friends left.", len(friends)))
	return nil
}

func (p *Pages) AddFriend(ctx context.Context, toID string) error {
	users, err := p.API.ListUsers(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	if _, err := services.RequestFriend(ctx, p.API, users, toID); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Friend request sent.")
	return nil
}

func (p *Pages) AcceptRequest(ctx context.Context, fromID string) error {
	users, err := p.API.ListUsers(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	if _, err := services.AcceptFriend(ctx, p.API, users, fromID); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Friend request accepted.")
	return nil
}

func (p *Pages) RejectRequest(ctx context.Context, fromID string) error {
	users, err := p.API.ListUsers(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	if _, err := services.RejectFriend(ctx, p.API, users, fromID); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Friend request rejected.")
	return nil
}

func (p *Pages) UserList(ctx context.Context) error {
	users, err := p.API.ListUsers(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	for _, user := range users {
		fmt.Fprintf(p.Out, "%s  (%s)  relation: %s\n", user.Name, user.ID, user.Relation)
	}
	return nil
}

func (p *Pages) SearchUsers(ctx context.Context, query string) error {
	users, err := p.API.SearchUsers(ctx, query)
	if err != nil {
		p.notice(err)
		return nil
	}

	if len(users) == 0 {
		fmt.Fprintln(p.Out, "No users match.")
		return nil
	}
	for _, user := range users {
		fmt.Fprintf(p.Out, "%s  (%s)  relation: %s\n", user.Name, user.ID, user.Relation)
	}
	return nil
}

// Comments shows a post's thread; own comments are marked, since only those
// can be deleted from here.
func (p *Pages) Comments(ctx context.Context, postID string) error {
	thread, err := services.LoadCommentThread(ctx, p.API, postID)
	if err != nil {
		p.notice(err)
		return nil
	}

	if len(thread.Comments) == 0 {
		fmt.Fprintln(p.Out, "No comments yet. Be the first to comment!")
		return nil
	}
	for _, comment := range thread.Comments {
		marker := " "
		if comment.User.ID == thread.ViewerID {
			marker = "*"
		}
		fmt.Fprintf(p.Out, "%s %s: %s  (%s)\n", marker, comment.User.Name, comment.Text, comment.ID)
	}
	return nil
}

func (p *Pages) AddComment(ctx context.Context, postID string) error {
	text, err := p.In.Line("Comment")
	if err != nil {
		return err
	}

	thread, err := services.LoadCommentThread(ctx, p.API, postID)
	if err != nil {
		p.notice(err)
		return nil
	}
	if _, err := services.AddComment(ctx, p.API, thread, text); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Comment added.")
	return nil
}

func (p *Pages) DeleteComment(ctx context.Context, postID, commentID string) error {
	thread, err := services.LoadCommentThread(ctx, p.API, postID)
	if err != nil {
		p.notice(err)
		return nil
	}

	if _, err := services.DeleteComment(ctx, p.API, thread, commentID, func() bool {
		return p.In.Confirm("Delete this comment?")
	}); err != nil {
		p.notice(err)
		return nil
	}
	return nil
}

// Reactions is the view-reactions page: everyone who reacted to a post.
func (p *Pages) Reactions(ctx context.Context, postID string) error {
	records, _, err := p.API.ListReactions(ctx, postID)
	if err != nil {
		p.notice(err)
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(p.Out, "No reactions yet.")
		return nil
	}
	for _, record := range records {
		fmt.Fprintf(p.Out, "%s  %s\n", record.User.Name, record.Type)
	}
	return nil
}
