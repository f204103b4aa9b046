package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/linkup-social/linkup/pkg/internal/models"
	"github.com/linkup-social/linkup/pkg/internal/services"
)

const shellHelp = `Commands:
  login, register, forgot, reset, logout
  home, friendsfeed, profile, user <userId>
  react <postId> <type>, delete <postId>
  post, edit <postId>, editprofile
  comments <postId>, comment <postId>, rmcomment <postId> <commentId>
  reactions <postId>, friends, users, search <query>
  addfriend <userId>, accept <userId>, reject <userId>, unfriend <userId>
  theme <light|dark>, help, quit`

// Run drives the page shells from a command prompt until the user quits or
// input ends. The last rendered timeline stays current so react and delete
// work against what is on screen.
func (p *Pages) Run(ctx context.Context) {
	var current *services.Timeline

	for {
		input, err := p.In.Line("linkup")
		if err != nil {
			return
		}
		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "help":
			fmt.Fprintln(p.Out, shellHelp)
		case "quit", "exit":
			return

		case "login":
			err = p.Login(ctx)
		case "register":
			err = p.Register(ctx)
		case "forgot":
			err = p.ForgotPassword(ctx)
		case "reset":
			err = p.ResetPassword(ctx)
		case "logout":
			err = p.Logout(ctx)

		case "home":
			current, err = p.Home(ctx)
		case "friendsfeed":
			current, err = p.FriendsFeed(ctx)
		case "profile":
			current, err = p.Profile(ctx)
		case "user":
			if len(args) < 1 {
				p.warn("Usage: user <userId>")
				continue
			}
			current, err = p.UserProfile(ctx, args[0])

		case "react":
			if len(args) < 2 {
				p.warn("Usage: react <postId> <type>")
				continue
			}
			if current == nil {
				p.warn("Open a feed first.")
				continue
			}
			p.React(ctx, current, args[0], models.ReactionType(args[1]))
		case "delete":
			if len(args) < 1 {
				p.warn("Usage: delete <postId>")
				continue
			}
			if current == nil {
				p.warn("Open a feed first.")
				continue
			}
			p.DeletePost(ctx, current, args[0])

		case "post":
			err = p.AddPost(ctx)
		case "edit":
			if len(args) < 1 {
				p.warn("Usage: edit <postId>")
				continue
			}
			err = p.EditPost(ctx, args[0])
		case "editprofile":
			err = p.EditProfile(ctx)

		case "comments":
			if len(args) < 1 {
				p.warn("Usage: comments <postId>")
				continue
			}
			err = p.Comments(ctx, args[0])
		case "comment":
			if len(args) < 1 {
				p.warn("Usage: comment <postId>")
				continue
			}
			err = p.AddComment(ctx, args[0])
		case "rmcomment":
			if len(args) < 2 {
				p.warn("Usage: rmcomment <postId> <commentId>")
				continue
			}
			err = p.DeleteComment(ctx, args[0], args[1])
		case "reactions":
			if len(args) < 1 {
				p.warn("Usage: reactions <postId>")
				continue
			}
			err = p.Reactions(ctx, args[0])

		case "friends":
			err = p.Friends(ctx)
		case "addfriend":
			if len(args) < 1 {
				p.warn("Usage: addfriend <userId>")
				continue
			}
			err = p.AddFriend(ctx, args[0])
		case "accept":
			if len(args) < 1 {
				p.warn("Usage: accept <userId>")
				continue
			}
			err = p.AcceptRequest(ctx, args[0])
		case "reject":
			if len(args) < 1 {
				p.warn("Usage: reject <userId>")
				continue
			}
			err = p.RejectRequest(ctx, args[0])
		case "unfriend":
			if len(args) < 1 {
				p.warn("Usage: unfriend <userId>")
				continue
			}
			err = p.RemoveFriend(ctx, args[0])
		case "users":
			err = p.UserList(ctx)
		case "search":
			if len(args) < 1 {
				p.warn("Usage: search <query>")
				continue
			}
			err = p.SearchUsers(ctx, strings.Join(args, " "))

		case "theme":
			if len(args) < 1 || (args[0] != "light" && args[0] != "dark") {
				p.warn("Usage: theme <light|dark>")
				continue
			}
			err = p.Session.SetTheme(args[0])

		default:
			p.warn(fmt.Sprintf("Unknown command %q, try help.", command))
		}

		if err != nil {
			return
		}
	}
}
