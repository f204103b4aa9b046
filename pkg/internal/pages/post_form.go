package pages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linkup-social/linkup/pkg/internal/gateway"
	"github.com/linkup-social/linkup/pkg/internal/services"
)

func (p *Pages) promptDraft(defaultContent, defaultVisibility string) (gateway.PostDraft, bool, error) {
	content, err := p.In.Line("Content")
	if err != nil {
		return gateway.PostDraft{}, false, err
	}
	if content == "" {
		content = defaultContent
	}

	visibility, err := p.In.Line("Visibility (public/friends/private)")
	if err != nil {
		return gateway.PostDraft{}, false, err
	}
	if visibility == "" {
		visibility = defaultVisibility
	}

	form := PostForm{Content: content, Visibility: visibility}
	if err := form.Validate(); err != nil {
		p.warn("Content must be at least 3 characters and visibility one of public, friends or private.")
		return gateway.PostDraft{}, false, nil
	}

	draft := gateway.PostDraft{Content: form.Content, Visibility: form.Visibility}

	// Empty path means no new file; on edit the backend keeps the stored one.
	imagePath, err := p.In.Line("Image path (optional)")
	if err != nil {
		return gateway.PostDraft{}, false, err
	}
	if imagePath != "" {
		raw, err := os.ReadFile(imagePath)
		if err != nil {
			p.warn(fmt.Sprintf("Cannot read %s, submitting without a new image.", imagePath))
		} else {
			draft.ImageName = filepath.Base(imagePath)
			draft.Image = raw
		}
	}

	return draft, true, nil
}

func (p *Pages) AddPost(ctx context.Context) error {
	draft, ok, err := p.promptDraft("", "public")
	if err != nil || !ok {
		return err
	}

	if err := p.API.CreatePost(ctx, draft); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Post published.")
	return nil
}

func (p *Pages) EditPost(ctx context.Context, postID string) error {
	post, err := p.API.GetPost(ctx, postID)
	if err != nil {
		p.notice(err)
		return nil
	}
	if !post.OwnedBy(p.Session.UserID()) {
		p.warn("Only the author can edit a post.")
		return nil
	}

	draft, ok, err := p.promptDraft(post.Content, post.Visibility)
	if err != nil || !ok {
		return err
	}

	if err := p.API.EditPost(ctx, postID, draft); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Post updated.")
	return nil
}

func (p *Pages) EditProfile(ctx context.Context) error {
	profile, _, err := p.API.Profile(ctx)
	if err != nil {
		p.notice(err)
		return nil
	}

	name, err := p.In.Line("Name")
	if err != nil {
		return err
	}
	if name == "" {
		name = profile.Name
	}
	bio, err := p.In.Line("Bio")
	if err != nil {
		return err
	}
	if bio == "" {
		bio = profile.Bio
	}

	form := ProfileForm{Name: name, Bio: bio}
	if err := form.Validate(); err != nil {
		p.warn("Name must be at least 2 characters; bio tops out at 300.")
		return nil
	}

	draft := gateway.ProfileDraft{Name: form.Name, Bio: form.Bio}
	imagePath, err := p.In.Line("Profile image path (optional)")
	if err != nil {
		return err
	}
	if imagePath != "" {
		raw, err := os.ReadFile(imagePath)
		if err != nil {
			p.warn(fmt.Sprintf("Cannot read %s, keeping the current image.", imagePath))
		} else {
			draft.ImageName = filepath.Base(imagePath)
			draft.Image = raw
		}
	}

	if err := p.API.EditProfile(ctx, draft); err != nil {
		p.notice(err)
		return nil
	}

	// The cached identity now shows stale data.
	services.FlushViewerIdentity(ctx)

	p.success("Profile updated.")
	return nil
}
