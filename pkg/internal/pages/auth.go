package pages

import (
	"context"

	"github.com/linkup-social/linkup/pkg/internal/services"
)

func (p *Pages) Login(ctx context.Context) error {
	email, err := p.In.Line("Email")
	if err != nil {
		return err
	}
	password, err := p.In.Secret("Password")
	if err != nil {
		return err
	}

	form := LoginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		p.warn("Enter a valid email and a password.")
		return nil
	}

	token, err := p.API.Login(ctx, form.Email, form.Password)
	if err != nil {
		p.notice(err)
		return nil
	}
	if err := p.Session.SetToken(token); err != nil {
		return err
	}

	p.success("Logged in.")
	return nil
}

func (p *Pages) Register(ctx context.Context) error {
	name, err := p.In.Line("Name")
	if err != nil {
		return err
	}
	email, err := p.In.Line("Email")
	if err != nil {
		return err
	}
	password, err := p.In.Secret("New password")
	if err != nil {
		return err
	}
	confirm, err := p.In.Secret("Confirm password")
	if err != nil {
		return err
	}

	form := RegisterForm{Name: name, Email: email, Password: password, ConfirmPassword: confirm}
	if err := form.Validate(); err != nil {
		p.warn("Check the form: name and valid email required, passwords must match and be at least 6 characters.")
		return nil
	}

	if err := p.API.Register(ctx, form.Name, form.Email, form.Password); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Account created, you can log in now.")
	return nil
}

func (p *Pages) ForgotPassword(ctx context.Context) error {
	email, err := p.In.Line("Email")
	if err != nil {
		return err
	}

	form := ForgotPasswordForm{Email: email}
	if err := form.Validate(); err != nil {
		p.warn("Enter a valid email.")
		return nil
	}

	if err := p.API.ForgotPassword(ctx, form.Email); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Check your inbox for the reset code.")
	return nil
}

func (p *Pages) ResetPassword(ctx context.Context) error {
	email, err := p.In.Line("Email")
	if err != nil {
		return err
	}
	otp, err := p.In.Line("Reset code")
	if err != nil {
		return err
	}
	password, err := p.In.Secret("New password")
	if err != nil {
		return err
	}

	form := ResetPasswordForm{Email: email, OTP: otp, NewPassword: password}
	if err := form.Validate(); err != nil {
		p.warn("Enter a valid email, the reset code and a password of at least 6 characters.")
		return nil
	}

	if err := p.API.ResetPassword(ctx, form.Email, form.OTP, form.NewPassword); err != nil {
		p.notice(err)
		return nil
	}

	p.success("Password updated, log in with the new one.")
	return nil
}

// Logout tells the backend goodbye best-effort, then tears the local session
// down: cached identity first, then the token, in one atomic session step.
func (p *Pages) Logout(ctx context.Context) error {
	if !p.In.Confirm("Log out?") {
		return nil
	}

	if err := p.API.Logout(ctx); err != nil {
		p.warn("Backend logout failed, clearing the local session anyway.")
	}
	services.FlushViewerIdentity(ctx)
	if err := p.Session.Logout(); err != nil {
		return err
	}

	p.success("Logged out.")
	return nil
}
