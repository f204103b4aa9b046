package pages

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Form validation happens before anything touches the network; a failed rule
// blocks submission with an inline notice.

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterForm struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

type ResetPasswordForm struct {
	Email       string `validate:"required,email"`
	OTP         string `validate:"required"`
	NewPassword string `validate:"required,min=6"`
}

type PostForm struct {
	Content    string `validate:"required,min=3"`
	Visibility string `validate:"required,oneof=public friends private"`
}

type ProfileForm struct {
	Name string `validate:"required,min=2"`
	Bio  string `validate:"max=300"`
}

func (f LoginForm) Validate() error { return validate.Struct(f) }

func (f RegisterForm) Validate() error { return validate.Struct(f) }

func (f ForgotPasswordForm) Validate() error { return validate.Struct(f) }

func (f ResetPasswordForm) Validate() error { return validate.Struct(f) }

func (f PostForm) Validate() error { return validate.Struct(f) }

func (f ProfileForm) Validate() error { return validate.Struct(f) }
