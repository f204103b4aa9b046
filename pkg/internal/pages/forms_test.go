package pages

import "testing"

func TestFormValidation(t *testing.T) {
	cases := []struct {
		name string
		form interface{ Validate() error }
		ok   bool
	}{
		{"login ok", LoginForm{Email: "a@b.co", Password: "secret"}, true},
		{"login bad email", LoginForm{Email: "nope", Password: "secret"}, false},
		{"login empty password", LoginForm{Email: "a@b.co"}, false},

		{"register ok", RegisterForm{Name: "Ana", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, true},
		{"register mismatch", RegisterForm{Name: "Ana", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2"}, false},
		{"register short password", RegisterForm{Name: "Ana", Email: "a@b.co", Password: "123", ConfirmPassword: "123"}, false},
		{"register short name", RegisterForm{Name: "A", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, false},

		{"reset ok", ResetPasswordForm{Email: "a@b.co", OTP: "123456", NewPassword: "secret1"}, true},
		{"reset missing otp", ResetPasswordForm{Email: "a@b.co", NewPassword: "secret1"}, false},

		{"post ok", PostForm{Content: "hello", Visibility: "public"}, true},
		{"post short content", PostForm{Content: "hi", Visibility: "public"}, false},
		{"post bad visibility", PostForm{Content: "hello", Visibility: "everyone"}, false},

		{"profile ok", ProfileForm{Name: "Ana"}, true},
		{"profile short name", ProfileForm{Name: "A"}, false},
	}

	for _, c := range cases {
		err := c.form.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: expected ok, got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}
