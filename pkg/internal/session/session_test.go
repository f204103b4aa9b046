package session_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/linkup-social/linkup/pkg/internal/session"
)

func mintToken(t *testing.T, subject string, expiry time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	return token
}

func TestTokenPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := session.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	token := mintToken(t, "user-1", time.Now().Add(time.Hour))
	if err := first.SetToken(token); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	second, err := session.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if second.Token() != token {
		t.Fatalf("token lost across opens")
	}
	if second.UserID() != "user-1" {
		t.Fatalf("wrong subject: %q", second.UserID())
	}
	if !second.LoggedIn() {
		t.Fatalf("fresh token should count as logged in")
	}
}

func TestExpiredTokenReadsAsLoggedOut(t *testing.T) {
	sess, _ := session.Open(filepath.Join(t.TempDir(), "session.json"))
	_ = sess.SetToken(mintToken(t, "user-1", time.Now().Add(-time.Minute)))

	if !sess.Expired() {
		t.Fatalf("token should read as expired")
	}
	if sess.LoggedIn() {
		t.Fatalf("expired session must not count as logged in")
	}
}

func TestMalformedTokenReadsAsLoggedOut(t *testing.T) {
	sess, _ := session.Open(filepath.Join(t.TempDir(), "session.json"))
	_ = sess.SetToken("not-a-jwt")

	if sess.UserID() != "" {
		t.Fatalf("malformed token must yield no subject")
	}
	if sess.LoggedIn() {
		t.Fatalf("malformed token must not count as logged in")
	}
}

func TestLogoutClearsTokenDurably(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	sess, _ := session.Open(path)
	_ = sess.SetToken(mintToken(t, "user-1", time.Now().Add(time.Hour)))

	if err := sess.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sess.Token() != "" {
		t.Fatalf("token still readable after logout")
	}

	reopened, _ := session.Open(path)
	if reopened.Token() != "" {
		t.Fatalf("logout did not persist")
	}
}

func TestThemeDefaultsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	sess, _ := session.Open(path)

	if sess.Theme() != "light" {
		t.Fatalf("default theme should be light, got %q", sess.Theme())
	}
	if err := sess.SetTheme("dark"); err != nil {
		t.Fatalf("set theme failed: %v", err)
	}

	reopened, _ := session.Open(path)
	if reopened.Theme() != "dark" {
		t.Fatalf("theme did not persist")
	}
}
