package session

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

type state struct {
	Token string `json:"token"`
	Theme string `json:"theme"`
}

// Session holds the bearer token and the theme flag, the only two pieces of
// client state that survive a restart. Every gateway call reads the token
// through here instead of reaching into the file on its own.
type Session struct {
	mu     sync.RWMutex
	path   string
	state  state
	closed bool
}

func Open(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("unable to read session file: %v", err)
	}
	if err := jsoniter.Unmarshal(raw, &s.state); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Session file is corrupted, starting logged out.")
		s.state = state{}
	}

	return s, nil
}

func (s *Session) persist() error {
	raw, err := jsoniter.Marshal(s.state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("unable to write session file: %v", err)
	}
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ""
	}
	return s.state.Token
}

func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.closed = false
	return s.persist()
}

func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Theme == "" {
		return "light"
	}
	return s.state.Theme
}

func (s *Session) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	return s.persist()
}

// Logout clears the token and closes the session under one lock, so a page
// racing the teardown reads either the full session or none of it.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	s.closed = true
	return s.persist()
}

// UserID returns the subject of the stored token. Claims are read without
// signature verification; the backend stays the authority on the token, this
// only saves a profile round trip for identity checks.
func (s *Session) UserID() string {
	claims := s.claims()
	if claims == nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (s *Session) Expired() bool {
	claims := s.claims()
	if claims == nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Session) LoggedIn() bool {
	return s.Token() != "" && !s.Expired()
}

func (s *Session) claims() jwt.MapClaims {
	raw := s.Token()
	if raw == "" {
		return nil
	}

	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}
