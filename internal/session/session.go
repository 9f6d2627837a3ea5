// Package session persists the signed-in user's token and identity between
// command invocations, the way the web client keeps userToken/userRole/
// userName/userData in browser storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	cryptoutil "hrmc/internal/platform/crypto"
)

var ErrNoToken = errors.New("auth token missing: please login first")

type Claims struct {
	UserID   string `json:"uid"`
	RoleName string `json:"role"`
	FullName string `json:"name"`
	jwt.RegisteredClaims
}

type state struct {
	UserToken string          `json:"userToken"`
	UserRole  string          `json:"userRole"`
	UserName  string          `json:"userName"`
	UserData  json.RawMessage `json:"userData,omitempty"`
}

type Store struct {
	path   string
	crypto *cryptoutil.Service
	state  state
}

// Open loads the session file if it exists. A missing file is a valid,
// logged-out session.
func Open(path string, crypto *cryptoutil.Service) (*Store, error) {
	s := &Store{path: path, crypto: crypto}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	plain, err := crypto.Decrypt(raw)
	if err != nil {
		return nil, fmt.Errorf("decrypt session file: %w", err)
	}
	if err := json.Unmarshal(plain, &s.state); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

func (s *Store) Token() (string, error) {
	if strings.TrimSpace(s.state.UserToken) == "" {
		return "", ErrNoToken
	}
	return s.state.UserToken, nil
}

func (s *Store) Role() string {
	return s.state.UserRole
}

func (s *Store) Name() string {
	return s.state.UserName
}

func (s *Store) User() json.RawMessage {
	return s.state.UserData
}

func (s *Store) LoggedIn() bool {
	return strings.TrimSpace(s.state.UserToken) != ""
}

// SetLogin stores the login result and persists it. Role and name fall back
// to the token claims when the caller passes them empty.
func (s *Store) SetLogin(token, role, name string, userData json.RawMessage) error {
	if claims, err := DecodeClaims(token); err == nil {
		if role == "" {
			role = claims.RoleName
		}
		if name == "" {
			name = claims.FullName
		}
	}
	s.state = state{UserToken: token, UserRole: role, UserName: name, UserData: userData}
	return s.save()
}

// SetUser replaces the cached userData blob, e.g. after a profile save.
func (s *Store) SetUser(userData json.RawMessage) error {
	s.state.UserData = userData
	return s.save()
}

// Clear wipes the session. Used on logout and on a 401 from any call.
func (s *Store) Clear() error {
	s.state = state{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *Store) save() error {
	plain, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	sealed, err := s.crypto.Encrypt(plain)
	if err != nil {
		return fmt.Errorf("encrypt session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// DecodeClaims reads the token payload without verifying the signature. The
// client has no signing secret; verification is the backend's job, the claims
// are only used for display and the role gate.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired reports whether the token claims carry an exp in the past. Tokens
// without exp are treated as live; the backend still rejects them with 401
// if it disagrees.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}
