// Package session owns the bearer credential for the authenticated identity.
// It replaces ambient global token storage with an explicit object that is
// passed into the API client.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// User is the authenticated identity as reported by the auth service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session holds the current bearer token and user. Safe for concurrent use.
// An expired token is treated as absent so callers fail fast with an auth
// error instead of sending a doomed request.
type Session struct {
	mu    sync.RWMutex
	token string
	user  User
	path  string

	// now is swappable for expiry tests.
	now func() time.Time
}

// New returns an in-memory session with no credential.
func New() *Session {
	return &Session{now: time.Now}
}

// Open returns a session backed by a token file. If the file holds a valid,
// unexpired token, the session starts authenticated and the user identity is
// restored from the token claims. A path of "" disables persistence.
func Open(path string) (*Session, error) {
	s := &Session{path: path, now: time.Now}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file %s: %w", path, err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" || s.expired(token) {
		// Stale credential, drop it like a fresh login would.
		_ = os.Remove(path)
		return s, nil
	}

	user, _ := decodeUser(token)
	s.token = token
	s.user = user
	return s, nil
}

// Set installs a new credential, persisting it when the session is
// file-backed.
func (s *Session) Set(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear forgets the credential and removes the token file if present.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "" when absent or expired.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.expired(s.token) {
		return ""
	}
	return s.token
}

// User returns the authenticated identity.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a usable credential is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

type claims struct {
	Exp   float64 `json:"exp"`
	User  *User   `json:"user"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
}

// expired decodes the JWT exp claim without verifying the signature; the
// client only needs to know when to stop presenting the token. A token whose
// payload cannot be decoded, or that carries no exp claim, is not treated as
// expired; the server remains the authority and will answer 401.
func (s *Session) expired(token string) bool {
	c, err := decodeClaims(token)
	if err != nil || c.Exp == 0 {
		return false
	}
	return float64(s.now().Unix()) >= c.Exp
}

func decodeClaims(token string) (claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return claims{}, errors.New("not a JWT")
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return claims{}, fmt.Errorf("decoding claims: %w", err)
	}
	var c claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return claims{}, fmt.Errorf("parsing claims: %w", err)
	}
	return c, nil
}

// decodeUser restores the identity embedded in the token. Some backends nest
// it under a "user" claim, others put the fields at the top level.
func decodeUser(token string) (User, error) {
	c, err := decodeClaims(token)
	if err != nil {
		return User{}, err
	}
	if c.User != nil {
		return *c.User, nil
	}
	return User{ID: c.ID, Name: c.Name, Email: c.Email}, nil
}
