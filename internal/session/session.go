// Package session holds the authenticated user's identity and bearer token.
// The session is passed explicitly to whatever needs it; there is no ambient
// auth state.
package session

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gigboard/internal/models"
)

// Session is the cached identity for the current login. Created at login,
// destroyed at logout.
type Session struct {
	User  *models.User
	Token string
}

// Authenticated reports whether the session carries a usable token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// TokenSource adapts the in-memory session token to the resource client's
// per-call token lookup.
func (s *Session) TokenSource() StaticToken {
	if s == nil {
		return ""
	}
	return StaticToken(s.Token)
}

// StaticToken is a fixed-token source: the session's in-memory token, or a
// literal token in tests.
type StaticToken string

// Token returns the static token.
func (t StaticToken) Token() (string, error) { return string(t), nil }

// FileTokenStore persists the bearer token in a local file. The token is
// read on every call, so an external rotation of the file takes effect
// immediately.
type FileTokenStore struct {
	Path string
}

// Token reads the stored token. A missing file is not an error: it yields an
// empty token and the request goes out unauthenticated.
func (s *FileTokenStore) Token() (string, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the token with owner-only permissions.
func (s *FileTokenStore) Save(token string) error {
	if err := os.WriteFile(s.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an already-empty store is a no-op.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// TokenExpired inspects the token's exp claim without verifying the
// signature. Tokens that do not parse or carry no expiry are treated as
// expired; the backend remains the authority either way.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}
