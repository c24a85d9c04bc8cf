package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{}).Authenticated())
	assert.True(t, (&Session{Token: "tok"}).Authenticated())
}

func TestStaticToken(t *testing.T) {
	tok, err := StaticToken("abc").Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestFileTokenStore(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "token")}

	// Missing file yields an empty token, not an error.
	tok, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Save("tok-123"))
	tok, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)

	// Rotation through the file takes effect on the next read.
	require.NoError(t, store.Save("tok-456\n"))
	tok, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", tok)

	require.NoError(t, store.Clear())
	tok, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)

	// Clearing again is a no-op.
	require.NoError(t, store.Clear())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "U1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Hour)), now))
	assert.True(t, TokenExpired("not-a-jwt", now))

	// Tokens with no exp claim are treated as expired.
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "U1"})
	signed, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.True(t, TokenExpired(signed, now))
}
