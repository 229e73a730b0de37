package jwtauth

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueThenVerify(t *testing.T) {
	iss, err := New("secret", 0)
	require.NoError(t, err)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return now }

	token, exp, err := iss.Issue(auth.Identity{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(DefaultTTL), exp)

	c, err := iss.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, "u-1", c.UserID)
}

func TestIssuer_Verify_Expired(t *testing.T) {
	iss, err := New("secret", time.Minute)
	require.NoError(t, err)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return now }
	token, _, err := iss.Issue(auth.Identity{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	iss.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	a, _ := New("secret-a", 0)
	b, _ := New("secret-b", 0)

	token, _, err := a.Issue(auth.Identity{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestIssuer_Verify_RejectsMalformedAndEmpty(t *testing.T) {
	iss, _ := New("secret", 0)

	for _, tok := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		_, err := iss.Verify(context.Background(), tok)
		assert.ErrorIs(t, err, auth.ErrUnauthorized, "token %q", tok)
	}
}

func TestIssuer_Verify_RejectsOtherAlgorithms(t *testing.T) {
	iss, _ := New("secret", 0)

	// alg=none nunca debe aceptarse.
	c := claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestIssuer_Verify_RequiresExpiry(t *testing.T) {
	iss, _ := New("secret", 0)

	c := claims{UserID: "u-1", RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("  ", 0)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
