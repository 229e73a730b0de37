package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens firmados con expiración absoluta.
type TokenIssuer interface {
	Issue(id Identity) (token string, expiresAt time.Time, err error)
}
