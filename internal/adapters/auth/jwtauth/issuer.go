package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 30 * time.Minute

var ErrEmptySecret = errors.New("jwt secret is empty")

// claims: sub = username, uid = id del usuario.
type claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer firma y verifica tokens HS256 con un secreto compartido entre servicios.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (i *Issuer) Issue(id auth.Identity) (string, time.Time, error) {
	if strings.TrimSpace(id.Username) == "" {
		return "", time.Time{}, errors.New("identity username required")
	}

	now := i.now()
	exp := now.Add(i.ttl)

	c := claims{
		UserID: id.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, exp, nil
}

// Verify no consulta estado del servidor: un token es válido hasta su exp.
func (i *Issuer) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrUnauthorized, err)
	}
	if !parsed.Valid || strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	return auth.Claims{
		UserID:   c.UserID,
		Username: c.Subject,
	}, nil
}
