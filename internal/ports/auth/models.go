package auth

import "errors"

// ErrUnauthorized cubre token ausente, mal formado, con firma inválida o expirado.
var ErrUnauthorized = errors.New("unauthorized")

// Claims representa la información extraída del token.
type Claims struct {
	UserID   string
	Username string
}

// Identity es lo que se firma al emitir un token (login exitoso).
type Identity struct {
	UserID   string
	Username string
}
