package users

import "time"

// User es el registro persistido. PasswordHash nunca se serializa hacia afuera.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string

	CreatedAt time.Time
}
