package users

import "context"

// Repository: Create debe devolver ErrUsernameTaken / ErrEmailTaken ante duplicados
// y ErrNotFound en los lookups.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
}
