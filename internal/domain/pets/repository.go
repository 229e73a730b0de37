package pets

import "context"

// Repository devuelve ErrNotFound para ids inexistentes.
// Update solo persiste nombre/especie/edad: el estado de adopción lo cambia adoptions.
// Delete devuelve ErrHasHistory si la mascota tiene historial de adopción.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter Filter) ([]Pet, error)
	ListByOwner(ctx context.Context, userID string) ([]Pet, error)
}
