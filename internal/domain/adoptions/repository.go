package adoptions

import (
	"context"

	"pet-adoption/internal/domain/pets"
)

// Repository persiste la transición Available -> Adopted.
//
// MarkAdopted debe ser atómico: update condicional (solo si adopted=false)
// + insert del historial en la misma transacción. Devuelve pets.ErrNotFound
// o ErrAlreadyAdopted; en ambos casos no escribe nada.
type Repository interface {
	MarkAdopted(ctx context.Context, petID, userID string, entry HistoryEntry) error
	ListHistory(ctx context.Context, petID string) ([]HistoryEntry, error)
}

// UserLookup valida usuarios contra user-service.
// Errores: ErrUserNotFound si responde que no existe, ErrUpstreamUnavailable si
// no se pudo completar la llamada (timeout, conexión, 5xx).
type UserLookup interface {
	LookupUser(ctx context.Context, userID string) (UserRef, error)
}

// PetReader lo implementa *pets.Service.
type PetReader interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}
