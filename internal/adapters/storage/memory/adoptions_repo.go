package memory

import (
	"context"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

type historyRow = adoptions.HistoryEntry

// adoptionRepo es una vista sobre PetRepo: comparte mapa y mutex.
type adoptionRepo struct {
	pets *PetRepo
}

func NewAdoptionRepo(petRepo *PetRepo) adoptions.Repository {
	return &adoptionRepo{pets: petRepo}
}

func (r *adoptionRepo) MarkAdopted(ctx context.Context, petID, userID string, entry adoptions.HistoryEntry) error {
	r.pets.mu.Lock()
	defer r.pets.mu.Unlock()

	p, ok := r.pets.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted {
		return adoptions.ErrAlreadyAdopted
	}

	owner := userID
	p.Adopted = true
	p.UserID = &owner
	p.UpdatedAt = entry.AdoptedAt

	r.pets.byID[petID] = p
	r.pets.history[petID] = append(r.pets.history[petID], entry)
	return nil
}

func (r *adoptionRepo) ListHistory(ctx context.Context, petID string) ([]adoptions.HistoryEntry, error) {
	r.pets.mu.RLock()
	defer r.pets.mu.RUnlock()

	rows := r.pets.history[petID]
	out := make([]adoptions.HistoryEntry, len(rows))
	copy(out, rows)
	return out, nil
}
