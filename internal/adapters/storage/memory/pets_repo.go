package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/pets"
)

// PetRepo guarda mascotas e historial bajo el mismo mutex, así la adopción
// (update + append) es atómica sin coordinación extra.
type PetRepo struct {
	mu      sync.RWMutex
	byID    map[string]pets.Pet
	history map[string][]historyRow // petID -> entradas en orden de inserción
}

func NewPetRepo() *PetRepo {
	return &PetRepo{
		byID:    make(map[string]pets.Pet),
		history: make(map[string][]historyRow),
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

// Update solo toca el perfil; adopted/user_id quedan como están.
func (r *PetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}
	cur.Name = p.Name
	cur.Species = p.Species
	cur.Age = p.Age
	cur.UpdatedAt = p.UpdatedAt
	r.byID[p.ID] = cur
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	if len(r.history[id]) > 0 {
		return pets.ErrHasHistory
	}
	delete(r.byID, id)
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *PetRepo) List(ctx context.Context, filter pets.Filter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if filter.Match(p) {
			out = append(out, clonePet(p))
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *PetRepo) ListByOwner(ctx context.Context, userID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnedBy(userID) {
			out = append(out, clonePet(p))
		}
	}
	sortByCreated(out)
	return out, nil
}

// Orden estable por created_at asc (id como desempate).
func sortByCreated(out []pets.Pet) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

// clonePet evita compartir el puntero UserID con el caller.
func clonePet(p pets.Pet) pets.Pet {
	if p.UserID != nil {
		v := *p.UserID
		p.UserID = &v
	}
	return p
}
