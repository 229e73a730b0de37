package pets

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrAdoptionStateLocked: adopted/user_id solo cambian vía POST /pets/{id}/adopt.
	ErrAdoptionStateLocked = errors.New("adoption state can only change through adoption")

	// ErrHasHistory: el historial de adopción es inmutable, no se borra la mascota.
	ErrHasHistory = errors.New("pet has adoption history")
)

// MaxAge es el tope de pets.age (INTEGER en Postgres).
const MaxAge = math.MaxInt32

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
	Age     int

	Adopted bool
	UserID  *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := NormalizeSpecies(in.Species)
	if name == "" || species == "" || in.Age < 0 || in.Age > MaxAge {
		return Pet{}, ErrInvalidInput
	}

	userID, err := normalizeOwner(in.Adopted, in.UserID)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      name,
		Species:   species,
		Age:       in.Age,
		Adopted:   in.Adopted,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *Service) Search(ctx context.Context, filter Filter) ([]Pet, error) {
	if filter.Species != nil {
		sp := NormalizeSpecies(string(*filter.Species))
		filter.Species = &sp
	}
	return s.repo.List(ctx, filter)
}

// UpdateInput es un reemplazo completo. Adopted/UserID se reciben para
// compararlos con lo persistido; si difieren => ErrAdoptionStateLocked.
type UpdateInput struct {
	Name    string
	Species string
	Age     int

	Adopted bool
	UserID  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	name := strings.TrimSpace(in.Name)
	species := NormalizeSpecies(in.Species)
	if name == "" || species == "" || in.Age < 0 || in.Age > MaxAge {
		return Pet{}, ErrInvalidInput
	}

	if in.Adopted != current.Adopted || !sameOwner(in.UserID, current.UserID) {
		return Pet{}, ErrAdoptionStateLocked
	}

	current.Name = name
	current.Species = species
	current.Age = in.Age
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ListByOwner devuelve ErrNotFound si el usuario no tiene mascotas.
func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotFound
	}
	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

// Recommend: mascotas disponibles de las especies que el usuario ya adoptó.
// Sin ranking ni paginación; orden por created_at.
func (s *Service) Recommend(ctx context.Context, userID string) ([]Pet, error) {
	owned, err := s.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	species := make(map[Species]struct{}, len(owned))
	for _, p := range owned {
		species[p.Species] = struct{}{}
	}

	available := false
	candidates, err := s.repo.List(ctx, Filter{Adopted: &available})
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0)
	for _, p := range candidates {
		if _, ok := species[p.Species]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func normalizeOwner(adopted bool, userID *string) (*string, error) {
	if userID != nil {
		v := strings.TrimSpace(*userID)
		if v == "" {
			userID = nil
		} else {
			userID = &v
		}
	}
	if adopted != (userID != nil) {
		return nil, ErrInvalidInput
	}
	return userID, nil
}

func sameOwner(a, b *string) bool {
	if a != nil {
		v := strings.TrimSpace(*a)
		if v == "" {
			a = nil
		} else {
			a = &v
		}
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
