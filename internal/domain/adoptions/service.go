package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserNotFound        = errors.New("user not found")
	ErrUpstreamUnavailable = errors.New("user service unavailable")
	ErrAlreadyAdopted      = errors.New("pet is already adopted")

	ErrPetNotFound = pets.ErrNotFound
)

type Service struct {
	repo     Repository
	pets     PetReader
	users    UserLookup
	verifier auth.AuthVerifier

	metrics *metrics.Adoptions
	log     logger.Logger
	now     func() time.Time
}

type Deps struct {
	Repo     Repository
	Pets     PetReader
	Users    UserLookup
	Verifier auth.AuthVerifier

	// Opcionales
	Metrics *metrics.Adoptions
	Log     logger.Logger
}

func NewService(d Deps) *Service {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     d.Repo,
		pets:     d.Pets,
		users:    d.Users,
		verifier: d.Verifier,
		metrics:  d.Metrics,
		log:      log,
		now:      time.Now,
	}
}

type AdoptInput struct {
	PetID  string
	UserID string
	Token  string
}

type AdoptResult struct {
	Pet   pets.Pet
	Entry HistoryEntry
}

// Adopt:
//  1. verifica el token
//  2. valida el usuario en user-service
//  3. carga la mascota
//  4. rechaza si ya está adoptada
//  5+6. marca adoptada + agrega historial (atómico en el repo)
func (s *Service) Adopt(ctx context.Context, in AdoptInput) (res AdoptResult, err error) {
	defer func() { s.metrics.Record(outcome(err)) }()

	petID := strings.TrimSpace(in.PetID)
	userID := strings.TrimSpace(in.UserID)

	claims, err := s.verifier.Verify(ctx, in.Token)
	if err != nil {
		return AdoptResult{}, fmt.Errorf("%w: %v", auth.ErrUnauthorized, err)
	}

	if petID == "" || userID == "" {
		return AdoptResult{}, ErrInvalidInput
	}

	if _, err := s.users.LookupUser(ctx, userID); err != nil {
		return AdoptResult{}, err
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return AdoptResult{}, err
	}
	if p.Adopted {
		return AdoptResult{}, ErrAlreadyAdopted
	}

	now := s.now()
	entry := HistoryEntry{
		ID:        uuid.NewString(),
		PetID:     p.ID,
		UserID:    userID,
		Username:  claims.Username,
		AdoptedAt: now,
	}

	// Entre el check y acá otro request pudo ganar: el repo lo resuelve con update condicional.
	if err := s.repo.MarkAdopted(ctx, p.ID, userID, entry); err != nil {
		return AdoptResult{}, err
	}

	p.Adopted = true
	p.UserID = &userID
	p.UpdatedAt = now

	s.log.Info("pet adopted", map[string]any{
		"pet_id":   p.ID,
		"user_id":  userID,
		"username": claims.Username,
	})

	return AdoptResult{Pet: p, Entry: entry}, nil
}

// HistoryFor devuelve el historial en orden de inserción.
func (s *Service) HistoryFor(ctx context.Context, petID string) ([]HistoryEntry, error) {
	petID = strings.TrimSpace(petID)
	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, petID)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAdopted
	case errors.Is(err, auth.ErrUnauthorized):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return metrics.OutcomeUserNotFound
	case errors.Is(err, ErrUpstreamUnavailable):
		return metrics.OutcomeUpstreamFailure
	case errors.Is(err, ErrPetNotFound):
		return metrics.OutcomePetNotFound
	case errors.Is(err, ErrAlreadyAdopted):
		return metrics.OutcomeAlreadyAdopted
	default:
		return metrics.OutcomeError
	}
}
