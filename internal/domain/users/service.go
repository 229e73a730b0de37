package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrConflict     = errors.New("user already exists")

	// Ambos envuelven ErrConflict para que el handler mapee uno solo.
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", auth.ErrUnauthorized)
)

type Service struct {
	repo      Repository
	now       func() time.Time
	hashCost  int
	dummyHash []byte
}

func NewService(repo Repository) *Service {
	return newService(repo, bcrypt.DefaultCost)
}

func newService(repo Repository, cost int) *Service {
	// Hash dummy para que login de usuario inexistente cueste lo mismo que uno real.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &Service{
		repo:      repo,
		now:       time.Now,
		hashCost:  cost,
		dummyHash: dummy,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}
	// bcrypt ignora todo lo que pase de 72 bytes; mejor rechazar.
	if len(in.Password) > 72 {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y devuelve la identidad a firmar en el token.
func (s *Service) Login(ctx context.Context, username, password string) (auth.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return auth.Identity{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return auth.Identity{}, ErrInvalidCredentials
		}
		return auth.Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return auth.Identity{}, ErrInvalidCredentials
	}

	return auth.Identity{UserID: u.ID, Username: u.Username}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
