package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/pets"
)

const petColumns = `id, name, species, age, adopted, user_id, created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Age,
		p.Adopted,
		toNullString(p.UserID),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: create pet: %w", err)
	}
	return nil
}

// Update solo toca el perfil; adopted/user_id los cambia AdoptionsRepo.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			age = $4,
			updated_at = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Age,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: update pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	var hasHistory bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM adoption_history WHERE pet_id = $1)`, id,
	).Scan(&hasHistory); err != nil {
		return fmt.Errorf("postgres: check pet history: %w", err)
	}
	if hasHistory {
		return pets.ErrHasHistory
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if _, ok := pgError(err, codeForeignKeyViolation); ok {
		// adopción concurrente entre el EXISTS y el DELETE
		return pets.ErrHasHistory
	}
	if err != nil {
		return fmt.Errorf("postgres: delete pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("postgres: get pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.Filter) ([]pets.Pet, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Species != nil {
		args = append(args, string(*filter.Species))
		conds = append(conds, fmt.Sprintf("species = $%d", len(args)))
	}
	if filter.Adopted != nil {
		args = append(args, *filter.Adopted)
		conds = append(conds, fmt.Sprintf("adopted = $%d", len(args)))
	}

	q := `SELECT ` + petColumns + ` FROM pets`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at ASC, id ASC`

	return r.query(ctx, q, args...)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, userID string) ([]pets.Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []pets.Pet{}, nil
	}

	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan pet: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list pets: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		species string
		owner   sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Age,
		&p.Adopted,
		&owner,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	if owner.Valid {
		v := owner.String
		p.UserID = &v
	}
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
