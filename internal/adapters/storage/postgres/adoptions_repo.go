package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// MarkAdopted usa un UPDATE condicional: de dos requests concurrentes solo uno
// afecta la fila; el otro ve 0 filas y recibe ErrAlreadyAdopted.
func (r *AdoptionsRepo) MarkAdopted(ctx context.Context, petID, userID string, entry adoptions.HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin adopt: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE, user_id = $2, updated_at = $3
		WHERE id = $1 AND adopted = FALSE
	`, petID, userID, entry.AdoptedAt)
	if err != nil {
		return fmt.Errorf("postgres: mark adopted: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, petID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("postgres: check pet: %w", err)
		}
		if !exists {
			return pets.ErrNotFound
		}
		return adoptions.ErrAlreadyAdopted
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoption_history (id, pet_id, user_id, username, adopted_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		entry.ID,
		petID,
		userID,
		entry.Username,
		entry.AdoptedAt,
	); err != nil {
		return fmt.Errorf("postgres: insert history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit adopt: %w", err)
	}
	return nil
}

func (r *AdoptionsRepo) ListHistory(ctx context.Context, petID string) ([]adoptions.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, user_id, username, adopted_at
		FROM adoption_history
		WHERE pet_id = $1
		ORDER BY adopted_at ASC, id ASC
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list history: %w", err)
	}
	defer rows.Close()

	out := make([]adoptions.HistoryEntry, 0)
	for rows.Next() {
		var e adoptions.HistoryEntry
		if err := rows.Scan(&e.ID, &e.PetID, &e.UserID, &e.Username, &e.AdoptedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan history: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list history: %w", err)
	}
	return out, nil
}
