package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// pets.user_id no es FK: user-service y pet-service pueden vivir en bases distintas.
// adoption_history.pet_id sí lo es, sin cascade, para que el historial no se pierda.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		species    TEXT NOT NULL,
		age        INTEGER NOT NULL CHECK (age >= 0),
		adopted    BOOLEAN NOT NULL DEFAULT FALSE,
		user_id    TEXT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT pets_owner_matches_adopted CHECK ((user_id IS NOT NULL) = adopted)
	)`,
	`CREATE INDEX IF NOT EXISTS pets_user_id_idx ON pets (user_id)`,
	`CREATE INDEX IF NOT EXISTS pets_species_adopted_idx ON pets (species, adopted)`,
	`CREATE TABLE IF NOT EXISTS adoption_history (
		id         TEXT PRIMARY KEY,
		pet_id     TEXT NOT NULL REFERENCES pets (id),
		user_id    TEXT NOT NULL,
		username   TEXT NOT NULL,
		adopted_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS adoption_history_pet_idx ON adoption_history (pet_id, adopted_at)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS adoption_history`,
	`DROP TABLE IF EXISTS pets`,
	`DROP TABLE IF EXISTS users`,
}

// Migrate crea las tablas que falten. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, createStatements)
}

// Reset borra todo y vuelve a crear el esquema. Solo para desarrollo.
func Reset(ctx context.Context, db *sql.DB) error {
	stmts := append(append([]string{}, dropStatements...), createStatements...)
	return execAll(ctx, db, stmts)
}

func execAll(ctx context.Context, db *sql.DB, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("schema: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("schema: commit: %w", err)
	}
	return nil
}
