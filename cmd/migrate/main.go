package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
)

var dsn string

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Schema management for the pet adoption database",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create missing tables",
	Long: `Create users, pets and adoption_history if they do not exist.

Safe to run more than once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("up", pg.Migrate)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate every table",
	Long: `Drop adoption_history, pets and users and create them again.

All data is lost. Intended for local development.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("reset", pg.Reset)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Postgres DSN (default: DB_DSN)")
	rootCmd.AddCommand(upCmd, resetCmd)
}

func run(name string, fn func(context.Context, *sql.DB) error) error {
	log := logger.NewFromEnv("migrate")

	if dsn == "" {
		dsn = config.Load("migrate").DBDSN
	}
	if dsn == "" {
		return fmt.Errorf("--dsn flag or DB_DSN is required")
	}

	db, err := pg.Open(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fn(ctx, db); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Info("migration completed", map[string]any{"command": name})
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
