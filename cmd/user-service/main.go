// @title user-service API
// @version 1.0
// @description Registro, login y lookup de usuarios.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/jwtauth"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

func main() {
	cfg := config.Load(config.ServiceUsers)
	log := logger.NewFromEnv(cfg.Service)

	if cfg.InsecureSecret() {
		log.Warn("JWT_SECRET not set, using insecure default", nil)
	}

	issuer, err := jwtauth.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Error("jwt issuer", map[string]any{"err": err})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres connect", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()
		log.Info("using postgres storage", nil)
	} else {
		log.Info("DB_DSN not set, using in-memory storage", nil)
	}

	h, err := router.NewUserRouter(router.UserOptions{
		Issuer:      issuer,
		Verifier:    issuer,
		DB:          db,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		log.Error("router", map[string]any{"err": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", map[string]any{"err": err})
	}
}
