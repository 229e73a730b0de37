// @title pet-service API
// @version 1.0
// @description Mascotas, adopciones, historial y recomendaciones.
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

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load(config.ServicePets)
	log := logger.NewFromEnv(cfg.Service)

	if cfg.InsecureSecret() {
		log.Warn("JWT_SECRET not set, using insecure default", nil)
	}

	// pet-service solo verifica tokens; el ttl no aplica.
	verifier, err := jwtauth.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Error("jwt verifier", map[string]any{"err": err})
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

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// el cache hace fallthrough si Redis no responde
			log.Warn("redis ping failed", map[string]any{"addr": cfg.RedisAddr, "err": err})
		}
		cancel()
	}

	opts := router.PetOptions{
		Verifier:           verifier,
		DB:                 db,
		UserServiceURL:     cfg.UserServiceURL,
		UserServiceTimeout: cfg.UserServiceTimeout,
		UserCacheTTL:       cfg.UserCacheTTL,
		Log:                log,
		CORSOrigins:        cfg.CORSOrigins,
	}
	if rdb != nil {
		opts.Redis = rdb
	}

	h, err := router.NewPetRouter(opts)
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
		log.Info("starting server", map[string]any{"addr": srv.Addr, "user_service": cfg.UserServiceURL})
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
