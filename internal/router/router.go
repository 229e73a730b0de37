package router

import (
	"database/sql"
	"net/http"
	"time"

	"pet-adoption/internal/adapters/cache/redisusers"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/adapters/users/userservice"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"

	_ "pet-adoption/docs/pets"
	_ "pet-adoption/docs/users"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

// UserOptions configura user-service.
type UserOptions struct {
	Issuer   auth.TokenIssuer
	Verifier auth.AuthVerifier

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log         logger.Logger
	CORSOrigins []string
}

// PetOptions configura pet-service.
type PetOptions struct {
	Verifier auth.AuthVerifier

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Users, si viene, reemplaza al cliente HTTP contra UserServiceURL (tests).
	Users              adoptions.UserLookup
	UserServiceURL     string
	UserServiceTimeout time.Duration

	// Opcional: cache de lookups de usuario.
	Redis        redis.UniversalClient
	UserCacheTTL time.Duration

	Log         logger.Logger
	CORSOrigins []string
}

func NewUserRouter(opts UserOptions) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	reg := metrics.NewRegistry("user-service")
	r := newBaseRouter(reg, opts.Verifier, log, opts.CORSOrigins, "users")

	var userRepo users.Repository
	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
	}

	users.RegisterRoutes(r, users.NewService(userRepo), opts.Issuer, log)
	return r, nil
}

func NewPetRouter(opts PetOptions) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	reg := metrics.NewRegistry("pet-service")
	r := newBaseRouter(reg, opts.Verifier, log, opts.CORSOrigins, "pets")

	var (
		petRepo   pets.Repository
		adoptRepo adoptions.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		adoptRepo = pg.NewAdoptionsRepo(opts.DB)
	} else {
		memPets := mem.NewPetRepo()
		petRepo = memPets
		adoptRepo = mem.NewAdoptionRepo(memPets)
	}

	lookup := opts.Users
	if lookup == nil {
		client, err := userservice.NewClient(userservice.Config{
			BaseURL: opts.UserServiceURL,
			Timeout: opts.UserServiceTimeout,
		})
		if err != nil {
			return nil, err
		}
		lookup = client
	}
	if opts.Redis != nil {
		lookup = redisusers.New(lookup, opts.Redis, opts.UserCacheTTL, log.With(map[string]any{"component": "user-cache"}))
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	adoptSvc := adoptions.NewService(adoptions.Deps{
		Repo:     adoptRepo,
		Pets:     petsSvc,
		Users:    lookup,
		Verifier: opts.Verifier,
		Metrics:  reg.Adoptions,
		Log:      log.With(map[string]any{"component": "adoptions"}),
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, log)
	adoptions.RegisterRoutes(r, adoptSvc, log)

	return r, nil
}

func newBaseRouter(reg *metrics.Registry, verifier auth.AuthVerifier, log logger.Logger, origins []string, docs string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions(origins)))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(reg.HTTP))

	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", reg.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.InstanceName(docs),
	))

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
