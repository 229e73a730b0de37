package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret es solo para dev. En producción JWT_SECRET debe definirse.
const DefaultJWTSecret = "insecure-dev-secret-change-me"

const (
	ServiceUsers = "user-service"
	ServicePets  = "pet-service"
)

// Config agrupa la configuración de ambos servicios (cada uno usa lo suyo).
type Config struct {
	Service string
	Port    string

	DBDSN string

	JWTSecret string
	TokenTTL  time.Duration

	UserServiceURL     string
	UserServiceTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	CORSOrigins []string
}

// Load lee .env (si existe) y luego variables de entorno.
func Load(service string) *Config {
	_ = godotenv.Load()

	defaultPort := "8000"
	if service == ServicePets {
		defaultPort = "8001"
	}

	return &Config{
		Service: service,
		Port:    getenv("PORT", defaultPort),

		DBDSN: getenv("DB_DSN", ""),

		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:  getduration("TOKEN_TTL", 30*time.Minute),

		UserServiceURL:     getenv("USER_SERVICE_URL", "http://127.0.0.1:8000"),
		UserServiceTimeout: getduration("USER_SERVICE_TIMEOUT", 5*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),
		UserCacheTTL:  getduration("USER_CACHE_TTL", time.Minute),

		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}
}

// InsecureSecret indica si se está usando el secreto por defecto.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
