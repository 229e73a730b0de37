package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer, log logger.Logger) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/register", registerHandler(svc, log))
		ur.Post("/login", loginHandler(svc, issuer, log))
		ur.Get("/", listUsersHandler(svc, log))

		// Requiere un bearer real (ver DESIGN.md, /users/me).
		ur.With(middleware.RequireAuth).Get("/me", meHandler(svc, log))

		ur.Get("/{userID}", getUserHandler(svc, log))
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse es la proyección pública: sin hash.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea un usuario con password hasheado (bcrypt). Username y email deben ser únicos.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} errorResponse "invalid json / campos requeridos / username o email ya registrado"
// @Router /users/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already registered")
			case errors.Is(err, ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "Username already registered")
			case errors.Is(err, ErrConflict):
				writeError(w, http.StatusBadRequest, "User already registered")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "username, email (valid) and password (max 72 bytes) are required")
			default:
				log.Error("register failed", map[string]any{"err": err})
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida credenciales y emite un bearer token (JWT HS256) con expiración fija.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Failure 401 {object} errorResponse "Invalid username or password"
// @Router /users/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		id, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
				return
			}
			log.Error("login failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		token, exp, err := issuer.Issue(id)
		if err != nil {
			log.Error("issue token failed", map[string]any{"err": err, "user_id": id.UserID})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   exp.UTC(),
		})
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Description Lookup público usado por pet-service para validar adopciones.
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{userID} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Error("get user failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Router /users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			log.Error("list users failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Description Devuelve el usuario dueño del bearer token.
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse "invalid or missing bearer token"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/me [get]
func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			// Token válido pero el usuario ya no existe (no hay revocación).
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Error("get current user failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// writeJSON/writeError están duplicados en cada módulo a propósito (igual que en pets/adoptions).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
