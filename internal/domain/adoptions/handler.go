package adoptions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	// Rutas hoja: no montar un subrouter en /pets/{petID} porque taparía GET/PUT/DELETE de pets.
	r.Post("/pets/{petID}/adopt", adoptHandler(svc, log))
	r.Get("/pets/{petID}/history", historyHandler(svc, log))
}

type adoptResponse struct {
	Message string `json:"message"`
}

type historyEntryResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// adoptHandler godoc
// @Summary Adoptar mascota
// @Description Verifica el bearer token, valida user_id contra user-service, y marca la mascota como adoptada registrando el historial (una sola transacción).
// @Tags adoptions
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param petID path string true "ID de la mascota"
// @Param user_id query string true "ID del usuario adoptante"
// @Success 200 {object} adoptResponse
// @Failure 400 {object} errorResponse "user_id requerido / Pet is already adopted"
// @Failure 401 {object} errorResponse "invalid or missing bearer token"
// @Failure 404 {object} errorResponse "Pet not found / User not found"
// @Failure 500 {object} errorResponse "internal error"
// @Failure 503 {object} errorResponse "User Service is unreachable"
// @Router /pets/{petID}/adopt [post]
func adoptHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
			return
		}

		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			writeError(w, http.StatusBadRequest, "user_id query parameter is required")
			return
		}

		res, err := svc.Adopt(r.Context(), AdoptInput{
			PetID:  chi.URLParam(r, "petID"),
			UserID: userID,
			Token:  token,
		})
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "pet id and user_id are required")
			case errors.Is(err, ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, ErrPetNotFound):
				writeError(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrAlreadyAdopted):
				writeError(w, http.StatusBadRequest, "Pet is already adopted")
			case errors.Is(err, ErrUpstreamUnavailable):
				log.Warn("user service unavailable", map[string]any{"err": err, "user_id": userID})
				writeError(w, http.StatusServiceUnavailable, "User Service is unreachable")
			default:
				log.Error("adopt failed", map[string]any{"err": err, "user_id": userID})
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, adoptResponse{
			Message: fmt.Sprintf("Pet %s has been adopted by user %s", res.Pet.Name, userID),
		})
	}
}

// historyHandler godoc
// @Summary Historial de adopción
// @Description Entradas en orden de inserción.
// @Tags adoptions
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} historyEntryResponse
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID}/history [get]
func historyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.HistoryFor(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrPetNotFound) {
				writeError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error("history failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]historyEntryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, historyEntryResponse{
				ID:        e.ID,
				PetID:     e.PetID,
				UserID:    e.UserID,
				Username:  e.Username,
				Timestamp: e.AdoptedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
