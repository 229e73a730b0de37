package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))
		pr.Get("/search", searchPetsHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.With(middleware.RequireAuth).Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})

	// Vistas por usuario (el usuario vive en user-service; acá solo filtramos por user_id)
	r.Get("/users/{userID}/pets", listUserPetsHandler(svc, log))
	r.Get("/users/{userID}/recommendations", recommendationsHandler(svc, log))
}

type createPetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     *int    `json:"age"`
	Adopted bool    `json:"adopted"`
	UserID  *string `json:"user_id"`
}

// updatePetRequest es reemplazo completo (PUT). adopted/user_id deben coincidir con lo actual.
type updatePetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     *int    `json:"age"`
	Adopted bool    `json:"adopted"`
	UserID  *string `json:"user_id"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   Species   `json:"species"`
	Age       int       `json:"age"`
	Adopted   bool      `json:"adopted"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. Por defecto queda disponible (adopted=false, user_id=null). Si se envía adopted=true debe venir user_id y viceversa.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} errorResponse "invalid json / campos requeridos / adopted y user_id inconsistentes"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Age == nil {
			writeError(w, http.StatusBadRequest, "age is required")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Age:     *req.Age,
			Adopted: req.Adopted,
			UserID:  req.UserID,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// searchPetsHandler godoc
// @Summary Buscar mascotas
// @Description Filtros opcionales combinados con AND. Sin filtros devuelve todas.
// @Tags pets
// @Produce json
// @Param species query string false "Especie (case-insensitive)"
// @Param adopted query bool false "Estado de adopción"
// @Success 200 {array} petResponse
// @Failure 400 {object} errorResponse "adopted must be a boolean"
// @Router /pets/search [get]
func searchPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var filter Filter
		if v := strings.TrimSpace(q.Get("species")); v != "" {
			sp := Species(v)
			filter.Species = &sp
		}
		if v := strings.TrimSpace(q.Get("adopted")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "adopted must be a boolean")
				return
			}
			filter.Adopted = &b
		}

		items, err := svc.Search(r.Context(), filter)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplazo completo de nombre, especie y edad. adopted/user_id deben coincidir con el estado actual (solo cambian vía adopt).
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Mascota completa"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse "invalid json / campos requeridos / estado de adopción bloqueado"
// @Failure 401 {object} errorResponse "invalid or missing bearer token"
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Age == nil {
			writeError(w, http.StatusBadRequest, "age is required")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Age:     *req.Age,
			Adopted: req.Adopted,
			UserID:  req.UserID,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description No se permite borrar mascotas con historial de adopción.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse "pet has adoption history"
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if err := svc.Delete(r.Context(), petID); err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet " + petID + " deleted"})
	}
}

// listUserPetsHandler godoc
// @Summary Mascotas de un usuario
// @Tags pets
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {array} petResponse
// @Failure 404 {object} errorResponse "No pets found for this user"
// @Router /users/{userID}/pets [get]
func listUserPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "No pets found for this user")
				return
			}
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// recommendationsHandler godoc
// @Summary Recomendaciones de adopción
// @Description Mascotas disponibles de las especies que el usuario ya adoptó.
// @Tags pets
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {array} petResponse
// @Failure 404 {object} errorResponse "No pets found for this user"
// @Router /users/{userID}/recommendations [get]
func recommendationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Recommend(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "No pets found for this user")
				return
			}
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "name and species are required, age must be between 0 and "+strconv.Itoa(MaxAge)+", adopted requires user_id")
	case errors.Is(err, ErrAdoptionStateLocked):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrHasHistory):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Pet not found")
	default:
		log.Error("pets request failed", map[string]any{"err": err})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Age:       p.Age,
		Adopted:   p.Adopted,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (users/pets/adoptions)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
