package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))

		// Sólo dígitos: ids no numéricos caen en el 404 del router.
		dr.Get("/{dogID:[0-9]+}", getDogHandler(svc, log))
	})
}

type dogSummaryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
}

type dogResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	Status      string `json:"status" example:"AVAILABLE"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listDogsHandler godoc
// @Summary List dogs
// @Description Returns every dog joined with its breed name. Order is whatever the store returns.
// @Tags dogs
// @Produce json
// @Success 200 {array} dogSummaryResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list dogs failed", map[string]any{"err": err.Error()})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]dogSummaryResponse, 0, len(items))
		for _, d := range items {
			out = append(out, dogSummaryResponse{
				ID:    d.ID,
				Name:  d.Name,
				Breed: d.Breed,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary Get dog
// @Description Returns one dog with its breed name. status is rendered by its symbolic name (AVAILABLE, PENDING, ADOPTED).
// @Tags dogs
// @Produce json
// @Param dogID path int true "Dog ID"
// @Success 200 {object} dogResponse
// @Failure 404 {object} errorResponse "Dog not found"
// @Failure 500 {object} errorResponse
// @Router /api/dogs/{dogID} [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// El patrón ya garantiza dígitos; si no entra en int64 no puede existir.
		id, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Dog not found"})
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: "Dog not found"})
				return
			}
			log.Error("get dog failed", map[string]any{"dog_id": id, "err": err.Error()})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:          d.ID,
		Name:        d.Name,
		Breed:       d.Breed,
		Age:         d.Age,
		Description: d.Description,
		Gender:      d.Gender,
		Status:      d.Status.Name(),
	}
}

// writeJSON está duplicado en dogs y breeds. Si aparece un tercer módulo,
// recién ahí conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
