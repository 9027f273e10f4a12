package breeds

import (
	"encoding/json"
	"net/http"

	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/api/breeds", listBreedsHandler(svc, log))
}

type breedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listBreedsHandler godoc
// @Summary List breeds
// @Description Returns every breed as {id, name}.
// @Tags breeds
// @Produce json
// @Success 200 {array} breedResponse
// @Failure 500 {object} errorResponse
// @Router /api/breeds [get]
func listBreedsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list breeds failed", map[string]any{"err": err.Error()})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, breedResponse{ID: b.ID, Name: b.Name})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
