package drugs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/drugs", func(dr chi.Router) {
		dr.Post("/", createDrugHandler(svc))
		dr.Get("/", listDrugsHandler(svc))
		dr.Get("/{drugID}", getDrugHandler(svc))
	})
}

type createDrugRequest struct {
	Name string `json:"name"`
}

type drugResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// createDrugHandler godoc
// @Summary Registra un medicamento en el catálogo
// @Tags drugs
// @Accept json
// @Produce json
// @Success 201 {object} drugResponse
// @Router /drugs [post]
func createDrugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDrugRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{Name: req.Name})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toDrugResponse(d))
	}
}

func listDrugsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]drugResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDrugResponse(d))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getDrugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "drugID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "drug not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toDrugResponse(d))
	}
}

func toDrugResponse(d Drug) drugResponse {
	return drugResponse{ID: d.ID, Name: d.Name}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (misma decisión que en el resto del proyecto: nada de helpers compartidos
// hasta que duela).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
