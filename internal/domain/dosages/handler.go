package dosages

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dosages", func(dr chi.Router) {
		dr.Post("/", createDosageHandler(svc))
		dr.Get("/{dosageID}", getDosageHandler(svc))
	})
}

type createDosageRequest struct {
	Quantity          int    `json:"quantity"`
	Form              string `json:"form"`
	DailyIntakeAmount int    `json:"daily_intake_amount"`
}

type dosageResponse struct {
	ID                string `json:"id"`
	Quantity          int    `json:"quantity"`
	Form              string `json:"form"`
	DailyIntakeAmount int    `json:"daily_intake_amount"`
	TotalDailyDose    int    `json:"total_daily_dose"`
	Regimen           string `json:"regimen"`
}

// createDosageHandler godoc
// @Summary Registra una pauta de dosificación
// @Tags dosages
// @Accept json
// @Produce json
// @Success 201 {object} dosageResponse
// @Router /dosages [post]
func createDosageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDosageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Quantity:          req.Quantity,
			Form:              req.Form,
			DailyIntakeAmount: req.DailyIntakeAmount,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toDosageResponse(d))
	}
}

func getDosageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dosageID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "dosage not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toDosageResponse(d))
	}
}

func toDosageResponse(d Dosage) dosageResponse {
	return dosageResponse{
		ID:                d.ID,
		Quantity:          d.Dose.Quantity,
		Form:              d.Dose.Form,
		DailyIntakeAmount: d.DailyIntakeAmount,
		TotalDailyDose:    d.TotalDailyDose(),
		Regimen:           d.Regimen(),
	}
}

// mismo criterio que en drugs: duplicado consciente, sin helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
