package treatments

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"drug-treatments/internal/observability/metrics"
)

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Post("/", prescribeHandler(svc, m))
		tr.Get("/{treatmentID}", getTreatmentHandler(svc))
		tr.Get("/{treatmentID}/usage", usageHandler(svc))
	})

	// catálogo derivado: medicamentos que tienen algún tratamiento
	r.Get("/prescribed-drugs", prescribedDrugsHandler(svc))
}

type drugRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type dosageRef struct {
	ID                string `json:"id"`
	Regimen           string `json:"regimen"`
	DailyIntakeAmount int    `json:"daily_intake_amount"`
}

type periodResponse struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type directionModeResponse struct {
	Type     string `json:"type"`
	Taken    *int   `json:"taken,omitempty"`
	Interval *int   `json:"interval,omitempty"`
	Delta    *int   `json:"delta,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

type treatmentResponse struct {
	ID            string                `json:"id"`
	Drug          drugRef               `json:"drug"`
	Dosage        dosageRef             `json:"dosage"`
	StartsOn      string                `json:"starts_on"`
	StopsOn       string                `json:"stops_on"`
	Period        periodResponse        `json:"period"`
	DirectionMode directionModeResponse `json:"direction_mode"`
}

type usageResponse struct {
	Date string `json:"date"`
	Used bool   `json:"used"`
}

// prescribeHandler godoc
// @Summary Prescribe un tratamiento
// @Description Recibe el request plano clave→string; una clave ausente no equivale a vacía.
// @Tags treatments
// @Accept json
// @Produce json
// @Success 201 {object} treatmentResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "drug/dosage inexistente"
// @Failure 409 {string} string "tratamiento solapado"
// @Router /treatments [post]
func prescribeHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		req := NewPrescribeRequest()
		for k, v := range raw {
			switch val := v.(type) {
			case string:
				req.Set(k, val)
			case float64:
				// tolera números JSON enteros ("periodAmount": 1)
				if val == math.Trunc(val) {
					req.Set(k, strconv.FormatInt(int64(val), 10))
				} else {
					req.Set(k, strconv.FormatFloat(val, 'f', -1, 64))
				}
			}
			// null u otros tipos: se tratan como ausentes
		}

		t, err := svc.Prescribe(r.Context(), req)
		if err != nil {
			writePrescribeError(w, m, err)
			return
		}

		if m != nil {
			m.TreatmentsPrescribed.Inc()
		}
		writeJSON(w, http.StatusCreated, toTreatmentResponse(t))
	}
}

func writePrescribeError(w http.ResponseWriter, m *metrics.Metrics, err error) {
	var bizErr *Error
	if !errors.As(err, &bizErr) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusBadRequest
	reason := "validation"
	switch bizErr.Kind {
	case KindReference:
		status = http.StatusNotFound
		reason = "reference"
	case KindOverlap:
		status = http.StatusConflict
		reason = "overlap"
	}

	if m != nil {
		m.TreatmentsRejected.WithLabelValues(reason).Inc()
	}
	http.Error(w, bizErr.Message, status)
}

func getTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"))
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

// usageHandler godoc
// @Summary Responde si el tratamiento se toma en una fecha
// @Tags treatments
// @Produce json
// @Param date query string true "fecha yyyy-MM-dd"
// @Success 200 {object} usageResponse
// @Router /treatments/{treatmentID}/usage [get]
func usageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawDate := r.URL.Query().Get("date")
		date, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			http.Error(w, fmt.Sprintf("date must be '%s'", dateLayout), http.StatusBadRequest)
			return
		}

		used, err := svc.IsUsedOn(r.Context(), chi.URLParam(r, "treatmentID"), date)
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, usageResponse{Date: rawDate, Used: used})
	}
}

func prescribedDrugsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.PrescribedDrugs(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]drugRef, 0, len(items))
		for _, d := range items {
			out = append(out, drugRef{ID: d.ID, Name: d.Name})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	resp := treatmentResponse{
		ID: t.ID,
		Drug: drugRef{
			ID:   t.Drug.ID,
			Name: t.Drug.Name,
		},
		Dosage: dosageRef{
			ID:                t.Dosage.ID,
			Regimen:           t.Dosage.Regimen(),
			DailyIntakeAmount: t.Dosage.DailyIntakeAmount,
		},
		StartsOn: t.StartsOn.Format(dateLayout),
		StopsOn:  t.StopsOn.Format(dateLayout),
		Period: periodResponse{
			Amount: t.Period.Amount,
			Unit:   string(t.Period.Unit),
		},
		DirectionMode: directionModeResponse{Type: t.Mode.Tag()},
	}

	switch m := t.Mode.(type) {
	case Periodic:
		resp.DirectionMode.Taken = &m.Taken
		resp.DirectionMode.Interval = &m.Interval
	case Decreasing:
		resp.DirectionMode.Delta = &m.Delta
		resp.DirectionMode.Limit = &m.Limit
	}

	return resp
}

// duplicado consciente por módulo, como en drugs/dosages.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
