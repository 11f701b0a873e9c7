package medications

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone el catálogo de solo lectura. No hay alta ni
// edición de medicamentos: el catálogo viene sembrado.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/{medicationID}", getMedicationHandler(svc))
	})
}

type medicationResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Dosage         string  `json:"dosage"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Discount       float64 `json:"discount"`
	EffectivePrice float64 `json:"effective_price"`
}

func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.All().Get()
		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "medicationID"), 10, 64)
		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Price:          m.Price,
		Stock:          m.Stock,
		Discount:       m.Discount,
		EffectivePrice: m.EffectivePrice(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
