package consultations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultations", func(cr chi.Router) {
		cr.Post("/", createConsultationHandler(svc))
		cr.Get("/", listConsultationsHandler(svc))
		cr.Get("/income", incomeHandler(svc))
		cr.Get("/{consultationID}", getConsultationHandler(svc))
		cr.Get("/{consultationID}/share", shareConsultationHandler(svc))
	})
}

type createConsultationRequest struct {
	ClientID      int64   `json:"client_id"`
	PetID         int64   `json:"pet_id"`
	MedicationIDs []int64 `json:"medication_ids"`
	Description   string  `json:"description"`
}

type consultationMedication struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Discount       float64 `json:"discount"`
	EffectivePrice float64 `json:"effective_price"`
}

type consultationResponse struct {
	ID          int64                    `json:"id"`
	ClientName  string                   `json:"client_name"`
	PetName     string                   `json:"pet_name"`
	Medications []consultationMedication `json:"medications"`
	Description string                   `json:"description"`
	CreatedAt   time.Time                `json:"created_at"`
	Total       float64                  `json:"total"`
}

type incomeResponse struct {
	TotalIncome float64 `json:"total_income"`
	Count       int     `json:"count"`
}

func createConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createConsultationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			ClientID:      req.ClientID,
			PetID:         req.PetID,
			MedicationIDs: req.MedicationIDs,
			Description:   req.Description,
		})
		if err != nil {
			writeConsultationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toConsultationResponse(c))
	}
}

func listConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.All().Get()
		out := make([]consultationResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConsultationResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func incomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, incomeResponse{
			TotalIncome: svc.TotalIncome().Get(),
			Count:       len(svc.All().Get()),
		})
	}
}

func getConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), urlID(r))
		if err != nil {
			http.Error(w, "consultation not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toConsultationResponse(c))
	}
}

// shareConsultationHandler devuelve el bloque de texto para compartir,
// tal cual lo generaría el botón de compartir de la pantalla.
func shareConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), urlID(r))
		if err != nil {
			http.Error(w, "consultation not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ShareText(c)))
	}
}

func toConsultationResponse(c Consultation) consultationResponse {
	meds := make([]consultationMedication, 0, len(c.Medications))
	for _, m := range c.Medications {
		meds = append(meds, consultationMedication{
			ID:             m.ID,
			Name:           m.Name,
			Price:          m.Price,
			Discount:       m.Discount,
			EffectivePrice: m.EffectivePrice(),
		})
	}
	return consultationResponse{
		ID:          c.ID,
		ClientName:  c.Client.Name,
		PetName:     c.Pet.Name,
		Medications: meds,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		Total:       c.Total,
	}
}

func writeConsultationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "consultationID"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
