package vaccines

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Post("/", createVaccineHandler(svc))
		vr.Get("/", listVaccinesHandler(svc))
		vr.Get("/upcoming", upcomingVaccinesHandler(svc))
		vr.Get("/{vaccineID}", getVaccineHandler(svc))
		vr.Put("/{vaccineID}", updateVaccineHandler(svc))
		vr.Delete("/{vaccineID}", deleteVaccineHandler(svc))
	})
}

type vaccineRequest struct {
	Name      string `json:"name"`
	PetID     int64  `json:"pet_id"`
	AppliedAt string `json:"applied_at"`  // YYYY-MM-DD
	NextDueAt string `json:"next_due_at"` // YYYY-MM-DD
}

type vaccineResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PetID     int64     `json:"pet_id"`
	AppliedAt time.Time `json:"applied_at"`
	NextDueAt time.Time `json:"next_due_at"`
}

func createVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeVaccineInput(w, r)
		if !ok {
			return
		}

		v, err := svc.Create(r.Context(), in)
		if err != nil {
			writeVaccineError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toVaccineResponse(v))
	}
}

func listVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []Vaccine
		if pid := r.URL.Query().Get("pet_id"); pid != "" {
			id, _ := strconv.ParseInt(pid, 10, 64)
			items = svc.ByPet(id).Get()
		} else {
			items = svc.All().Get()
		}

		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// upcomingVaccinesHandler devuelve los refuerzos de los próximos 30 días
// ordenados por fecha ascendente.
func upcomingVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Upcoming().Get()
		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), urlID(r, "vaccineID"))
		if err != nil {
			http.Error(w, "vaccine not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

func updateVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeVaccineInput(w, r)
		if !ok {
			return
		}

		v, err := svc.Update(r.Context(), urlID(r, "vaccineID"), in)
		if err != nil {
			writeVaccineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

func deleteVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), urlID(r, "vaccineID")); err != nil {
			writeVaccineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeVaccineInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req vaccineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return Input{}, false
	}

	applied, err := time.Parse("2006-01-02", req.AppliedAt)
	if err != nil {
		http.Error(w, "applied_at must be YYYY-MM-DD", http.StatusBadRequest)
		return Input{}, false
	}
	due, err := time.Parse("2006-01-02", req.NextDueAt)
	if err != nil {
		http.Error(w, "next_due_at must be YYYY-MM-DD", http.StatusBadRequest)
		return Input{}, false
	}

	return Input{Name: req.Name, PetID: req.PetID, AppliedAt: applied, NextDueAt: due}, true
}

func toVaccineResponse(v Vaccine) vaccineResponse {
	return vaccineResponse{
		ID:        v.ID,
		Name:      v.Name,
		PetID:     v.PetID,
		AppliedAt: v.AppliedAt,
		NextDueAt: v.NextDueAt,
	}
}

func writeVaccineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "vaccine not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func urlID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
