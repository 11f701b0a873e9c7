package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Patch("/{appointmentID}/status", changeStatusHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type appointmentRequest struct {
	PetID    int64  `json:"pet_id"`
	ClientID int64  `json:"client_id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Reason   string `json:"reason"`
	Status   string `json:"status,omitempty"` // solo en PUT
}

type statusRequest struct {
	Status string `json:"status"`
}

type appointmentResponse struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"pet_id"`
	ClientID int64  `json:"client_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
	Status   Status `json:"status"`
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El status del body se ignora: toda cita nueva arranca PENDING.
		a, err := svc.Create(r.Context(), Input{
			PetID:    req.PetID,
			ClientID: req.ClientID,
			Date:     req.Date,
			Time:     req.Time,
			Reason:   req.Reason,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []Appointment
		switch {
		case r.URL.Query().Get("status") != "":
			items = svc.ByStatus(Status(r.URL.Query().Get("status"))).Get()
		case r.URL.Query().Get("date") != "":
			items = svc.ByDate(r.URL.Query().Get("date")).Get()
		default:
			items = svc.All().Get()
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), urlID(r, "appointmentID"))
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st := Status(req.Status)
		if req.Status == "" {
			st = StatusPending
		}

		a, err := svc.Update(r.Context(), urlID(r, "appointmentID"), Input{
			PetID:    req.PetID,
			ClientID: req.ClientID,
			Date:     req.Date,
			Time:     req.Time,
			Reason:   req.Reason,
		}, st)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func changeStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.ChangeStatus(r.Context(), urlID(r, "appointmentID"), Status(req.Status))
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), urlID(r, "appointmentID")); err != nil {
			writeAppointmentError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:       a.ID,
		PetID:    a.PetID,
		ClientID: a.ClientID,
		Date:     a.Date,
		Time:     a.Time,
		Reason:   a.Reason,
		Status:   a.Status,
	}
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
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
