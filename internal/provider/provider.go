// Package provider expone la superficie de solo lectura para
// integraciones externas: filas tabulares planas de mascotas y
// consultas. Cualquier intento de escritura se rechaza sin efecto.
package provider

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/domain/pets"
)

// PetRow es la proyección tabular de una mascota.
type PetRow struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	OwnerID int64   `json:"owner_id"`
}

// ConsultationRow es la proyección tabular de una consulta; los nombres
// vienen de los snapshots embebidos, no de joins.
type ConsultationRow struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"client_name"`
	PetName     string  `json:"pet_name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
}

func RegisterRoutes(r chi.Router, ps *pets.Service, cs *consultations.Service) {
	r.Route("/provider", func(pr chi.Router) {
		pr.MethodNotAllowed(rejectWrite)

		pr.Get("/pets", listPetRows(ps))
		pr.Get("/pets/{id}", getPetRow(ps))
		pr.Get("/consultations", listConsultationRows(cs))
		pr.Get("/consultations/{id}", getConsultationRow(cs))
	})
}

// rejectWrite responde 405 sin tocar nada: el provider no tiene
// operaciones de escritura, ni siquiera parciales.
func rejectWrite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, "read-only provider", http.StatusMethodNotAllowed)
}

func listPetRows(ps *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := ps.All().Get()
		out := make([]PetRow, 0, len(items))
		for _, p := range items {
			out = append(out, toPetRow(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetRow(ps *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ps.GetByID(r.Context(), urlID(r))
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetRow(p))
	}
}

func listConsultationRows(cs *consultations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := cs.All().Get()
		out := make([]ConsultationRow, 0, len(items))
		for _, c := range items {
			out = append(out, toConsultationRow(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getConsultationRow(cs *consultations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := cs.GetByID(r.Context(), urlID(r))
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toConsultationRow(c))
	}
}

func toPetRow(p pets.Pet) PetRow {
	return PetRow{
		ID:      p.ID,
		Name:    p.Name,
		Species: string(p.Species),
		Age:     p.Age,
		Weight:  p.Weight,
		OwnerID: p.ClientID,
	}
}

func toConsultationRow(c consultations.Consultation) ConsultationRow {
	return ConsultationRow{
		ID:          c.ID,
		ClientName:  c.Client.Name,
		PetName:     c.Pet.Name,
		Description: c.Description,
		Date:        c.CreatedAt.Format("2006-01-02"),
		Total:       c.Total,
	}
}

func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
