package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petRequest struct {
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    string  `json:"breed"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	ClientID int64   `json:"client_id"`
}

type petResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Species  Species `json:"species"`
	Breed    string  `json:"breed"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	ClientID int64   `json:"client_id"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), toInput(req))
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler admite ?client_id= y ?species= como filtros derivados
// del snapshot vigente.
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []Pet
		switch {
		case r.URL.Query().Get("client_id") != "":
			id, _ := strconv.ParseInt(r.URL.Query().Get("client_id"), 10, 64)
			items = svc.ByOwner(id).Get()
		case r.URL.Query().Get("species") != "":
			items = svc.BySpecies(Species(r.URL.Query().Get("species"))).Get()
		default:
			items = svc.All().Get()
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), urlID(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), urlID(r, "petID"), toInput(req))
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), urlID(r, "petID")); err != nil {
			writePetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toInput(req petRequest) Input {
	return Input{
		Name:     req.Name,
		Species:  req.Species,
		Breed:    req.Breed,
		Age:      req.Age,
		Weight:   req.Weight,
		ClientID: req.ClientID,
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:       p.ID,
		Name:     p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Age:      p.Age,
		Weight:   p.Weight,
		ClientID: p.ClientID,
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
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
