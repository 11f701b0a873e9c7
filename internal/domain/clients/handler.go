package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", createClientHandler(svc))
		cr.Get("/", listClientsHandler(svc))
		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Put("/{clientID}", updateClientHandler(svc))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

type clientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type clientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), Input{Name: req.Name, Email: req.Email, Phone: req.Phone})
		if err != nil {
			writeClientError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.All().Get()
		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := urlID(r, "clientID")
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), urlID(r, "clientID"), Input{Name: req.Name, Email: req.Email, Phone: req.Phone})
		if err != nil {
			writeClientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

// deleteClientHandler borra en cascada: las mascotas del cliente se van
// con él. Un ID inexistente responde 204 igual (el borrado es no-op).
func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), urlID(r, "clientID")); err != nil {
			writeClientError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func urlID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

// writeJSON está duplicado intencionalmente en handlers de distintos
// módulos para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
