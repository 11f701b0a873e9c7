package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-clinic-manager/internal/auth"
	"vet-clinic-manager/internal/middleware"
)

// RegisterRoutes monta el login contra el store de usuarios sembrados.
// Si manager es nil no se emite token (modo dev con X-Debug-User-ID).
func RegisterRoutes(r chi.Router, svc *Service, manager *auth.Manager) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc, manager))
		ar.Post("/logout", logoutHandler(svc))
		ar.Get("/session", sessionHandler(svc))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	ClientID int64  `json:"client_id,omitempty"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
}

func loginHandler(svc *Service, manager *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "email y password requeridos", http.StatusBadRequest)
			return
		case errors.Is(err, ErrBadCredentials):
			// misma respuesta para email desconocido y contraseña mala
			http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := loginResponse{User: toUserResponse(u)}
		if manager != nil {
			token, err := manager.NewAccessToken(u.ID, u.Email, string(u.Role))
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			resp.Token = token
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout()
		w.WriteHeader(http.StatusNoContent)
	}
}

// sessionHandler refleja el watch de sesión del proceso; con token
// válido en el request responde ese usuario aunque la sesión local esté
// vacía (el token es la fuente para clientes HTTP).
func sessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			if u, err := svc.GetByID(r.Context(), claims.UserID()); err == nil {
				ur := toUserResponse(u)
				writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, User: &ur})
				return
			}
		}

		s := svc.Session().Get()
		if !s.Authenticated {
			writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
			return
		}
		ur := toUserResponse(s.User)
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, User: &ur})
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role, ClientID: u.ClientID}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
