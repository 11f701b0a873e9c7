package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vet-clinic-manager/internal/adapters/storage/memory"
	"vet-clinic-manager/internal/auth"
	"vet-clinic-manager/internal/config"
	"vet-clinic-manager/internal/domain/appointments"
	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/domain/users"
	"vet-clinic-manager/internal/domain/vaccines"
	"vet-clinic-manager/internal/middleware"
	"vet-clinic-manager/internal/notify"
	"vet-clinic-manager/internal/platform/logger"
	"vet-clinic-manager/internal/provider"
	"vet-clinic-manager/internal/store"
	"vet-clinic-manager/internal/validation"
	"vet-clinic-manager/internal/views"
)

type Options struct {
	Cfg config.Config
	Log logger.Logger

	// Latency anula la latencia artificial de los repos; los tests
	// pasan memory.Zero() para no dormir.
	Latency *memory.Latency

	// Sender anula el destino de las notificaciones (default: log).
	Sender notify.Sender
}

// NewRouter es el composition root: store → repos → services → rutas.
func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	lat := memory.Latency{
		Add:          opts.Cfg.LatencyAdd,
		Edit:         opts.Cfg.LatencyEdit,
		Delete:       opts.Cfg.LatencyDelete,
		Consultation: opts.Cfg.LatencyConsultation,
	}
	if opts.Latency != nil {
		lat = *opts.Latency
	}

	s := store.New()
	val := validation.New()

	sender := opts.Sender
	if sender == nil {
		sender = notify.LogSender{Log: log}
	}
	notifySvc := notify.NewService(sender, log)

	clientsRepo := memory.NewClientsRepo(s, lat)
	petsRepo := memory.NewPetsRepo(s, lat)
	apptRepo := memory.NewAppointmentsRepo(s, lat)
	vaccinesRepo := memory.NewVaccinesRepo(s, lat)
	medicationsRepo := memory.NewMedicationsRepo(s)
	consultationsRepo := memory.NewConsultationsRepo(s, lat)
	usersRepo := memory.NewUsersRepo(s)

	clientsSvc := clients.NewService(clientsRepo, val)
	petsSvc := pets.NewService(petsRepo, val)
	apptSvc := appointments.NewService(apptRepo, petsRepo, val, notifySvc)
	vaccinesSvc := vaccines.NewService(vaccinesRepo, petsRepo, notifySvc)
	medicationsSvc := medications.NewService(medicationsRepo)
	consultationsSvc := consultations.NewService(consultationsRepo, clientsRepo, petsRepo, medicationsRepo, opts.Cfg.BaseConsultationFee)
	usersSvc := users.NewService(usersRepo)

	connMonitor := notify.NewConnectivityMonitor(
		notify.WatchCounter(s.Consultations()),
		notify.WatchCounter(s.Pets()),
		notifySvc,
	)

	dashboard := views.NewDashboardView(s.Clients(), s.Pets(), s.Appointments(), s.Consultations())

	var manager *auth.Manager
	if opts.Cfg.JWTSecret != "" {
		manager = &auth.Manager{
			Secret:    []byte(opts.Cfg.JWTSecret),
			AccessTTL: time.Duration(opts.Cfg.AccessTTLMinutes) * time.Minute,
			Issuer:    opts.Cfg.AppName,
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(manager))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	clients.RegisterRoutes(r, clientsSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptSvc)
	vaccines.RegisterRoutes(r, vaccinesSvc)
	medications.RegisterRoutes(r, medicationsSvc)
	consultations.RegisterRoutes(r, consultationsSvc)
	users.RegisterRoutes(r, usersSvc, manager)
	provider.RegisterRoutes(r, petsSvc, consultationsSvc)

	registerDashboard(r, dashboard)
	registerConnectivity(r, connMonitor)

	return r
}

type dashboardResponse struct {
	ClientCount         int     `json:"client_count"`
	PetCount            int     `json:"pet_count"`
	PendingAppointments int     `json:"pending_appointments"`
	ConsultationCount   int     `json:"consultation_count"`
	TotalIncome         float64 `json:"total_income"`
}

// registerDashboard sirve el último combinado del agregador; si el loop
// todavía no emitió, responde el resumen en cero.
func registerDashboard(r chi.Router, v *views.DashboardView) {
	r.Get("/dashboard", func(w http.ResponseWriter, _ *http.Request) {
		st := v.State().Get()
		writeJSON(w, http.StatusOK, dashboardResponse{
			ClientCount:         st.Data.ClientCount,
			PetCount:            st.Data.PetCount,
			PendingAppointments: st.Data.PendingAppointments,
			ConsultationCount:   st.Data.ConsultationCount,
			TotalIncome:         st.Data.TotalIncome,
		})
	})
}

type connectivityRequest struct {
	State string `json:"state"`
}

type connectivityResponse struct {
	State string `json:"state"`
}

func registerConnectivity(r chi.Router, m *notify.ConnectivityMonitor) {
	r.Get("/connectivity", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, connectivityResponse{State: string(m.State())})
	})

	r.Post("/connectivity", func(w http.ResponseWriter, req *http.Request) {
		var body connectivityRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		st := notify.ConnState(body.State)
		if !notify.ValidConnState(st) {
			http.Error(w, "state must be offline|mobile|wifi", http.StatusBadRequest)
			return
		}
		m.SetState(st)
		w.WriteHeader(http.StatusNoContent)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
