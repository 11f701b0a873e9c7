// Package notify arma y despacha las notificaciones locales del sistema.
// La entrega es best-effort: si el sender falla se loguea y se sigue, no
// hay reintentos ni ack.
package notify

import (
	"fmt"
	"time"

	"vet-clinic-manager/internal/platform/logger"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryAppointment  Category = "appointment_confirmation"
	CategoryVaccine      Category = "vaccine_registration"
	CategoryConnectivity Category = "connectivity_summary"
)

// Notification lleva un cuerpo corto (banner) y uno expandido (detalle).
type Notification struct {
	ID       string
	Category Category
	Title    string
	Short    string
	Expanded string
	At       time.Time
}

// Sender es el servicio de notificaciones de la plataforma. En este
// backend el default escribe al log.
type Sender interface {
	Send(n Notification) error
}

type LogSender struct {
	Log logger.Logger
}

func (s LogSender) Send(n Notification) error {
	s.Log.Info("notification", map[string]any{
		"id":       n.ID,
		"category": string(n.Category),
		"title":    n.Title,
		"short":    n.Short,
	})
	return nil
}

type Service struct {
	sender Sender
	log    logger.Logger
	now    func() time.Time
}

func NewService(sender Sender, log logger.Logger) *Service {
	return &Service{sender: sender, log: log, now: time.Now}
}

// AppointmentConfirmed se dispara síncronamente después de que la
// mutación del store de la cita tuvo éxito.
func (s *Service) AppointmentConfirmed(appointmentID int64, petName, date, hour string) {
	s.dispatch(Notification{
		Category: CategoryAppointment,
		Title:    "Cita confirmada",
		Short:    fmt.Sprintf("Cita para %s el %s", petName, date),
		Expanded: fmt.Sprintf("Se registró la cita #%d para %s el %s a las %s. Te esperamos en la clínica.", appointmentID, petName, date, hour),
	})
}

func (s *Service) VaccineRegistered(vaccineName, petName string, nextDue time.Time) {
	s.dispatch(Notification{
		Category: CategoryVaccine,
		Title:    "Vacuna registrada",
		Short:    fmt.Sprintf("%s aplicada a %s", vaccineName, petName),
		Expanded: fmt.Sprintf("Se registró la vacuna %s para %s. Próximo refuerzo: %s.", vaccineName, petName, nextDue.Format("2006-01-02")),
	})
}

// ConnectivitySummary es el resumen que se muestra al recuperar Wi-Fi.
func (s *Service) ConnectivitySummary(consultationCount, petCount int) {
	s.dispatch(Notification{
		Category: CategoryConnectivity,
		Title:    "Resumen de la clínica",
		Short:    fmt.Sprintf("%d consultas, %d mascotas", consultationCount, petCount),
		Expanded: fmt.Sprintf("Conectado por Wi-Fi. La clínica registra %d consultas y %d mascotas.", consultationCount, petCount),
	})
}

func (s *Service) dispatch(n Notification) {
	n.ID = uuid.NewString()
	n.At = s.now()

	if err := s.sender.Send(n); err != nil {
		// sin reintento: fire and forget
		s.log.Warn("notification delivery failed", map[string]any{
			"category": string(n.Category),
			"error":    err.Error(),
		})
	}
}
