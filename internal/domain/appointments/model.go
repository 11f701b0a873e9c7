package appointments

// Status es el estado de una cita. PENDING es el único estado inicial;
// COMPLETED y CANCELLED se consideran terminales, aunque el cambio de
// estado genérico no lo impone (ver ChangeStatus en el service).
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment es una cita agendada. Date y Time se guardan como texto
// ("2006-01-02" y "15:04") igual que los ingresa el usuario; la
// validación de formato ocurre en el service.
type Appointment struct {
	ID       int64
	PetID    int64
	ClientID int64
	Date     string
	Time     string
	Reason   string
	Status   Status
}
