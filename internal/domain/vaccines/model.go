package vaccines

import "time"

// Vaccine es una vacuna aplicada a una mascota, con su próxima fecha
// de refuerzo.
type Vaccine struct {
	ID        int64
	Name      string
	PetID     int64
	AppliedAt time.Time
	NextDueAt time.Time
}

// DueWindow es la ventana de "próximas vacunas".
const DueWindow = 30 * 24 * time.Hour

// DueSoon indica si el refuerzo cae estrictamente después de now y a lo
// sumo 30 días adelante. Una vacuna que vence en 31 días queda afuera;
// una que vence mañana entra.
func (v Vaccine) DueSoon(now time.Time) bool {
	return v.NextDueAt.After(now) && !v.NextDueAt.After(now.Add(DueWindow))
}
