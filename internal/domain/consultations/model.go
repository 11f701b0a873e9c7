package consultations

import (
	"time"

	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/pets"
)

// Consultation es el registro de una atención. Cliente, mascota y
// medicamentos quedan embebidos como snapshots al momento de crearla,
// no como referencias: ediciones posteriores a esas entidades no la
// afectan. Una consulta nunca se edita ni se borra.
type Consultation struct {
	ID          int64
	Client      clients.Client
	Pet         pets.Pet
	Medications []medications.Medication
	Description string
	CreatedAt   time.Time
	Total       float64
}
