package views

import (
	"vet-clinic-manager/internal/domain/appointments"
	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

type DashboardData struct {
	ClientCount         int
	PetCount            int
	PendingAppointments int
	ConsultationCount   int
	TotalIncome         float64
}

// DashboardView es el agregador de la pantalla principal: cuatro fuentes
// combinadas en un único resumen.
type DashboardView struct {
	*closer

	stateW *watch.Watch[State[DashboardData]]

	clientsSrc       watch.Source[[]clients.Client]
	petsSrc          watch.Source[[]pets.Pet]
	appointmentsSrc  watch.Source[[]appointments.Appointment]
	consultationsSrc watch.Source[[]consultations.Consultation]
}

func NewDashboardView(
	clientsSrc watch.Source[[]clients.Client],
	petsSrc watch.Source[[]pets.Pet],
	appointmentsSrc watch.Source[[]appointments.Appointment],
	consultationsSrc watch.Source[[]consultations.Consultation],
) *DashboardView {
	v := &DashboardView{
		closer:           newCloser(),
		stateW:           watch.NewValue(Loading[DashboardData]()),
		clientsSrc:       clientsSrc,
		petsSrc:          petsSrc,
		appointmentsSrc:  appointmentsSrc,
		consultationsSrc: consultationsSrc,
	}

	clientsCh, cancel := clientsSrc.Subscribe()
	v.add(cancel)
	petsCh, cancel := petsSrc.Subscribe()
	v.add(cancel)
	apptCh, cancel := appointmentsSrc.Subscribe()
	v.add(cancel)
	consCh, cancel := consultationsSrc.Subscribe()
	v.add(cancel)

	go v.loop(clientsCh, petsCh, apptCh, consCh)
	return v
}

func (v *DashboardView) State() watch.Source[State[DashboardData]] {
	return v.stateW
}

// loop siembra los últimos valores de las cuatro fuentes antes de la
// primera emisión: el primer Success ya es el resumen completo, nunca
// uno parcial con contadores en cero.
func (v *DashboardView) loop(
	clientsCh <-chan []clients.Client,
	petsCh <-chan []pets.Pet,
	apptCh <-chan []appointments.Appointment,
	consCh <-chan []consultations.Consultation,
) {
	lastClients := v.clientsSrc.Get()
	lastPets := v.petsSrc.Get()
	lastAppts := v.appointmentsSrc.Get()
	lastCons := v.consultationsSrc.Get()

	v.stateW.Set(Success(combineDashboard(lastClients, lastPets, lastAppts, lastCons)))

	for {
		select {
		case lastClients = <-clientsCh:
		case lastPets = <-petsCh:
		case lastAppts = <-apptCh:
		case lastCons = <-consCh:
		case <-v.done:
			return
		}
		v.stateW.Set(Success(combineDashboard(lastClients, lastPets, lastAppts, lastCons)))
	}
}

func combineDashboard(cs []clients.Client, ps []pets.Pet, as []appointments.Appointment, cons []consultations.Consultation) DashboardData {
	pending := 0
	for _, a := range as {
		if a.Status == appointments.StatusPending {
			pending++
		}
	}
	var income float64
	for _, c := range cons {
		income += c.Total
	}

	return DashboardData{
		ClientCount:         len(cs),
		PetCount:            len(ps),
		PendingAppointments: pending,
		ConsultationCount:   len(cons),
		TotalIncome:         income,
	}
}
