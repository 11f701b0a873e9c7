package views

import (
	"context"

	"vet-clinic-manager/internal/domain/appointments"
	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

// AppointmentRow resuelve los nombres de mascota y cliente de la cita.
// Las FKs no están enforced; un ID roto deja el nombre vacío.
type AppointmentRow struct {
	Appointment appointments.Appointment
	PetName     string
	ClientName  string
}

type AppointmentsData struct {
	Rows         []AppointmentRow
	StatusFilter appointments.Status // "" = todas
	DateFilter   string              // "" = todas
}

// AppointmentsView combina citas + mascotas + clientes + filtros.
type AppointmentsView struct {
	actionRunner
	*closer

	appointments *appointments.Service

	statusW *watch.Watch[appointments.Status]
	dateW   *watch.Watch[string]
	stateW  *watch.Watch[State[AppointmentsData]]

	petsSrc    watch.Source[[]pets.Pet]
	clientsSrc watch.Source[[]clients.Client]
}

func NewAppointmentsView(as *appointments.Service, petsSrc watch.Source[[]pets.Pet], clientsSrc watch.Source[[]clients.Client]) *AppointmentsView {
	v := &AppointmentsView{
		actionRunner: newActionRunner(),
		closer:       newCloser(),
		appointments: as,
		statusW:      watch.NewValue(appointments.Status("")),
		dateW:        watch.NewValue(""),
		stateW:       watch.NewValue(Loading[AppointmentsData]()),
		petsSrc:      petsSrc,
		clientsSrc:   clientsSrc,
	}

	apptCh, cancel := as.All().Subscribe()
	v.add(cancel)
	petsCh, cancel := petsSrc.Subscribe()
	v.add(cancel)
	clientsCh, cancel := clientsSrc.Subscribe()
	v.add(cancel)
	statusCh, cancel := v.statusW.Subscribe()
	v.add(cancel)
	dateCh, cancel := v.dateW.Subscribe()
	v.add(cancel)

	go v.loop(apptCh, petsCh, clientsCh, statusCh, dateCh)
	return v
}

func (v *AppointmentsView) State() watch.Source[State[AppointmentsData]] {
	return v.stateW
}

func (v *AppointmentsView) SetStatusFilter(s appointments.Status) {
	v.statusW.Set(s)
}

func (v *AppointmentsView) SetDateFilter(date string) {
	v.dateW.Set(date)
}

func (v *AppointmentsView) Schedule(ctx context.Context, in appointments.Input) {
	v.run(ctx, "Agendando cita...", func(ctx context.Context) error {
		_, err := v.appointments.Create(ctx, in)
		return err
	})
}

func (v *AppointmentsView) ChangeStatus(ctx context.Context, id int64, st appointments.Status) {
	v.run(ctx, "Actualizando estado...", func(ctx context.Context) error {
		_, err := v.appointments.ChangeStatus(ctx, id, st)
		return err
	})
}

func (v *AppointmentsView) Cancel(ctx context.Context, id int64) {
	v.ChangeStatus(ctx, id, appointments.StatusCancelled)
}

func (v *AppointmentsView) Delete(ctx context.Context, id int64) {
	v.run(ctx, "Eliminando cita...", func(ctx context.Context) error {
		return v.appointments.Delete(ctx, id)
	})
}

// loop siembra los últimos valores de todas las fuentes antes de la
// primera emisión: el primer Success ya es el combinado completo.
func (v *AppointmentsView) loop(
	apptCh <-chan []appointments.Appointment,
	petsCh <-chan []pets.Pet,
	clientsCh <-chan []clients.Client,
	statusCh <-chan appointments.Status,
	dateCh <-chan string,
) {
	lastAppts := v.appointments.All().Get()
	lastPets := v.petsSrc.Get()
	lastClients := v.clientsSrc.Get()
	lastStatus := v.statusW.Get()
	lastDate := v.dateW.Get()

	v.stateW.Set(Success(combineAppointments(lastAppts, lastPets, lastClients, lastStatus, lastDate)))

	for {
		select {
		case lastAppts = <-apptCh:
		case lastPets = <-petsCh:
		case lastClients = <-clientsCh:
		case lastStatus = <-statusCh:
		case lastDate = <-dateCh:
		case <-v.done:
			return
		}
		v.stateW.Set(Success(combineAppointments(lastAppts, lastPets, lastClients, lastStatus, lastDate)))
	}
}

func combineAppointments(as []appointments.Appointment, ps []pets.Pet, cs []clients.Client, status appointments.Status, date string) AppointmentsData {
	petNames := make(map[int64]string, len(ps))
	for _, p := range ps {
		petNames[p.ID] = p.Name
	}
	clientNames := make(map[int64]string, len(cs))
	for _, c := range cs {
		clientNames[c.ID] = c.Name
	}

	rows := make([]AppointmentRow, 0, len(as))
	for _, a := range as {
		if status != "" && a.Status != status {
			continue
		}
		if date != "" && a.Date != date {
			continue
		}
		rows = append(rows, AppointmentRow{
			Appointment: a,
			PetName:     petNames[a.PetID],
			ClientName:  clientNames[a.ClientID],
		})
	}
	return AppointmentsData{Rows: rows, StatusFilter: status, DateFilter: date}
}
