package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/appointments"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type appointmentsRepo struct {
	store *store.Store
	lat   Latency
}

func NewAppointmentsRepo(s *store.Store, lat Latency) appointments.Repository {
	return &appointmentsRepo{store: s, lat: lat}
}

func (r *appointmentsRepo) Add(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	if err := sleep(ctx, r.lat.Add); err != nil {
		return appointments.Appointment{}, err
	}
	return r.store.AddAppointment(a), nil
}

func (r *appointmentsRepo) Edit(ctx context.Context, a appointments.Appointment) error {
	if err := sleep(ctx, r.lat.Edit); err != nil {
		return err
	}
	r.store.EditAppointment(a)
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id int64) error {
	if err := sleep(ctx, r.lat.Delete); err != nil {
		return err
	}
	r.store.DeleteAppointment(id)
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	a, ok := r.store.AppointmentByID(id)
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) All() watch.Source[[]appointments.Appointment] {
	return r.store.Appointments()
}

func (r *appointmentsRepo) ByStatus(s appointments.Status) watch.Source[[]appointments.Appointment] {
	return watch.Filter(r.store.Appointments(), func(a appointments.Appointment) bool {
		return a.Status == s
	})
}

func (r *appointmentsRepo) ByDate(date string) watch.Source[[]appointments.Appointment] {
	return watch.Filter(r.store.Appointments(), func(a appointments.Appointment) bool {
		return a.Date == date
	})
}
