// Package store es la única fuente de verdad del proceso: colecciones
// mutables de entidades expuestas como snapshots observables. Cada
// mutación reemplaza la colección completa y re-emite el snapshot nuevo
// de forma síncrona; no hay diffs incrementales.
//
// El store no tiene modos de falla: Add nunca falla, Edit y Delete sobre
// un ID inexistente son no-ops silenciosos. Toda mutación pasa por el
// lock del store, así que la disciplina single-writer se mantiene aunque
// los repos se llamen desde varias goroutines.
package store

import (
	"sync"

	"vet-clinic-manager/internal/domain/appointments"
	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/domain/users"
	"vet-clinic-manager/internal/domain/vaccines"
	"vet-clinic-manager/internal/platform/watch"
)

type Store struct {
	mu sync.Mutex

	// IDs secuenciales por tipo de entidad: positivos, únicos,
	// estrictamente crecientes, nunca reutilizados tras un borrado.
	nextClientID       int64
	nextPetID          int64
	nextAppointmentID  int64
	nextVaccineID      int64
	nextConsultationID int64

	clientsW       *watch.Watch[[]clients.Client]
	petsW          *watch.Watch[[]pets.Pet]
	appointmentsW  *watch.Watch[[]appointments.Appointment]
	vaccinesW      *watch.Watch[[]vaccines.Vaccine]
	medicationsW   *watch.Watch[[]medications.Medication]
	consultationsW *watch.Watch[[]consultations.Consultation]
	usersW         *watch.Watch[[]users.User]
}

// New construye el store con las colecciones vacías, el catálogo de
// medicamentos sembrado y las cuentas de acceso de la maqueta. El store
// no es un singleton: lo construye el composition root y se inyecta por
// referencia a los repos.
func New() *Store {
	return &Store{
		nextClientID:       1,
		nextPetID:          1,
		nextAppointmentID:  1,
		nextVaccineID:      1,
		nextConsultationID: 1,

		clientsW:       watch.NewValue([]clients.Client{}),
		petsW:          watch.NewValue([]pets.Pet{}),
		appointmentsW:  watch.NewValue([]appointments.Appointment{}),
		vaccinesW:      watch.NewValue([]vaccines.Vaccine{}),
		medicationsW:   watch.NewValue(seedMedications()),
		consultationsW: watch.NewValue([]consultations.Consultation{}),
		usersW:         watch.NewValue(seedUsers()),
	}
}

// Colecciones observables. Los lectores solo ven Source (no pueden
// publicar); la mutación es exclusiva del store.

func (s *Store) Clients() watch.Source[[]clients.Client]          { return s.clientsW }
func (s *Store) Pets() watch.Source[[]pets.Pet]                   { return s.petsW }
func (s *Store) Appointments() watch.Source[[]appointments.Appointment] {
	return s.appointmentsW
}
func (s *Store) Vaccines() watch.Source[[]vaccines.Vaccine]       { return s.vaccinesW }
func (s *Store) Medications() watch.Source[[]medications.Medication] {
	return s.medicationsW
}

func (s *Store) Consultations() watch.Source[[]consultations.Consultation] {
	return s.consultationsW
}

// ---- Clients ----

func (s *Store) AddClient(c clients.Client) clients.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextClientID
	s.nextClientID++
	s.clientsW.Set(appendCopy(s.clientsW.Get(), c))
	return c
}

func (s *Store) EditClient(c clients.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientsW.Set(replaceByID(s.clientsW.Get(), c, func(x clients.Client) int64 { return x.ID }))
}

// DeleteClient borra al cliente y en cascada todas las mascotas cuyo
// ClientID coincida. La cascada es una función pura (ver cascade.go)
// para poder testearla sin la maquinaria observable.
func (s *Store) DeleteClient(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ps := CascadeDeleteClient(s.clientsW.Get(), s.petsW.Get(), id)
	s.clientsW.Set(cs)
	s.petsW.Set(ps)
}

func (s *Store) ClientByID(id int64) (clients.Client, bool) {
	return findByID(s.clientsW.Get(), id, func(x clients.Client) int64 { return x.ID })
}

// ---- Pets ----

func (s *Store) AddPet(p pets.Pet) pets.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPetID
	s.nextPetID++
	s.petsW.Set(appendCopy(s.petsW.Get(), p))
	return p
}

func (s *Store) EditPet(p pets.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petsW.Set(replaceByID(s.petsW.Get(), p, func(x pets.Pet) int64 { return x.ID }))
}

func (s *Store) DeletePet(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petsW.Set(removeByID(s.petsW.Get(), id, func(x pets.Pet) int64 { return x.ID }))
}

func (s *Store) PetByID(id int64) (pets.Pet, bool) {
	return findByID(s.petsW.Get(), id, func(x pets.Pet) int64 { return x.ID })
}

// ---- Appointments ----

func (s *Store) AddAppointment(a appointments.Appointment) appointments.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAppointmentID
	s.nextAppointmentID++
	s.appointmentsW.Set(appendCopy(s.appointmentsW.Get(), a))
	return a
}

func (s *Store) EditAppointment(a appointments.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointmentsW.Set(replaceByID(s.appointmentsW.Get(), a, func(x appointments.Appointment) int64 { return x.ID }))
}

func (s *Store) DeleteAppointment(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointmentsW.Set(removeByID(s.appointmentsW.Get(), id, func(x appointments.Appointment) int64 { return x.ID }))
}

func (s *Store) AppointmentByID(id int64) (appointments.Appointment, bool) {
	return findByID(s.appointmentsW.Get(), id, func(x appointments.Appointment) int64 { return x.ID })
}

// ---- Vaccines ----

func (s *Store) AddVaccine(v vaccines.Vaccine) vaccines.Vaccine {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextVaccineID
	s.nextVaccineID++
	s.vaccinesW.Set(appendCopy(s.vaccinesW.Get(), v))
	return v
}

func (s *Store) EditVaccine(v vaccines.Vaccine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vaccinesW.Set(replaceByID(s.vaccinesW.Get(), v, func(x vaccines.Vaccine) int64 { return x.ID }))
}

func (s *Store) DeleteVaccine(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vaccinesW.Set(removeByID(s.vaccinesW.Get(), id, func(x vaccines.Vaccine) int64 { return x.ID }))
}

func (s *Store) VaccineByID(id int64) (vaccines.Vaccine, bool) {
	return findByID(s.vaccinesW.Get(), id, func(x vaccines.Vaccine) int64 { return x.ID })
}

// ---- Medications (solo lectura) ----

func (s *Store) MedicationByID(id int64) (medications.Medication, bool) {
	return findByID(s.medicationsW.Get(), id, func(x medications.Medication) int64 { return x.ID })
}

// ---- Consultations (append-only) ----

func (s *Store) AppendConsultation(c consultations.Consultation) consultations.Consultation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextConsultationID
	s.nextConsultationID++
	s.consultationsW.Set(appendCopy(s.consultationsW.Get(), c))
	return c
}

func (s *Store) ConsultationByID(id int64) (consultations.Consultation, bool) {
	return findByID(s.consultationsW.Get(), id, func(x consultations.Consultation) int64 { return x.ID })
}

// ---- Users (sembrados, solo lectura) ----

func (s *Store) UserByEmail(email string) (users.User, bool) {
	for _, u := range s.usersW.Get() {
		if u.Email == email {
			return u, true
		}
	}
	return users.User{}, false
}

func (s *Store) UserByID(id int64) (users.User, bool) {
	return findByID(s.usersW.Get(), id, func(x users.User) int64 { return x.ID })
}

// ---- helpers de colección (copy-on-write; los snapshots publicados
// nunca se mutan en el lugar) ----

func appendCopy[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

func replaceByID[T any](items []T, v T, idOf func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) == idOf(v) {
			out = append(out, v)
			continue
		}
		out = append(out, it)
	}
	return out
}

func removeByID[T any](items []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

func findByID[T any](items []T, id int64, idOf func(T) int64) (T, bool) {
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
