package views

import (
	"context"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/domain/vaccines"
	"vet-clinic-manager/internal/platform/watch"
)

type VaccineRow struct {
	Vaccine vaccines.Vaccine
	PetName string
}

type VaccinesData struct {
	Rows     []VaccineRow
	Upcoming []VaccineRow // refuerzos dentro de 30 días, ascendente
}

// VaccinesView combina el registro completo con la vista derivada de
// próximos refuerzos.
type VaccinesView struct {
	actionRunner
	*closer

	vaccines *vaccines.Service

	stateW  *watch.Watch[State[VaccinesData]]
	petsSrc watch.Source[[]pets.Pet]
}

func NewVaccinesView(vs *vaccines.Service, petsSrc watch.Source[[]pets.Pet]) *VaccinesView {
	v := &VaccinesView{
		actionRunner: newActionRunner(),
		closer:       newCloser(),
		vaccines:     vs,
		stateW:       watch.NewValue(Loading[VaccinesData]()),
		petsSrc:      petsSrc,
	}

	allCh, cancel := vs.All().Subscribe()
	v.add(cancel)
	upcomingCh, cancel := vs.Upcoming().Subscribe()
	v.add(cancel)
	petsCh, cancel := petsSrc.Subscribe()
	v.add(cancel)

	go v.loop(allCh, upcomingCh, petsCh)
	return v
}

func (v *VaccinesView) State() watch.Source[State[VaccinesData]] {
	return v.stateW
}

func (v *VaccinesView) Register(ctx context.Context, in vaccines.Input) {
	v.run(ctx, "Registrando vacuna...", func(ctx context.Context) error {
		_, err := v.vaccines.Create(ctx, in)
		return err
	})
}

// loop siembra los últimos valores de todas las fuentes antes de la
// primera emisión: el primer Success ya es el combinado completo.
func (v *VaccinesView) loop(allCh, upcomingCh <-chan []vaccines.Vaccine, petsCh <-chan []pets.Pet) {
	lastAll := v.vaccines.All().Get()
	lastUpcoming := v.vaccines.Upcoming().Get()
	lastPets := v.petsSrc.Get()

	v.stateW.Set(Success(combineVaccines(lastAll, lastUpcoming, lastPets)))

	for {
		select {
		case lastAll = <-allCh:
		case lastUpcoming = <-upcomingCh:
		case lastPets = <-petsCh:
		case <-v.done:
			return
		}
		v.stateW.Set(Success(combineVaccines(lastAll, lastUpcoming, lastPets)))
	}
}

func combineVaccines(all, upcoming []vaccines.Vaccine, ps []pets.Pet) VaccinesData {
	names := make(map[int64]string, len(ps))
	for _, p := range ps {
		names[p.ID] = p.Name
	}

	toRows := func(vs []vaccines.Vaccine) []VaccineRow {
		rows := make([]VaccineRow, 0, len(vs))
		for _, vac := range vs {
			rows = append(rows, VaccineRow{Vaccine: vac, PetName: names[vac.PetID]})
		}
		return rows
	}

	return VaccinesData{Rows: toRows(all), Upcoming: toRows(upcoming)}
}
