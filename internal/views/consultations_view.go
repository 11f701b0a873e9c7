package views

import (
	"context"

	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/platform/watch"
)

type ConsultationsData struct {
	Consultations []consultations.Consultation
	TotalIncome   float64
}

// ConsultationsView combina el historial de consultas con el observable
// derivado de ingresos totales.
type ConsultationsView struct {
	actionRunner
	*closer

	consultations *consultations.Service

	stateW *watch.Watch[State[ConsultationsData]]
}

func NewConsultationsView(cs *consultations.Service) *ConsultationsView {
	v := &ConsultationsView{
		actionRunner:  newActionRunner(),
		closer:        newCloser(),
		consultations: cs,
		stateW:        watch.NewValue(Loading[ConsultationsData]()),
	}

	allCh, cancel := cs.All().Subscribe()
	v.add(cancel)
	incomeCh, cancel := cs.TotalIncome().Subscribe()
	v.add(cancel)

	go v.loop(allCh, incomeCh)
	return v
}

func (v *ConsultationsView) State() watch.Source[State[ConsultationsData]] {
	return v.stateW
}

func (v *ConsultationsView) CreateConsultation(ctx context.Context, in consultations.CreateInput) {
	v.run(ctx, "Creando consulta...", func(ctx context.Context) error {
		_, err := v.consultations.Create(ctx, in)
		return err
	})
}

// loop siembra los últimos valores de ambas fuentes antes de la primera
// emisión: el primer Success ya es el combinado completo.
func (v *ConsultationsView) loop(allCh <-chan []consultations.Consultation, incomeCh <-chan float64) {
	lastAll := v.consultations.All().Get()
	lastIncome := v.consultations.TotalIncome().Get()

	v.stateW.Set(Success(ConsultationsData{
		Consultations: lastAll,
		TotalIncome:   lastIncome,
	}))

	for {
		select {
		case lastAll = <-allCh:
		case lastIncome = <-incomeCh:
		case <-v.done:
			return
		}
		v.stateW.Set(Success(ConsultationsData{
			Consultations: lastAll,
			TotalIncome:   lastIncome,
		}))
	}
}
