// Package views implementa los agregadores de estado de pantalla:
// combinan varios observables de repositorio en un único valor de UI con
// semántica combine-latest (cualquier emisión recalcula el combinado a
// partir del último valor de TODAS las fuentes) y exponen los métodos de
// acción imperativos (agregar/editar/borrar) con flag de ocupado y slot
// de error descartable.
package views

import (
	"context"
	"sync"

	"vet-clinic-manager/internal/platform/watch"
)

// Phase es el variant cerrado del estado de pantalla.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// State es el valor único que observa la pantalla. Loading solo existe
// como placeholder antes de la primera emisión combinada; en régimen el
// agregador queda en Success (los errores de acción van por ActionState,
// no por acá).
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

func Loading[T any]() State[T] {
	return State[T]{Phase: PhaseLoading}
}

func Success[T any](data T) State[T] {
	return State[T]{Phase: PhaseSuccess, Data: data}
}

func Failure[T any](msg string) State[T] {
	return State[T]{Phase: PhaseError, Message: msg}
}

// ActionState es la máquina por acción: Idle → Busy(mensaje) → Idle,
// con error descartable si la acción falló. No hay estado de retry; una
// acción fallida se reintenta a mano.
type ActionState struct {
	Busy    bool
	Message string // mensaje de progreso mientras Busy
	Error   string // aviso descartable de la última falla
}

// actionRunner implementa el patrón común de las acciones de vista.
type actionRunner struct {
	w *watch.Watch[ActionState]
}

func newActionRunner() actionRunner {
	return actionRunner{w: watch.NewValue(ActionState{})}
}

func (a *actionRunner) Actions() watch.Source[ActionState] {
	return a.w
}

func (a *actionRunner) DismissError() {
	a.w.Update(func(s ActionState) ActionState {
		s.Error = ""
		return s
	})
}

// run marca ocupado con el mensaje de progreso, ejecuta, captura el
// error en el slot y SIEMPRE limpia el flag al salir.
func (a *actionRunner) run(ctx context.Context, msg string, fn func(context.Context) error) {
	a.w.Set(ActionState{Busy: true, Message: msg})
	defer a.w.Update(func(s ActionState) ActionState {
		s.Busy = false
		s.Message = ""
		return s
	})

	if err := fn(ctx); err != nil {
		a.w.Update(func(s ActionState) ActionState {
			s.Error = err.Error()
			return s
		})
	}
}

// closer junta los cancel de las suscripciones de un agregador. Los
// add ocurren todos en el constructor, antes de arrancar el loop; Close
// recién puede correr cuando el constructor ya devolvió, así que nunca
// hay add y Close concurrentes.
type closer struct {
	once    sync.Once
	cancels []func()
	done    chan struct{}
}

func newCloser() *closer {
	return &closer{done: make(chan struct{})}
}

func (c *closer) add(cancel func()) {
	c.cancels = append(c.cancels, cancel)
}

// Close corta el loop de combinación; tras cerrarlo la vista queda
// congelada en su último estado.
func (c *closer) Close() {
	c.once.Do(func() {
		close(c.done)
		for _, cancel := range c.cancels {
			cancel()
		}
	})
}
