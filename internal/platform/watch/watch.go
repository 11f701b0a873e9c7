// Package watch implementa el primitivo reactivo del sistema: un valor
// observable que guarda el último snapshot y notifica a múltiples
// suscriptores cuando cambia.
//
// Cada suscriptor recibe por un canal con buffer 1 y política "drop old":
// si el suscriptor va lento, el valor pendiente se reemplaza por el más
// nuevo. Nunca se bloquea al publicador y nunca se encola historia.
package watch

import "sync"

// Source es el lado de solo-lectura de un Watch. Las vistas derivadas
// (Map, Filter) también lo implementan.
type Source[T any] interface {
	// Get devuelve el último valor publicado (zero value si nunca se publicó).
	Get() T
	// Subscribe entrega el valor actual de inmediato y luego cada cambio.
	// El cancel devuelto libera la suscripción; siempre hay que llamarlo.
	Subscribe() (<-chan T, func())
}

// Watch es un valor observable con último-valor cacheado.
type Watch[T any] struct {
	mu     sync.Mutex
	last   T
	subs   map[int]chan T
	nextID int
}

func New[T any]() *Watch[T] {
	return &Watch[T]{subs: make(map[int]chan T)}
}

// NewValue crea un Watch ya inicializado con un valor.
func NewValue[T any](initial T) *Watch[T] {
	w := New[T]()
	w.last = initial
	return w
}

func (w *Watch[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Set publica un valor nuevo. La notificación es síncrona: al volver,
// cada canal de suscriptor ya tiene el valor (o lo reemplazó).
func (w *Watch[T]) Set(v T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = v
	for _, ch := range w.subs {
		send(ch, v)
	}
}

// Update aplica fn sobre el último valor y publica el resultado.
// El lock cubre lectura y escritura, así no se pierden updates concurrentes.
func (w *Watch[T]) Update(fn func(T) T) T {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = fn(w.last)
	for _, ch := range w.subs {
		send(ch, w.last)
	}
	return w.last
}

func (w *Watch[T]) Subscribe() (<-chan T, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++

	ch := make(chan T, 1)
	ch <- w.last
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
	return ch, cancel
}

// send hace drain-then-send: si el buffer está ocupado, descarta el valor
// viejo y deja el nuevo. El suscriptor siempre ve el último estado.
func send[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
