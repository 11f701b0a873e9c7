package notify

import (
	"sync"

	"vet-clinic-manager/internal/platform/watch"
)

// ConnState es el estado de red que reporta la plataforma.
type ConnState string

const (
	ConnOffline ConnState = "offline"
	ConnMobile  ConnState = "mobile"
	ConnWifi    ConnState = "wifi"
)

func ValidConnState(s ConnState) bool {
	switch s {
	case ConnOffline, ConnMobile, ConnWifi:
		return true
	}
	return false
}

// Counter expone el tamaño actual de una colección observable.
type Counter interface {
	Count() int
}

// WatchCounter adapta un watch de slice a Counter.
func WatchCounter[T any](src watch.Source[[]T]) Counter {
	return watchCounter[T]{src: src}
}

type watchCounter[T any] struct {
	src watch.Source[[]T]
}

func (c watchCounter[T]) Count() int { return len(c.src.Get()) }

// ConnectivityMonitor reacciona a las transiciones de red: al pasar a
// Wi-Fi (desde cualquier otro estado) dispara el resumen de consultas y
// mascotas. Una sola vez por transición; quedarse en Wi-Fi no repite.
type ConnectivityMonitor struct {
	mu    sync.Mutex
	state ConnState

	consultations Counter
	pets          Counter
	notify        *Service
}

func NewConnectivityMonitor(consultations, pets Counter, notify *Service) *ConnectivityMonitor {
	return &ConnectivityMonitor{
		state:         ConnOffline,
		consultations: consultations,
		pets:          pets,
		notify:        notify,
	}
}

func (m *ConnectivityMonitor) State() ConnState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *ConnectivityMonitor) SetState(s ConnState) {
	m.mu.Lock()
	prev := m.state
	m.state = s
	m.mu.Unlock()

	if s == ConnWifi && prev != ConnWifi {
		m.notify.ConnectivitySummary(m.consultations.Count(), m.pets.Count())
	}
}
