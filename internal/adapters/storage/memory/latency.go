// Package memory implementa los repositorios sobre el store en memoria,
// agregando la latencia artificial que simula I/O de red o disco (acá
// no existe ninguno de los dos).
package memory

import (
	"context"
	"time"
)

// Latency es la política de demora por tipo de operación. Se inyecta al
// construir cada repo; los tests usan Zero() para no esperar nada.
type Latency struct {
	Add          time.Duration
	Edit         time.Duration
	Delete       time.Duration
	Consultation time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		Add:          1000 * time.Millisecond,
		Edit:         800 * time.Millisecond,
		Delete:       500 * time.Millisecond,
		Consultation: 1500 * time.Millisecond,
	}
}

func Zero() Latency {
	return Latency{}
}

// sleep espera d o hasta que el contexto se cancele. La demora va ANTES
// de la mutación del store: si el llamador cancela durante la espera, la
// escritura nunca ocurre y no quedan efectos parciales.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
