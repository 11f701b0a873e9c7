package watch

// mapped es una vista derivada perezosa: no mantiene goroutine propia,
// aplica fn al leer y al reenviar cada emisión de la fuente.
type mapped[T, U any] struct {
	src Source[T]
	fn  func(T) U
}

// Map crea una vista derivada que transforma cada snapshot de src.
// Se recalcula sobre el snapshot completo en cada emisión (no hay
// mantenimiento incremental).
func Map[T, U any](src Source[T], fn func(T) U) Source[U] {
	return &mapped[T, U]{src: src, fn: fn}
}

// Filter deriva una vista con los elementos del slice que cumplen keep.
func Filter[T any](src Source[[]T], keep func(T) bool) Source[[]T] {
	return Map(src, func(items []T) []T {
		out := make([]T, 0, len(items))
		for _, it := range items {
			if keep(it) {
				out = append(out, it)
			}
		}
		return out
	})
}

func (m *mapped[T, U]) Get() U {
	return m.fn(m.src.Get())
}

func (m *mapped[T, U]) Subscribe() (<-chan U, func()) {
	in, cancelSrc := m.src.Subscribe()

	out := make(chan U, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case v, ok := <-in:
				if !ok {
					return
				}
				send(out, m.fn(v))
			case <-done:
				return
			}
		}
	}()

	cancel := func() {
		cancelSrc()
		close(done)
	}
	return out, cancel
}
