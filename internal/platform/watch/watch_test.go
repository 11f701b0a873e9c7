package watch

import (
	"testing"
	"time"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando emisión")
		panic("unreachable")
	}
}

func TestSubscribe_EmitsCurrentValueFirst(t *testing.T) {
	w := NewValue([]int{1, 2})

	ch, cancel := w.Subscribe()
	defer cancel()

	got := recv(t, ch)
	if len(got) != 2 || got[0] != 1 {
		t.Fatalf("expected initial snapshot [1 2], got %v", got)
	}
}

func TestSet_NotifiesAllSubscribers(t *testing.T) {
	w := NewValue(0)

	ch1, cancel1 := w.Subscribe()
	defer cancel1()
	ch2, cancel2 := w.Subscribe()
	defer cancel2()

	// drenar el valor inicial
	recv(t, ch1)
	recv(t, ch2)

	w.Set(7)

	if got := recv(t, ch1); got != 7 {
		t.Fatalf("sub1: expected 7, got %d", got)
	}
	if got := recv(t, ch2); got != 7 {
		t.Fatalf("sub2: expected 7, got %d", got)
	}
}

func TestSet_DropOld_SlowSubscriberSeesLatest(t *testing.T) {
	w := NewValue(0)

	ch, cancel := w.Subscribe()
	defer cancel()

	// sin leer: cada Set reemplaza el valor pendiente
	w.Set(1)
	w.Set(2)
	w.Set(3)

	if got := recv(t, ch); got != 3 {
		t.Fatalf("expected latest value 3, got %d", got)
	}
	if got := w.Get(); got != 3 {
		t.Fatalf("Get: expected 3, got %d", got)
	}
}

func TestCancel_StopsNotifications(t *testing.T) {
	w := NewValue(0)

	ch, cancel := w.Subscribe()
	recv(t, ch)
	cancel()

	w.Set(9)

	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("expected no emission after cancel, got %d", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUpdate_ReadModifyWriteAtomically(t *testing.T) {
	w := NewValue(10)

	got := w.Update(func(v int) int { return v + 5 })
	if got != 15 {
		t.Fatalf("Update return: expected 15, got %d", got)
	}
	if w.Get() != 15 {
		t.Fatalf("Get: expected 15, got %d", w.Get())
	}
}

func TestMap_DerivesOnGetAndOnEmission(t *testing.T) {
	w := NewValue([]int{1, 2, 3})

	doubled := Map[[]int, int](w, func(items []int) int {
		sum := 0
		for _, v := range items {
			sum += v
		}
		return sum
	})

	if got := doubled.Get(); got != 6 {
		t.Fatalf("Get: expected 6, got %d", got)
	}

	ch, cancel := doubled.Subscribe()
	defer cancel()
	recv(t, ch) // inicial

	w.Set([]int{10, 20})
	if got := recv(t, ch); got != 30 {
		t.Fatalf("expected derived 30, got %d", got)
	}
}

func TestFilter_KeepsOnlyMatching(t *testing.T) {
	w := NewValue([]int{1, 2, 3, 4})

	even := Filter(w, func(v int) bool { return v%2 == 0 })

	got := even.Get()
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("expected [2 4], got %v", got)
	}

	w.Set([]int{5, 7})
	if got := even.Get(); len(got) != 0 {
		t.Fatalf("expected empty after update, got %v", got)
	}
}
