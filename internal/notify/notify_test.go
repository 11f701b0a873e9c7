package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"vet-clinic-manager/internal/platform/logger"
	"vet-clinic-manager/internal/platform/watch"
)

type captureSender struct {
	sent []Notification
	fail bool
}

func (s *captureSender) Send(n Notification) error {
	if s.fail {
		return errors.New("platform rejected")
	}
	s.sent = append(s.sent, n)
	return nil
}

func TestAppointmentConfirmed_BuildsShortAndExpanded(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, logger.Nop())

	svc.AppointmentConfirmed(7, "Milo", "2026-03-10", "14:30")

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sender.sent))
	}
	n := sender.sent[0]
	if n.Category != CategoryAppointment {
		t.Fatalf("unexpected category %q", n.Category)
	}
	if n.ID == "" {
		t.Fatal("expected assigned notification id")
	}
	if n.Short == "" || n.Expanded == "" || n.Short == n.Expanded {
		t.Fatalf("expected distinct short/expanded bodies, got short=%q expanded=%q", n.Short, n.Expanded)
	}
}

func TestVaccineRegistered_IncludesNextDueDate(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, logger.Nop())

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	svc.VaccineRegistered("Rabia", "Luna", due)

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sender.sent))
	}
	if got := sender.sent[0].Expanded; !strings.Contains(got, "2026-04-01") {
		t.Fatalf("expected expanded body with due date, got %q", got)
	}
}

func TestDispatch_SenderFailureIsSwallowed(t *testing.T) {
	svc := NewService(&captureSender{fail: true}, logger.Nop())

	// best-effort: no panic, no error hacia el caller
	svc.VaccineRegistered("Rabia", "Luna", time.Now())
}

func TestConnectivityMonitor_NotifiesOnWifiTransitionOnly(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, logger.Nop())

	consultas := watch.NewValue(make([]int, 3)) // 3 consultas
	mascotas := watch.NewValue(make([]int, 5))  // 5 mascotas

	m := NewConnectivityMonitor(WatchCounter[int](consultas), WatchCounter[int](mascotas), svc)

	m.SetState(ConnMobile)
	if len(sender.sent) != 0 {
		t.Fatalf("mobile should not notify, got %d", len(sender.sent))
	}

	m.SetState(ConnWifi)
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 summary on wifi transition, got %d", len(sender.sent))
	}
	if got := sender.sent[0].Short; !strings.Contains(got, "3 consultas") || !strings.Contains(got, "5 mascotas") {
		t.Fatalf("expected counts in summary, got %q", got)
	}

	// quedarse en wifi no repite
	m.SetState(ConnWifi)
	if len(sender.sent) != 1 {
		t.Fatalf("repeated wifi state must not re-notify, got %d", len(sender.sent))
	}

	// salir y volver sí repite
	m.SetState(ConnOffline)
	m.SetState(ConnWifi)
	if len(sender.sent) != 2 {
		t.Fatalf("expected new summary after reconnect, got %d", len(sender.sent))
	}
}
