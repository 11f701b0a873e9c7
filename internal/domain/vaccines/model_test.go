package vaccines

import (
	"testing"
	"time"
)

func TestDueSoon_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"maniana", now.Add(24 * time.Hour), true},
		{"exactamente 30 dias", now.Add(30 * 24 * time.Hour), true},
		{"31 dias queda afuera", now.Add(31 * 24 * time.Hour), false},
		{"ahora mismo no cuenta", now, false},
		{"ya vencida", now.Add(-time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Vaccine{NextDueAt: tc.due}
			if got := v.DueSoon(now); got != tc.want {
				t.Fatalf("DueSoon(%s): expected %v, got %v", tc.due, tc.want, got)
			}
		})
	}
}
