package consultations

import (
	"strings"
	"testing"
	"time"

	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/pets"
)

func TestShareText_IncludesFullDetail(t *testing.T) {
	c := Consultation{
		ID:     5,
		Client: clients.Client{ID: 1, Name: "Ana Gómez", Email: "ana@mail.com"},
		Pet:    pets.Pet{ID: 2, Name: "Milo", Species: pets.SpeciesDog, Breed: "beagle"},
		Medications: []medications.Medication{
			{Name: "Amoxicilina 250mg", Price: 15000, Discount: 0.20},
			{Name: "Suero oral", Price: 8000},
		},
		Description: "otitis",
		CreatedAt:   time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		Total:       50000,
	}

	got := ShareText(c)

	for _, want := range []string{
		"Consulta #5",
		"Ana Gómez",
		"Milo",
		"otitis",
		"Amoxicilina 250mg",
		"desc. 20%",
		"$12000",
		"Suero oral",
		"Total: $50000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("share text missing %q:\n%s", want, got)
		}
	}
}

func TestShareText_NoMedicationsSection(t *testing.T) {
	c := Consultation{ID: 1, Description: "control", Total: 30000}

	got := ShareText(c)
	if strings.Contains(got, "Medicamentos") {
		t.Fatalf("expected no medication section:\n%s", got)
	}
	if !strings.Contains(got, "Total: $30000") {
		t.Fatalf("expected total line:\n%s", got)
	}
}
