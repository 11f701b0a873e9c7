package medications

import "testing"

func TestEffectivePrice_AppliesDiscountFraction(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"sin descuento", 22000, 0.0, 22000},
		{"veinte por ciento", 15000, 0.20, 12000},
		{"diez por ciento", 18500, 0.10, 16650},
		{"descuento total", 10000, 1.0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Medication{Price: tc.price, Discount: tc.discount}
			got := m.EffectivePrice()
			if !closeTo(got, tc.want) {
				t.Fatalf("EffectivePrice: expected %.2f, got %.2f", tc.want, got)
			}
			if got > m.Price {
				t.Fatalf("effective price %.2f must never exceed price %.2f", got, m.Price)
			}
		})
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
