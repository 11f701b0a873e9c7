package medications

// Medication es un ítem del catálogo de farmacia. El catálogo se siembra
// al crear el store y es de solo lectura: ningún usuario lo muta.
type Medication struct {
	ID       int64
	Name     string
	Dosage   string
	Price    float64
	Stock    int
	Discount float64 // fracción en [0.0, 1.0]
}

// EffectivePrice es el precio con descuento aplicado. Siempre cumple
// EffectivePrice() <= Price para descuentos válidos.
func (m Medication) EffectivePrice() float64 {
	return m.Price * (1 - m.Discount)
}
