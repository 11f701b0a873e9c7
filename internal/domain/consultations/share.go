package consultations

import (
	"fmt"
	"strings"
)

// ShareText formatea el detalle completo de la consulta como bloque de
// texto plano, listo para entregarle a cualquier consumidor externo de
// texto (compartir). Solo formatea: no hay red ni side effects.
func ShareText(c Consultation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Consulta #%d - %s\n", c.ID, c.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Cliente: %s (%s)\n", c.Client.Name, c.Client.Email)
	fmt.Fprintf(&b, "Mascota: %s (%s, %s)\n", c.Pet.Name, c.Pet.Species, c.Pet.Breed)
	fmt.Fprintf(&b, "Motivo: %s\n", c.Description)

	if len(c.Medications) > 0 {
		b.WriteString("Medicamentos:\n")
		for _, m := range c.Medications {
			if m.Discount > 0 {
				fmt.Fprintf(&b, "  - %s: $%.0f (desc. %.0f%% => $%.0f)\n",
					m.Name, m.Price, m.Discount*100, m.EffectivePrice())
				continue
			}
			fmt.Fprintf(&b, "  - %s: $%.0f\n", m.Name, m.Price)
		}
	}

	fmt.Fprintf(&b, "Total: $%.0f\n", c.Total)
	return b.String()
}
