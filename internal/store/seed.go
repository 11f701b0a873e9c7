package store

import (
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/users"
)

// seedMedications arma el catálogo de farmacia. Se siembra una sola vez
// al construir el store y nunca se muta.
func seedMedications() []medications.Medication {
	return []medications.Medication{
		{ID: 1, Name: "Amoxicilina 250mg", Dosage: "1 tableta cada 12h", Price: 15000, Stock: 40, Discount: 0.20},
		{ID: 2, Name: "Meloxicam 1.5mg/ml", Dosage: "0.2ml por kg", Price: 22000, Stock: 25, Discount: 0.0},
		{ID: 3, Name: "Drontal Plus", Dosage: "1 tableta por 10kg", Price: 18500, Stock: 60, Discount: 0.10},
		{ID: 4, Name: "Simparica 40mg", Dosage: "1 tableta mensual", Price: 52000, Stock: 15, Discount: 0.15},
		{ID: 5, Name: "Suero oral", Dosage: "a voluntad", Price: 8000, Stock: 100, Discount: 0.0},
		{ID: 6, Name: "Tramadol gotas", Dosage: "2 gotas por kg cada 8h", Price: 26000, Stock: 12, Discount: 0.05},
	}
}

// seedUsers crea las cuentas de la maqueta. Contraseñas en texto plano:
// sistema académico, sin requisitos de seguridad.
func seedUsers() []users.User {
	return []users.User{
		{ID: 1, Email: "admin@clinica.com", Password: "admin123", Role: users.RoleAdmin},
		{ID: 2, Email: "dueno@clinica.com", Password: "dueno123", Role: users.RoleOwner, ClientID: 1},
	}
}
