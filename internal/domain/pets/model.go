package pets

// Species define las especies soportadas por la clínica.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	}
	return false
}

// Pet es una mascota registrada. ClientID referencia al dueño; la
// integridad referencial no se valida en el store (la cascada de borrado
// del cliente es el único vínculo que se mantiene).
type Pet struct {
	ID       int64
	Name     string
	Species  Species
	Breed    string
	Age      int
	Weight   float64 // kg
	ClientID int64
}
