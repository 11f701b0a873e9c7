package store

import (
	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/pets"
)

// CascadeDeleteClient aplica el borrado en cascada sobre snapshots:
// saca al cliente con el ID dado y a toda mascota cuyo ClientID sea ese
// mismo ID. No toca nada más. Si el cliente no existe, igual se filtran
// mascotas huérfanas con ese ClientID (no hay constraint que lo impida).
//
// Es una función pura sobre (grafo de entidades, id borrado), separada
// del plumbing reactivo para poder testearla en aislamiento.
func CascadeDeleteClient(cs []clients.Client, ps []pets.Pet, id int64) ([]clients.Client, []pets.Pet) {
	outClients := make([]clients.Client, 0, len(cs))
	for _, c := range cs {
		if c.ID == id {
			continue
		}
		outClients = append(outClients, c)
	}

	outPets := make([]pets.Pet, 0, len(ps))
	for _, p := range ps {
		if p.ClientID == id {
			continue
		}
		outPets = append(outPets, p)
	}

	return outClients, outPets
}
