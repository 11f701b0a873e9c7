package views

import (
	"context"
	"strings"

	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

// ClientRow es un cliente con datos derivados para la lista.
type ClientRow struct {
	Client   clients.Client
	PetCount int
}

type ClientsData struct {
	Rows  []ClientRow
	Query string
}

// ClientsView combina clientes + mascotas + búsqueda libre. Cambiar la
// búsqueda recalcula la lista visible sin ir de nuevo al store.
type ClientsView struct {
	actionRunner
	*closer

	clients *clients.Service
	pets    *pets.Service

	queryW *watch.Watch[string]
	stateW *watch.Watch[State[ClientsData]]
}

func NewClientsView(cs *clients.Service, ps *pets.Service) *ClientsView {
	v := &ClientsView{
		actionRunner: newActionRunner(),
		closer:       newCloser(),
		clients:      cs,
		pets:         ps,
		queryW:       watch.NewValue(""),
		stateW:       watch.NewValue(Loading[ClientsData]()),
	}

	clientsCh, cancel := cs.All().Subscribe()
	v.add(cancel)
	petsCh, cancel := ps.All().Subscribe()
	v.add(cancel)
	queryCh, cancel := v.queryW.Subscribe()
	v.add(cancel)

	go v.loop(clientsCh, petsCh, queryCh)
	return v
}

func (v *ClientsView) State() watch.Source[State[ClientsData]] {
	return v.stateW
}

func (v *ClientsView) SetQuery(q string) {
	v.queryW.Set(strings.TrimSpace(q))
}

func (v *ClientsView) AddClient(ctx context.Context, in clients.Input) {
	v.run(ctx, "Guardando cliente...", func(ctx context.Context) error {
		_, err := v.clients.Create(ctx, in)
		return err
	})
}

func (v *ClientsView) UpdateClient(ctx context.Context, id int64, in clients.Input) {
	v.run(ctx, "Actualizando cliente...", func(ctx context.Context) error {
		_, err := v.clients.Update(ctx, id, in)
		return err
	})
}

func (v *ClientsView) DeleteClient(ctx context.Context, id int64) {
	v.run(ctx, "Eliminando cliente...", func(ctx context.Context) error {
		return v.clients.Delete(ctx, id)
	})
}

// loop es el combine-latest: cualquier emisión de cualquiera de las tres
// fuentes recalcula el estado completo desde los últimos valores. Los
// últimos se siembran con el valor vigente de TODAS las fuentes antes de
// la primera emisión: el primer Success ya es el combinado completo,
// nunca uno parcial con inputs en cero.
func (v *ClientsView) loop(clientsCh <-chan []clients.Client, petsCh <-chan []pets.Pet, queryCh <-chan string) {
	lastClients := v.clients.All().Get()
	lastPets := v.pets.All().Get()
	lastQuery := v.queryW.Get()

	v.stateW.Set(Success(combineClients(lastClients, lastPets, lastQuery)))

	for {
		select {
		case lastClients = <-clientsCh:
		case lastPets = <-petsCh:
		case lastQuery = <-queryCh:
		case <-v.done:
			return
		}
		v.stateW.Set(Success(combineClients(lastClients, lastPets, lastQuery)))
	}
}

func combineClients(cs []clients.Client, ps []pets.Pet, query string) ClientsData {
	counts := make(map[int64]int, len(cs))
	for _, p := range ps {
		counts[p.ClientID]++
	}

	q := strings.ToLower(query)
	rows := make([]ClientRow, 0, len(cs))
	for _, c := range cs {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		rows = append(rows, ClientRow{Client: c, PetCount: counts[c.ID]})
	}
	return ClientsData{Rows: rows, Query: query}
}
