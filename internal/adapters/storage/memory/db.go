package memory

import (
	"sync"

	"customer-contract-portal/internal/domain/actions"
	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/domain/customers"
	"customer-contract-portal/internal/domain/events"
	"customer-contract-portal/internal/domain/notes"
)

// DB guarda las cinco tablas bajo un único lock: así las cascadas y el par
// status+action del ciclo de vida son atómicos sin coordinación extra.
type DB struct {
	mu sync.RWMutex

	seq int64

	customers map[int64]customers.Customer
	contracts map[int64]contracts.Contract
	actions   map[int64]actions.Action
	notes     map[int64]notes.Note
	events    map[int64]events.Event
}

func New() *DB {
	return &DB{
		customers: make(map[int64]customers.Customer),
		contracts: make(map[int64]contracts.Contract),
		actions:   make(map[int64]actions.Action),
		notes:     make(map[int64]notes.Note),
		events:    make(map[int64]events.Event),
	}
}

// nextID asume el lock de escritura tomado. Un solo contador para todas las
// tablas alcanza (los ids solo tienen que ser únicos por tabla).
func (d *DB) nextID() int64 {
	d.seq++
	return d.seq
}

// deleteContractLocked borra el contract con sus notes y actions.
func (d *DB) deleteContractLocked(id int64) {
	for nid, n := range d.notes {
		if n.ContractID == id {
			delete(d.notes, nid)
		}
	}
	for aid, a := range d.actions {
		if a.ContractID == id {
			delete(d.actions, aid)
		}
	}
	delete(d.contracts, id)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
