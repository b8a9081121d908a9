package actions

import (
	"context"

	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/platform/paging"
)

// NextFunc calcula el status siguiente a partir del previo. changed=false deja
// el contract intacto y el Action queda con NewStatus nil.
type NextFunc func(prior contracts.Status) (next contracts.Status, changed bool)

type Repository interface {
	// Record, en una sola transacción: lee el status del contract (NotFound si
	// no existe), aplica next, persiste el status (si cambió) junto con
	// last_action_at/updated_at e inserta el Action con prior/new status.
	Record(ctx context.Context, a Action, next NextFunc) (Action, error)

	GetByID(ctx context.Context, id int64) (Action, error)
	// List ordena por acted_at desc.
	List(ctx context.Context, filter ListFilter, page paging.Page) ([]Action, error)
	// History devuelve los actions del contract en orden cronológico.
	History(ctx context.Context, contractID int64) ([]Action, error)
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	ContractID *int64
	ActionType *string
}
