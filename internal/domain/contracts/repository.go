package contracts

import (
	"context"
	"time"

	"customer-contract-portal/internal/platform/paging"
)

type Repository interface {
	// Create falla con NotFound si el customer no existe.
	Create(ctx context.Context, c Contract) (Contract, error)
	// Update lee el contract, aplica apply y escribe, todo en una sola unidad
	// (lock / transacción). No toca status, customer_id, created_* ni last_action_at.
	Update(ctx context.Context, id int64, apply func(c *Contract) error) (Contract, error)
	// SetStatus es la escritura directa del override administrativo. Lee el
	// status previo y escribe en la misma unidad; devuelve el contract escrito.
	SetStatus(ctx context.Context, id int64, st Status, updatedBy string, at time.Time) (c Contract, prior Status, err error)
	GetByID(ctx context.Context, id int64) (Contract, error)
	List(ctx context.Context, filter ListFilter, page paging.Page) ([]Contract, error)

	// Delete borra en cascada notes y actions del contract.
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	CustomerID *int64
	Status     *string
}
