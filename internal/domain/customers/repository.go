package customers

import (
	"context"

	"customer-contract-portal/internal/platform/paging"
)

type Repository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	// Update aplica apply sobre el customer bajo lock / transacción; la
	// unicidad de email se vuelve a chequear al escribir.
	Update(ctx context.Context, id int64, apply func(c *Customer) error) (Customer, error)
	GetByID(ctx context.Context, id int64) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	List(ctx context.Context, page paging.Page) ([]Customer, error)

	// Delete borra el customer y, en la misma transacción, sus contracts
	// (con notes/actions) y sus events.
	Delete(ctx context.Context, id int64) error
}
