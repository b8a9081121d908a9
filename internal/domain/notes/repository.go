package notes

import (
	"context"

	"customer-contract-portal/internal/platform/paging"
)

type Repository interface {
	// Create valida (en la misma transacción) que exista el contract y, si
	// viene, el parent (NotFound) y que el parent sea del mismo contract.
	Create(ctx context.Context, n Note) (Note, error)
	// Update aplica apply sobre la note bajo lock / transacción. Contract y
	// parent no cambian aunque apply los toque.
	Update(ctx context.Context, id int64, apply func(n *Note) error) (Note, error)
	GetByID(ctx context.Context, id int64) (Note, error)
	// List ordena por created_at desc.
	List(ctx context.Context, filter ListFilter, page paging.Page) ([]Note, error)
	// Replies devuelve los hijos directos (created_at asc). NotFound si la note no existe.
	Replies(ctx context.Context, id int64) ([]Note, error)
	// Delete borra la note y todo su sub-árbol de respuestas.
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	ContractID *int64
}
