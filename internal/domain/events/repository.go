package events

import (
	"context"
	"time"

	"customer-contract-portal/internal/platform/paging"
)

type Repository interface {
	// Create falla con NotFound si el customer no existe.
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id int64) (Event, error)
	// List ordena por timestamp desc.
	List(ctx context.Context, filter ListFilter, page paging.Page) ([]Event, error)
	Delete(ctx context.Context, id int64) error
}

// ListFilter: From/To son inclusivos e independientes.
type ListFilter struct {
	CustomerID *int64
	Type       *string
	From       *time.Time
	To         *time.Time
}
