package memory

import (
	"context"
	"sort"

	"customer-contract-portal/internal/domain/events"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

type eventRepo struct {
	db *DB
}

func NewEventsRepo(db *DB) events.Repository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) (events.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.customers[e.CustomerID]; !ok {
		return events.Event{}, apperr.NotFound("customer", e.CustomerID)
	}
	e.ID = r.db.nextID()
	r.db.events[e.ID] = e
	return e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (events.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	e, ok := r.db.events[id]
	if !ok {
		return events.Event{}, apperr.NotFound("event", id)
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context, filter events.ListFilter, page paging.Page) ([]events.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range r.db.events {
		if filter.CustomerID != nil && e.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Type != nil && e.Type != *filter.Type {
			continue
		}
		if filter.From != nil && e.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Timestamp.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}

	// newest-first
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})

	return paging.Slice(out, page), nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[id]; !ok {
		return apperr.NotFound("event", id)
	}
	delete(r.db.events, id)
	return nil
}
