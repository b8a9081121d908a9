package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"customer-contract-portal/internal/domain/actions"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

type actionRepo struct {
	db *DB
}

func NewActionsRepo(db *DB) actions.Repository {
	return &actionRepo{db: db}
}

// Record corre entero bajo el lock de escritura: nadie ve el status nuevo sin
// el action, ni al revés. Las validaciones van antes de mutar nada.
func (r *actionRepo) Record(ctx context.Context, a actions.Action, next actions.NextFunc) (actions.Action, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.contracts[a.ContractID]
	if !ok {
		return actions.Action{}, apperr.NotFound("contract", a.ContractID)
	}
	if strings.TrimSpace(a.ActedBy) == "" {
		return actions.Action{}, apperr.Storage(errors.New("actions.acted_by must not be empty"))
	}

	a.PriorStatus = c.Status
	a.NewStatus = nil
	if st, changed := next(c.Status); changed {
		a.NewStatus = &st
		c.Status = st
	}

	actedAt := a.ActedAt
	c.LastActionAt = &actedAt
	c.UpdatedAt = actedAt

	a.ID = r.db.nextID()
	r.db.contracts[c.ID] = c
	r.db.actions[a.ID] = a
	return a, nil
}

func (r *actionRepo) GetByID(ctx context.Context, id int64) (actions.Action, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.actions[id]
	if !ok {
		return actions.Action{}, apperr.NotFound("action", id)
	}
	return a, nil
}

func (r *actionRepo) List(ctx context.Context, filter actions.ListFilter, page paging.Page) ([]actions.Action, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]actions.Action, 0)
	for _, a := range r.db.actions {
		if filter.ContractID != nil && a.ContractID != *filter.ContractID {
			continue
		}
		if filter.ActionType != nil && string(a.Type) != *filter.ActionType {
			continue
		}
		out = append(out, a)
	}

	// acted_at desc (desempate por id desc)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ActedAt.Equal(out[j].ActedAt) {
			return out[i].ActedAt.After(out[j].ActedAt)
		}
		return out[i].ID > out[j].ID
	})

	return paging.Slice(out, page), nil
}

func (r *actionRepo) History(ctx context.Context, contractID int64) ([]actions.Action, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if _, ok := r.db.contracts[contractID]; !ok {
		return nil, apperr.NotFound("contract", contractID)
	}

	out := make([]actions.Action, 0)
	for _, a := range r.db.actions {
		if a.ContractID == contractID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ActedAt.Equal(out[j].ActedAt) {
			return out[i].ActedAt.Before(out[j].ActedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *actionRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.actions[id]; !ok {
		return apperr.NotFound("action", id)
	}
	delete(r.db.actions, id)
	return nil
}
