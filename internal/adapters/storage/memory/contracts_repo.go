package memory

import (
	"context"
	"sort"
	"time"

	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

type contractRepo struct {
	db *DB
}

func NewContractsRepo(db *DB) contracts.Repository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, c contracts.Contract) (contracts.Contract, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.customers[c.CustomerID]; !ok {
		return contracts.Contract{}, apperr.NotFound("customer", c.CustomerID)
	}
	c.ID = r.db.nextID()
	r.db.contracts[c.ID] = c
	return c, nil
}

func (r *contractRepo) Update(ctx context.Context, id int64, apply func(c *contracts.Contract) error) (contracts.Contract, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.contracts[id]
	if !ok {
		return contracts.Contract{}, apperr.NotFound("contract", id)
	}
	c := current
	if err := apply(&c); err != nil {
		return contracts.Contract{}, err
	}
	// status, customer_id y los campos de auditoría no se tocan por update genérico.
	c.ID = id
	c.Status = current.Status
	c.CustomerID = current.CustomerID
	c.CreatedAt = current.CreatedAt
	c.CreatedBy = current.CreatedBy
	c.LastActionAt = current.LastActionAt
	r.db.contracts[id] = c
	return c, nil
}

func (r *contractRepo) SetStatus(ctx context.Context, id int64, st contracts.Status, updatedBy string, at time.Time) (contracts.Contract, contracts.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.contracts[id]
	if !ok {
		return contracts.Contract{}, contracts.Status{}, apperr.NotFound("contract", id)
	}
	prior := c.Status
	c.Status = st
	c.UpdatedBy = updatedBy
	c.UpdatedAt = at
	r.db.contracts[id] = c
	return c, prior, nil
}

func (r *contractRepo) GetByID(ctx context.Context, id int64) (contracts.Contract, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.contracts[id]
	if !ok {
		return contracts.Contract{}, apperr.NotFound("contract", id)
	}
	return c, nil
}

func (r *contractRepo) List(ctx context.Context, filter contracts.ListFilter, page paging.Page) ([]contracts.Contract, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]contracts.Contract, 0)
	for _, c := range r.db.contracts {
		if filter.CustomerID != nil && c.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && c.Status.String() != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return paging.Slice(out, page), nil
}

func (r *contractRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.contracts[id]; !ok {
		return apperr.NotFound("contract", id)
	}
	r.db.deleteContractLocked(id)
	return nil
}
