package memory

import (
	"context"
	"sort"

	"customer-contract-portal/internal/domain/customers"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

type customerRepo struct {
	db *DB
}

func NewCustomersRepo(db *DB) customers.Repository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c customers.Customer) (customers.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.emailTakenLocked(c.Email, 0) {
		return customers.Customer{}, apperr.Storage(errUniqueEmail)
	}
	c.ID = r.db.nextID()
	r.db.customers[c.ID] = c
	return c, nil
}

func (r *customerRepo) Update(ctx context.Context, id int64, apply func(c *customers.Customer) error) (customers.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.customers[id]
	if !ok {
		return customers.Customer{}, apperr.NotFound("customer", id)
	}
	c := current
	if err := apply(&c); err != nil {
		return customers.Customer{}, err
	}
	c.ID = id
	c.CreatedAt = current.CreatedAt
	if r.emailTakenLocked(c.Email, id) {
		return customers.Customer{}, apperr.Storage(errUniqueEmail)
	}
	r.db.customers[id] = c
	return c, nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.customers[id]
	if !ok {
		return customers.Customer{}, apperr.NotFound("customer", id)
	}
	return c, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (customers.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return customers.Customer{}, apperr.NotFound("customer", email)
}

func (r *customerRepo) List(ctx context.Context, page paging.Page) ([]customers.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]customers.Customer, 0, len(r.db.customers))
	for _, c := range r.db.customers {
		out = append(out, c)
	}
	// "orden de almacenamiento" = orden de alta
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return paging.Slice(out, page), nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.customers[id]; !ok {
		return apperr.NotFound("customer", id)
	}

	for cid, c := range r.db.contracts {
		if c.CustomerID == id {
			r.db.deleteContractLocked(cid)
		}
	}
	for eid, e := range r.db.events {
		if e.CustomerID == id {
			delete(r.db.events, eid)
		}
	}
	delete(r.db.customers, id)
	return nil
}

func (r *customerRepo) emailTakenLocked(email string, selfID int64) bool {
	for _, c := range r.db.customers {
		if c.ID != selfID && c.Email == email {
			return true
		}
	}
	return false
}
