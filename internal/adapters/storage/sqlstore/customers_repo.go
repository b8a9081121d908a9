package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"customer-contract-portal/internal/domain/customers"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

const customerColumns = `id, name, email, phone, segment, risk_level, status, created_at, updated_at`

type customerRepo struct {
	s *Store
}

func NewCustomersRepo(s *Store) customers.Repository {
	return &customerRepo{s: s}
}

func (r *customerRepo) Create(ctx context.Context, c customers.Customer) (customers.Customer, error) {
	err := r.s.queryRow(ctx, r.s.db, `
		INSERT INTO customers (name, email, phone, segment, risk_level, status, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?)
		RETURNING id
	`,
		c.Name, c.Email, c.Phone, c.Segment, c.RiskLevel, c.Status,
		utc(c.CreatedAt), utc(c.UpdatedAt),
	).Scan(&c.ID)
	if err != nil {
		return customers.Customer{}, apperr.Storage(err)
	}
	c.CreatedAt = utc(c.CreatedAt)
	c.UpdatedAt = utc(c.UpdatedAt)
	return c, nil
}

func (r *customerRepo) Update(ctx context.Context, id int64, apply func(c *customers.Customer) error) (customers.Customer, error) {
	var c customers.Customer
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		c, err = scanCustomer(r.s.queryRow(ctx, tx,
			`SELECT `+customerColumns+` FROM customers WHERE id = ?`+r.s.dialect.lockSuffix(), id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("customer", id)
		}
		if err != nil {
			return err
		}

		createdAt := c.CreatedAt
		if err := apply(&c); err != nil {
			return err
		}
		c.ID = id
		c.CreatedAt = createdAt
		c.UpdatedAt = utc(c.UpdatedAt)

		_, err = r.s.exec(ctx, tx, `
			UPDATE customers
			SET name = ?, email = ?, phone = ?, segment = ?, risk_level = ?, status = ?, updated_at = ?
			WHERE id = ?
		`,
			c.Name, c.Email, c.Phone, c.Segment, c.RiskLevel, c.Status, c.UpdatedAt,
			id,
		)
		return err
	})
	if err != nil {
		return customers.Customer{}, err
	}
	return c, nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return customers.Customer{}, apperr.NotFound("customer", id)
	}
	if err != nil {
		return customers.Customer{}, apperr.Storage(err)
	}
	return c, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (customers.Customer, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+customerColumns+` FROM customers WHERE email = ?`, email)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return customers.Customer{}, apperr.NotFound("customer", email)
	}
	if err != nil {
		return customers.Customer{}, apperr.Storage(err)
	}
	return c, nil
}

func (r *customerRepo) List(ctx context.Context, page paging.Page) ([]customers.Customer, error) {
	rows, err := r.s.query(ctx, r.s.db,
		`SELECT `+customerColumns+` FROM customers ORDER BY id ASC LIMIT ? OFFSET ?`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := make([]customers.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	return r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "customers", id, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("customer", id)
		}

		// hijos primero: notes/actions de sus contracts, contracts, events
		stmts := []string{
			`DELETE FROM notes WHERE contract_id IN (SELECT id FROM contracts WHERE customer_id = ?)`,
			`DELETE FROM actions WHERE contract_id IN (SELECT id FROM contracts WHERE customer_id = ?)`,
			`DELETE FROM contracts WHERE customer_id = ?`,
			`DELETE FROM events WHERE customer_id = ?`,
			`DELETE FROM customers WHERE id = ?`,
		}
		for _, q := range stmts {
			if _, err := r.s.exec(ctx, tx, q, id); err != nil {
				return err
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (customers.Customer, error) {
	var c customers.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Segment,
		&c.RiskLevel,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, err
}
