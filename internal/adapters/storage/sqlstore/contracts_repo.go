package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

const contractColumns = `id, customer_id, contract_type, status, effective_date, expiration_date,
	terms_ref, attachments_ref, created_by, updated_by, last_action_at, created_at, updated_at`

type contractRepo struct {
	s *Store
}

func NewContractsRepo(s *Store) contracts.Repository {
	return &contractRepo{s: s}
}

func (r *contractRepo) Create(ctx context.Context, c contracts.Contract) (contracts.Contract, error) {
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "customers", c.CustomerID, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("customer", c.CustomerID)
		}

		return r.s.queryRow(ctx, tx, `
			INSERT INTO contracts (
				customer_id, contract_type, status,
				effective_date, expiration_date,
				terms_ref, attachments_ref,
				created_by, updated_by,
				last_action_at, created_at, updated_at
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
			RETURNING id
		`,
			c.CustomerID, c.Type, c.Status.String(),
			utc(c.EffectiveDate), nullTime(c.ExpirationDate),
			nullString(c.TermsRef), nullString(c.AttachmentsRef),
			c.CreatedBy, c.UpdatedBy,
			nullTime(c.LastActionAt), utc(c.CreatedAt), utc(c.UpdatedAt),
		).Scan(&c.ID)
	})
	if err != nil {
		return contracts.Contract{}, err
	}
	c.EffectiveDate = utc(c.EffectiveDate)
	c.ExpirationDate = utcPtr(c.ExpirationDate)
	c.LastActionAt = utcPtr(c.LastActionAt)
	c.CreatedAt = utc(c.CreatedAt)
	c.UpdatedAt = utc(c.UpdatedAt)
	return c, nil
}

// Update lee con lock, aplica y escribe en la misma transacción. No toca status
// (solo actions u override), customer_id, created_* ni last_action_at.
func (r *contractRepo) Update(ctx context.Context, id int64, apply func(c *contracts.Contract) error) (contracts.Contract, error) {
	var c contracts.Contract
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		c, err = scanContract(r.s.queryRow(ctx, tx,
			`SELECT `+contractColumns+` FROM contracts WHERE id = ?`+r.s.dialect.lockSuffix(), id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("contract", id)
		}
		if err != nil {
			return err
		}

		current := c
		if err := apply(&c); err != nil {
			return err
		}
		c.ID = id
		c.Status = current.Status
		c.CustomerID = current.CustomerID
		c.CreatedAt = current.CreatedAt
		c.CreatedBy = current.CreatedBy
		c.LastActionAt = current.LastActionAt
		c.EffectiveDate = utc(c.EffectiveDate)
		c.UpdatedAt = utc(c.UpdatedAt)

		_, err = r.s.exec(ctx, tx, `
			UPDATE contracts
			SET contract_type = ?,
				effective_date = ?, expiration_date = ?,
				terms_ref = ?, attachments_ref = ?,
				updated_by = ?, updated_at = ?
			WHERE id = ?
		`,
			c.Type,
			c.EffectiveDate, nullTime(c.ExpirationDate),
			nullString(c.TermsRef), nullString(c.AttachmentsRef),
			c.UpdatedBy, c.UpdatedAt,
			id,
		)
		return err
	})
	if err != nil {
		return contracts.Contract{}, err
	}
	c.ExpirationDate = utcPtr(c.ExpirationDate)
	return c, nil
}

func (r *contractRepo) SetStatus(ctx context.Context, id int64, st contracts.Status, updatedBy string, at time.Time) (contracts.Contract, contracts.Status, error) {
	var (
		c     contracts.Contract
		prior contracts.Status
	)
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		c, err = scanContract(r.s.queryRow(ctx, tx,
			`SELECT `+contractColumns+` FROM contracts WHERE id = ?`+r.s.dialect.lockSuffix(), id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("contract", id)
		}
		if err != nil {
			return err
		}

		prior = c.Status
		c.Status = st
		c.UpdatedBy = updatedBy
		c.UpdatedAt = utc(at)
		_, err = r.s.exec(ctx, tx,
			`UPDATE contracts SET status = ?, updated_by = ?, updated_at = ? WHERE id = ?`,
			st.String(), updatedBy, c.UpdatedAt, id,
		)
		return err
	})
	if err != nil {
		return contracts.Contract{}, contracts.Status{}, err
	}
	return c, prior, nil
}

func (r *contractRepo) GetByID(ctx context.Context, id int64) (contracts.Contract, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+contractColumns+` FROM contracts WHERE id = ?`, id)
	c, err := scanContract(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contracts.Contract{}, apperr.NotFound("contract", id)
	}
	if err != nil {
		return contracts.Contract{}, apperr.Storage(err)
	}
	return c, nil
}

func (r *contractRepo) List(ctx context.Context, f contracts.ListFilter, page paging.Page) ([]contracts.Contract, error) {
	var w filter
	if f.CustomerID != nil {
		w.add("customer_id = ?", *f.CustomerID)
	}
	if f.Status != nil {
		w.add("status = ?", *f.Status)
	}
	args := append(w.args, page.Limit, page.Offset)

	rows, err := r.s.query(ctx, r.s.db,
		`SELECT `+contractColumns+` FROM contracts`+w.where()+` ORDER BY id ASC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := make([]contracts.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
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

func (r *contractRepo) Delete(ctx context.Context, id int64) error {
	return r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "contracts", id, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("contract", id)
		}
		for _, q := range []string{
			`DELETE FROM notes WHERE contract_id = ?`,
			`DELETE FROM actions WHERE contract_id = ?`,
			`DELETE FROM contracts WHERE id = ?`,
		} {
			if _, err := r.s.exec(ctx, tx, q, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func scanContract(row rowScanner) (contracts.Contract, error) {
	var (
		c                        contracts.Contract
		status                   string
		expiration, lastActionAt sql.NullTime
		termsRef, attachmentsRef sql.NullString
	)
	if err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.Type,
		&status,
		&c.EffectiveDate,
		&expiration,
		&termsRef,
		&attachmentsRef,
		&c.CreatedBy,
		&c.UpdatedBy,
		&lastActionAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return contracts.Contract{}, err
	}

	c.Status = contracts.ParseStatus(status)
	c.EffectiveDate = c.EffectiveDate.UTC()
	c.ExpirationDate = timePtr(expiration)
	c.TermsRef = stringPtr(termsRef)
	c.AttachmentsRef = stringPtr(attachmentsRef)
	c.LastActionAt = timePtr(lastActionAt)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
