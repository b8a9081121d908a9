package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"customer-contract-portal/internal/domain/actions"
	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

const actionColumns = `id, contract_id, action_type, action_note, acted_by, acted_at, prior_status, new_status`

type actionRepo struct {
	s *Store
}

func NewActionsRepo(s *Store) actions.Repository {
	return &actionRepo{s: s}
}

func (r *actionRepo) Record(ctx context.Context, a actions.Action, next actions.NextFunc) (actions.Action, error) {
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		var raw string
		err := r.s.queryRow(ctx, tx,
			`SELECT status FROM contracts WHERE id = ?`+r.s.dialect.lockSuffix(),
			a.ContractID,
		).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("contract", a.ContractID)
		}
		if err != nil {
			return err
		}

		a.PriorStatus = contracts.ParseStatus(raw)
		a.NewStatus = nil
		st, changed := next(a.PriorStatus)
		if changed {
			a.NewStatus = &st
		}

		// last_action_at/updated_at se mueven con cualquier action; status solo si cambió.
		actedAt := utc(a.ActedAt)
		if changed {
			_, err = r.s.exec(ctx, tx,
				`UPDATE contracts SET status = ?, last_action_at = ?, updated_at = ? WHERE id = ?`,
				st.String(), actedAt, actedAt, a.ContractID,
			)
		} else {
			_, err = r.s.exec(ctx, tx,
				`UPDATE contracts SET last_action_at = ?, updated_at = ? WHERE id = ?`,
				actedAt, actedAt, a.ContractID,
			)
		}
		if err != nil {
			return err
		}

		var newStatus sql.NullString
		if a.NewStatus != nil {
			newStatus = sql.NullString{String: a.NewStatus.String(), Valid: true}
		}
		return r.s.queryRow(ctx, tx, `
			INSERT INTO actions (contract_id, action_type, action_note, acted_by, acted_at, prior_status, new_status)
			VALUES (?,?,?,?,?,?,?)
			RETURNING id
		`,
			a.ContractID, string(a.Type), nullString(a.Note), a.ActedBy, actedAt,
			a.PriorStatus.String(), newStatus,
		).Scan(&a.ID)
	})
	if err != nil {
		return actions.Action{}, err
	}
	a.ActedAt = utc(a.ActedAt)
	return a, nil
}

func (r *actionRepo) GetByID(ctx context.Context, id int64) (actions.Action, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+actionColumns+` FROM actions WHERE id = ?`, id)
	a, err := scanAction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return actions.Action{}, apperr.NotFound("action", id)
	}
	if err != nil {
		return actions.Action{}, apperr.Storage(err)
	}
	return a, nil
}

func (r *actionRepo) List(ctx context.Context, f actions.ListFilter, page paging.Page) ([]actions.Action, error) {
	var w filter
	if f.ContractID != nil {
		w.add("contract_id = ?", *f.ContractID)
	}
	if f.ActionType != nil {
		w.add("action_type = ?", *f.ActionType)
	}
	args := append(w.args, page.Limit, page.Offset)

	return r.list(ctx,
		`SELECT `+actionColumns+` FROM actions`+w.where()+` ORDER BY acted_at DESC, id DESC LIMIT ? OFFSET ?`,
		args...,
	)
}

func (r *actionRepo) History(ctx context.Context, contractID int64) ([]actions.Action, error) {
	ok, err := r.s.exists(ctx, r.s.db, "contracts", contractID, false)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound("contract", contractID)
	}
	return r.list(ctx,
		`SELECT `+actionColumns+` FROM actions WHERE contract_id = ? ORDER BY acted_at ASC, id ASC`,
		contractID,
	)
}

func (r *actionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.s.exec(ctx, r.s.db, `DELETE FROM actions WHERE id = ?`, id)
	if err != nil {
		return apperr.Storage(err)
	}
	if err := mustAffect(res, "action", id); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (r *actionRepo) list(ctx context.Context, query string, args ...any) ([]actions.Action, error) {
	rows, err := r.s.query(ctx, r.s.db, query, args...)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := make([]actions.Action, 0)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func scanAction(row rowScanner) (actions.Action, error) {
	var (
		a           actions.Action
		typ, prior  string
		note, newSt sql.NullString
	)
	if err := row.Scan(
		&a.ID,
		&a.ContractID,
		&typ,
		&note,
		&a.ActedBy,
		&a.ActedAt,
		&prior,
		&newSt,
	); err != nil {
		return actions.Action{}, err
	}

	a.Type = actions.ActionType(typ)
	a.Note = stringPtr(note)
	a.ActedAt = a.ActedAt.UTC()
	a.PriorStatus = contracts.ParseStatus(prior)
	if newSt.Valid {
		st := contracts.ParseStatus(newSt.String)
		a.NewStatus = &st
	}
	return a, nil
}
