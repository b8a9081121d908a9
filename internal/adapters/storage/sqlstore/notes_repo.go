package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"customer-contract-portal/internal/domain/notes"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

const noteColumns = `id, contract_id, body, parent_id, created_by, created_at, edited_at, edit_note`

type noteRepo struct {
	s *Store
}

func NewNotesRepo(s *Store) notes.Repository {
	return &noteRepo{s: s}
}

func (r *noteRepo) Create(ctx context.Context, n notes.Note) (notes.Note, error) {
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "contracts", n.ContractID, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("contract", n.ContractID)
		}

		if n.ParentID != nil {
			var parentContract int64
			err := r.s.queryRow(ctx, tx, `SELECT contract_id FROM notes WHERE id = ?`, *n.ParentID).Scan(&parentContract)
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFound("note", *n.ParentID)
			}
			if err != nil {
				return err
			}
			if parentContract != n.ContractID {
				return apperr.Validation("parent_comment_id: parent note belongs to another contract")
			}
		}

		return r.s.queryRow(ctx, tx, `
			INSERT INTO notes (contract_id, body, parent_id, created_by, created_at, edited_at, edit_note)
			VALUES (?,?,?,?,?,?,?)
			RETURNING id
		`,
			n.ContractID, n.Body, nullInt64(n.ParentID), n.CreatedBy, utc(n.CreatedAt),
			nullTime(n.EditedAt), nullString(n.EditNote),
		).Scan(&n.ID)
	})
	if err != nil {
		return notes.Note{}, err
	}
	n.CreatedAt = utc(n.CreatedAt)
	n.EditedAt = utcPtr(n.EditedAt)
	return n, nil
}

// Update solo escribe body y los campos de edición; contract y parent son inmutables.
func (r *noteRepo) Update(ctx context.Context, id int64, apply func(n *notes.Note) error) (notes.Note, error) {
	var n notes.Note
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		n, err = scanNote(r.s.queryRow(ctx, tx,
			`SELECT `+noteColumns+` FROM notes WHERE id = ?`+r.s.dialect.lockSuffix(), id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("note", id)
		}
		if err != nil {
			return err
		}

		current := n
		if err := apply(&n); err != nil {
			return err
		}
		n.ID = id
		n.ContractID = current.ContractID
		n.ParentID = current.ParentID
		n.CreatedBy = current.CreatedBy
		n.CreatedAt = current.CreatedAt
		n.EditedAt = utcPtr(n.EditedAt)

		_, err = r.s.exec(ctx, tx,
			`UPDATE notes SET body = ?, edited_at = ?, edit_note = ? WHERE id = ?`,
			n.Body, nullTime(n.EditedAt), nullString(n.EditNote), id,
		)
		return err
	})
	if err != nil {
		return notes.Note{}, err
	}
	return n, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id int64) (notes.Note, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return notes.Note{}, apperr.NotFound("note", id)
	}
	if err != nil {
		return notes.Note{}, apperr.Storage(err)
	}
	return n, nil
}

func (r *noteRepo) List(ctx context.Context, f notes.ListFilter, page paging.Page) ([]notes.Note, error) {
	var w filter
	if f.ContractID != nil {
		w.add("contract_id = ?", *f.ContractID)
	}
	args := append(w.args, page.Limit, page.Offset)

	return r.list(ctx,
		`SELECT `+noteColumns+` FROM notes`+w.where()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		args...,
	)
}

func (r *noteRepo) Replies(ctx context.Context, id int64) ([]notes.Note, error) {
	ok, err := r.s.exists(ctx, r.s.db, "notes", id, false)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound("note", id)
	}
	return r.list(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE parent_id = ? ORDER BY created_at ASC, id ASC`,
		id,
	)
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	return r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "notes", id, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("note", id)
		}
		_, err = r.s.exec(ctx, tx, `
			WITH RECURSIVE subtree(id) AS (
				SELECT id FROM notes WHERE id = ?
				UNION ALL
				SELECT n.id FROM notes n JOIN subtree s ON n.parent_id = s.id
			)
			DELETE FROM notes WHERE id IN (SELECT id FROM subtree)
		`, id)
		return err
	})
}

func (r *noteRepo) list(ctx context.Context, query string, args ...any) ([]notes.Note, error) {
	rows, err := r.s.query(ctx, r.s.db, query, args...)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func scanNote(row rowScanner) (notes.Note, error) {
	var (
		n        notes.Note
		parentID sql.NullInt64
		editedAt sql.NullTime
		editNote sql.NullString
	)
	if err := row.Scan(
		&n.ID,
		&n.ContractID,
		&n.Body,
		&parentID,
		&n.CreatedBy,
		&n.CreatedAt,
		&editedAt,
		&editNote,
	); err != nil {
		return notes.Note{}, err
	}

	n.ParentID = int64Ptr(parentID)
	n.CreatedAt = n.CreatedAt.UTC()
	n.EditedAt = timePtr(editedAt)
	n.EditNote = stringPtr(editNote)
	return n, nil
}
