package memory

import (
	"context"
	"sort"

	"customer-contract-portal/internal/domain/notes"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

type noteRepo struct {
	db *DB
}

func NewNotesRepo(db *DB) notes.Repository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n notes.Note) (notes.Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.contracts[n.ContractID]; !ok {
		return notes.Note{}, apperr.NotFound("contract", n.ContractID)
	}
	if n.ParentID != nil {
		parent, ok := r.db.notes[*n.ParentID]
		if !ok {
			return notes.Note{}, apperr.NotFound("note", *n.ParentID)
		}
		if parent.ContractID != n.ContractID {
			return notes.Note{}, apperr.Validation("parent_comment_id: parent note belongs to another contract")
		}
	}

	n.ID = r.db.nextID()
	n.ParentID = clonePtr(n.ParentID)
	r.db.notes[n.ID] = n
	return n, nil
}

func (r *noteRepo) Update(ctx context.Context, id int64, apply func(n *notes.Note) error) (notes.Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.notes[id]
	if !ok {
		return notes.Note{}, apperr.NotFound("note", id)
	}
	n := current
	n.ParentID = clonePtr(current.ParentID)
	if err := apply(&n); err != nil {
		return notes.Note{}, err
	}
	// contract y parent son inmutables
	current.Body = n.Body
	current.EditedAt = clonePtr(n.EditedAt)
	current.EditNote = clonePtr(n.EditNote)
	r.db.notes[id] = current
	return current, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id int64) (notes.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n, ok := r.db.notes[id]
	if !ok {
		return notes.Note{}, apperr.NotFound("note", id)
	}
	return n, nil
}

func (r *noteRepo) List(ctx context.Context, filter notes.ListFilter, page paging.Page) ([]notes.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]notes.Note, 0)
	for _, n := range r.db.notes {
		if filter.ContractID != nil && n.ContractID != *filter.ContractID {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return paging.Slice(out, page), nil
}

func (r *noteRepo) Replies(ctx context.Context, id int64) ([]notes.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if _, ok := r.db.notes[id]; !ok {
		return nil, apperr.NotFound("note", id)
	}

	out := make([]notes.Note, 0)
	for _, n := range r.db.notes {
		if n.ParentID != nil && *n.ParentID == id {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.notes[id]; !ok {
		return apperr.NotFound("note", id)
	}

	// BFS sobre el sub-árbol; los parents no cambian así que no hay ciclos.
	pending := []int64{id}
	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]
		for nid, n := range r.db.notes {
			if n.ParentID != nil && *n.ParentID == cur {
				pending = append(pending, nid)
			}
		}
		delete(r.db.notes, cur)
	}
	return nil
}
