package notes

import (
	"context"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
	"customer-contract-portal/internal/platform/patch"
	"customer-contract-portal/internal/platform/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Body      string `json:"body" validate:"required,max=1000"`
	ParentID  *int64 `json:"parent_comment_id"`
	CreatedBy string `json:"created_by" validate:"required,max=100"`
}

func (s *Service) Create(ctx context.Context, contractID int64, in CreateInput) (Note, error) {
	if contractID <= 0 {
		return Note{}, apperr.Validation("contract_id: is required")
	}
	in.Body = strings.TrimSpace(in.Body)
	in.CreatedBy = strings.TrimSpace(in.CreatedBy)
	if err := validation.Struct(in); err != nil {
		return Note{}, err
	}
	if in.ParentID != nil && *in.ParentID <= 0 {
		return Note{}, apperr.Validation("parent_comment_id: must be a positive integer")
	}

	return s.repo.Create(ctx, Note{
		ContractID: contractID,
		Body:       in.Body,
		ParentID:   in.ParentID,
		CreatedBy:  in.CreatedBy,
		CreatedAt:  s.now(),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, page paging.Page) ([]Note, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *Service) Replies(ctx context.Context, id int64) ([]Note, error) {
	return s.repo.Replies(ctx, id)
}

type EditInput struct {
	Body     patch.Field[string]  `json:"body"`
	EditNote patch.Field[*string] `json:"edit_note"`
}

// Edit aplica los campos enviados y siempre marca edited_at, aunque no cambie nada visible.
func (s *Service) Edit(ctx context.Context, id int64, in EditInput) (Note, error) {
	now := s.now()
	return s.repo.Update(ctx, id, func(n *Note) error {
		if in.Body.Set {
			v := strings.TrimSpace(in.Body.Value)
			if err := validation.Var("body", v, "required,max=1000"); err != nil {
				return err
			}
			n.Body = v
		}
		if in.EditNote.Set {
			if in.EditNote.Value == nil {
				n.EditNote = nil
			} else {
				v := strings.TrimSpace(*in.EditNote.Value)
				if err := validation.Var("edit_note", v, "max=255"); err != nil {
					return err
				}
				n.EditNote = &v
			}
		}
		n.EditedAt = &now
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
