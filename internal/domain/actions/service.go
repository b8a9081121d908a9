package actions

import (
	"context"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/logger"
	"customer-contract-portal/internal/platform/paging"
	"customer-contract-portal/internal/platform/validation"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "actions"}),
		now:  time.Now,
	}
}

type RecordInput struct {
	ActionType string  `json:"action_type" validate:"required,max=30"`
	Note       *string `json:"action_note" validate:"omitempty,max=500"`
	ActedBy    string  `json:"acted_by" validate:"required,max=100"`
}

// Record registra un action y aplica la transición de status de forma atómica.
func (s *Service) Record(ctx context.Context, contractID int64, in RecordInput) (Action, error) {
	if contractID <= 0 {
		return Action{}, apperr.Validation("contract_id: is required")
	}
	in.ActionType = strings.TrimSpace(in.ActionType)
	in.ActedBy = strings.TrimSpace(in.ActedBy)
	if err := validation.Struct(in); err != nil {
		return Action{}, err
	}

	t := ActionType(in.ActionType)
	a, err := s.repo.Record(ctx, Action{
		ContractID: contractID,
		Type:       t,
		Note:       in.Note,
		ActedBy:    in.ActedBy,
		ActedAt:    s.now(),
	}, Next(t))
	if err != nil {
		return Action{}, err
	}

	fields := map[string]any{
		"action_id":    a.ID,
		"contract_id":  a.ContractID,
		"action_type":  string(a.Type),
		"acted_by":     a.ActedBy,
		"prior_status": a.PriorStatus.String(),
	}
	if a.NewStatus != nil {
		fields["new_status"] = a.NewStatus.String()
	}
	s.log.Info("action recorded", fields)

	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Action, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, page paging.Page) ([]Action, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *Service) History(ctx context.Context, contractID int64) ([]Action, error) {
	return s.repo.History(ctx, contractID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
