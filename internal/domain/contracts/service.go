package contracts

import (
	"context"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/logger"
	"customer-contract-portal/internal/platform/paging"
	"customer-contract-portal/internal/platform/patch"
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
		log:  log.With(map[string]any{"module": "contracts"}),
		now:  time.Now,
	}
}

type CreateInput struct {
	Type           string     `json:"type" validate:"required,max=50"`
	Status         string     `json:"status" validate:"max=30"` // vacío => Draft
	EffectiveDate  time.Time  `json:"effective_date" validate:"required"`
	ExpirationDate *time.Time `json:"expiration_date"`
	TermsRef       *string    `json:"terms_ref" validate:"omitempty,max=255"`
	AttachmentsRef *string    `json:"attachments_ref" validate:"omitempty,max=255"`
	CreatedBy      string     `json:"created_by" validate:"required,max=100"`
	UpdatedBy      string     `json:"updated_by" validate:"max=100"` // vacío => CreatedBy
}

func (s *Service) Create(ctx context.Context, customerID int64, in CreateInput) (Contract, error) {
	if customerID <= 0 {
		return Contract{}, apperr.Validation("customer_id: is required")
	}
	in.Type = strings.TrimSpace(in.Type)
	in.Status = strings.TrimSpace(in.Status)
	in.CreatedBy = strings.TrimSpace(in.CreatedBy)
	in.UpdatedBy = strings.TrimSpace(in.UpdatedBy)
	if err := validation.Struct(in); err != nil {
		return Contract{}, err
	}

	status := Known(StateDraft)
	if in.Status != "" {
		status = ParseStatus(in.Status)
	}
	updatedBy := in.UpdatedBy
	if updatedBy == "" {
		updatedBy = in.CreatedBy
	}

	now := s.now()
	return s.repo.Create(ctx, Contract{
		CustomerID:     customerID,
		Type:           in.Type,
		Status:         status,
		EffectiveDate:  in.EffectiveDate,
		ExpirationDate: in.ExpirationDate,
		TermsRef:       trimPtr(in.TermsRef),
		AttachmentsRef: trimPtr(in.AttachmentsRef),
		CreatedBy:      in.CreatedBy,
		UpdatedBy:      updatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Contract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, page paging.Page) ([]Contract, error) {
	return s.repo.List(ctx, filter, page)
}

// UpdateInput es la edición genérica de campos. No incluye status: el status
// cambia por actions (auditado) o por OverrideStatus (explícito).
type UpdateInput struct {
	Type           patch.Field[string]     `json:"type"`
	EffectiveDate  patch.Field[time.Time]  `json:"effective_date"`
	ExpirationDate patch.Field[*time.Time] `json:"expiration_date"`
	TermsRef       patch.Field[*string]    `json:"terms_ref"`
	AttachmentsRef patch.Field[*string]    `json:"attachments_ref"`
	UpdatedBy      patch.Field[string]     `json:"updated_by"`
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Contract, error) {
	now := s.now()
	return s.repo.Update(ctx, id, func(c *Contract) error {
		if err := in.apply(c); err != nil {
			return err
		}
		c.UpdatedAt = now
		return nil
	})
}

// apply valida y copia solo los campos enviados.
func (in UpdateInput) apply(c *Contract) error {
	if in.Type.Set {
		v := strings.TrimSpace(in.Type.Value)
		if err := validation.Var("type", v, "required,max=50"); err != nil {
			return err
		}
		c.Type = v
	}
	if in.EffectiveDate.Set {
		if in.EffectiveDate.Value.IsZero() {
			return apperr.Validation("effective_date: is required")
		}
		c.EffectiveDate = in.EffectiveDate.Value
	}
	if in.ExpirationDate.Set {
		c.ExpirationDate = in.ExpirationDate.Value
	}
	if in.TermsRef.Set {
		if err := validateRef("terms_ref", in.TermsRef.Value); err != nil {
			return err
		}
		c.TermsRef = trimPtr(in.TermsRef.Value)
	}
	if in.AttachmentsRef.Set {
		if err := validateRef("attachments_ref", in.AttachmentsRef.Value); err != nil {
			return err
		}
		c.AttachmentsRef = trimPtr(in.AttachmentsRef.Value)
	}
	if in.UpdatedBy.Set {
		v := strings.TrimSpace(in.UpdatedBy.Value)
		if err := validation.Var("updated_by", v, "required,max=100"); err != nil {
			return err
		}
		c.UpdatedBy = v
	}
	return nil
}

type OverrideInput struct {
	Status    string `json:"status" validate:"required,max=30"`
	UpdatedBy string `json:"updated_by" validate:"required,max=100"`
	Reason    string `json:"reason" validate:"max=500"`
}

// OverrideStatus escribe el status directamente, sin pasar por el motor de
// ciclo de vida y sin generar un Action. Queda registrado solo en el log.
func (s *Service) OverrideStatus(ctx context.Context, id int64, in OverrideInput) (Contract, error) {
	in.Status = strings.TrimSpace(in.Status)
	in.UpdatedBy = strings.TrimSpace(in.UpdatedBy)
	in.Reason = strings.TrimSpace(in.Reason)
	if err := validation.Struct(in); err != nil {
		return Contract{}, err
	}

	c, prior, err := s.repo.SetStatus(ctx, id, ParseStatus(in.Status), in.UpdatedBy, s.now())
	if err != nil {
		return Contract{}, err
	}

	s.log.Warn("contract status overridden without action", map[string]any{
		"contract_id":  c.ID,
		"prior_status": prior.String(),
		"new_status":   c.Status.String(),
		"updated_by":   c.UpdatedBy,
		"reason":       in.Reason,
	})
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateRef(field string, v *string) error {
	if v == nil {
		return nil
	}
	return validation.Var(field, strings.TrimSpace(*v), "max=255")
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
