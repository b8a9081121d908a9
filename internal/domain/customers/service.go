package customers

import (
	"context"
	"errors"
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
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Segment   string `json:"segment" validate:"required,max=50"`
	RiskLevel string `json:"risk_level" validate:"required,max=20"`
	Status    string `json:"status" validate:"max=20"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Customer, error) {
	in = CreateInput{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Segment:   strings.TrimSpace(in.Segment),
		RiskLevel: strings.TrimSpace(in.RiskLevel),
		Status:    strings.TrimSpace(in.Status),
	}
	if err := validation.Struct(in); err != nil {
		return Customer{}, err
	}
	if err := s.ensureEmailFree(ctx, in.Email, 0); err != nil {
		return Customer{}, err
	}

	status := in.Status
	if status == "" {
		status = DefaultStatus
	}

	now := s.now()
	return s.repo.Create(ctx, Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Segment:   in.Segment,
		RiskLevel: in.RiskLevel,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page paging.Page) ([]Customer, error) {
	return s.repo.List(ctx, page)
}

// UpdateInput: solo se tocan los campos con Set=true. Ninguno es anulable.
type UpdateInput struct {
	Name      patch.Field[string] `json:"name"`
	Email     patch.Field[string] `json:"email"`
	Phone     patch.Field[string] `json:"phone"`
	Segment   patch.Field[string] `json:"segment"`
	RiskLevel patch.Field[string] `json:"risk_level"`
	Status    patch.Field[string] `json:"status"`
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Customer, error) {
	fields := []struct {
		name string
		f    patch.Field[string]
		tag  string
	}{
		{"name", in.Name, "required,max=100"},
		{"email", in.Email, "required,email,max=255"},
		{"phone", in.Phone, "required,max=20"},
		{"segment", in.Segment, "required,max=50"},
		{"risk_level", in.RiskLevel, "required,max=20"},
		{"status", in.Status, "required,max=20"},
	}

	values := make(map[string]string, len(fields))
	for _, fd := range fields {
		if !fd.f.Set {
			continue
		}
		v := strings.TrimSpace(fd.f.Value)
		if err := validation.Var(fd.name, v, fd.tag); err != nil {
			return Customer{}, err
		}
		values[fd.name] = v
	}

	// Chequeo previo para devolver 422; la constraint del store cubre la carrera.
	if email, ok := values["email"]; ok {
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return Customer{}, err
		}
	}

	now := s.now()
	return s.repo.Update(ctx, id, func(c *Customer) error {
		dst := map[string]*string{
			"name":       &c.Name,
			"email":      &c.Email,
			"phone":      &c.Phone,
			"segment":    &c.Segment,
			"risk_level": &c.RiskLevel,
			"status":     &c.Status,
		}
		for name, v := range values {
			*dst[name] = v
		}
		c.UpdatedAt = now
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ensureEmailFree chequea unicidad antes de escribir; la constraint del store
// sigue siendo la última palabra ante carreras.
func (s *Service) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != selfID:
		return apperr.Validation("email: already registered")
	case err == nil, errors.Is(err, apperr.ErrNotFound):
		return nil
	default:
		return err
	}
}
