package events

import (
	"context"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
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
	EventType     string         `json:"event_type" validate:"required,max=50"`
	Channel       string         `json:"channel" validate:"required,max=50"`
	Timestamp     *time.Time     `json:"timestamp"` // opcional; default now
	IPAddress     *string        `json:"ip_address" validate:"omitempty,max=45"`
	UserAgent     *string        `json:"user_agent" validate:"omitempty,max=500"`
	Metadata      map[string]any `json:"metadata_json"`
	CorrelationID *string        `json:"correlation_id" validate:"omitempty,max=100"`
}

func (s *Service) Create(ctx context.Context, customerID int64, in CreateInput) (Event, error) {
	if customerID <= 0 {
		return Event{}, apperr.Validation("customer_id: is required")
	}
	in.EventType = strings.TrimSpace(in.EventType)
	in.Channel = strings.TrimSpace(in.Channel)
	if err := validation.Struct(in); err != nil {
		return Event{}, err
	}

	ts := s.now()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = *in.Timestamp
	}

	return s.repo.Create(ctx, Event{
		CustomerID:    customerID,
		Type:          in.EventType,
		Timestamp:     ts,
		Channel:       Channel(in.Channel),
		IPAddress:     in.IPAddress,
		UserAgent:     in.UserAgent,
		Metadata:      in.Metadata,
		CorrelationID: in.CorrelationID,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, page paging.Page) ([]Event, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
