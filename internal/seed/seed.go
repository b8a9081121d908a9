// Package seed puebla un portal en marcha con datos de ejemplo a través de su
// API pública (no toca la base directamente).
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/httpclient"
	"customer-contract-portal/internal/platform/logger"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	segments      = []string{"Retail", "Corporate", "SME", "Enterprise", "Government"}
	riskLevels    = []string{"Low", "Medium", "High"}
	statuses      = []string{"Active", "Inactive", "Pending"}
	contractTypes = []string{"Service Agreement", "License Agreement", "Maintenance Contract",
		"Support Contract", "NDA", "Purchase Agreement", "SLA"}
	contractStatuses = []string{"Draft", "Pending Approval", "Approved", "Rejected", "Active", "Expired"}
	users            = []string{"admin", "john.doe", "jane.smith", "manager", "sales.rep"}
	eventTypes       = []string{"Login", "Logout", "Password Reset", "Contract View", "Contract Download",
		"Profile Update", "Payment", "Contract Sign", "Document Upload", "Query"}
	channels    = []string{"Web", "Mobile", "API"}
	actionTypes = []string{"approve", "reject", "reopen", "flag"}
)

type Counts struct {
	Customers int
	Contracts int
	Events    int
	Notes     int
	Actions   int
}

func DefaultCounts() Counts {
	return Counts{Customers: 5, Contracts: 10, Events: 20, Notes: 10, Actions: 10}
}

// Result cuenta lo que efectivamente se creó.
type Result Counts

type Seeder struct {
	api  *httpclient.Client
	log  logger.Logger
	fake *gofakeit.Faker
	now  func() time.Time
}

// New arma un Seeder; con el mismo seed (distinto de 0) y el mismo reloj los
// payloads se repiten. seed 0 toma uno al azar.
func New(api *httpclient.Client, log logger.Logger, seed uint64) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{
		api:  api,
		log:  log.With(map[string]any{"module": "seed"}),
		fake: gofakeit.New(seed),
		now:  time.Now,
	}
}

type idResponse struct {
	CustomerID int64 `json:"customer_id"`
	ContractID int64 `json:"contract_id"`
	NoteID     int64 `json:"note_id"`
}

// Run crea customers, después contracts/events sobre esos customers y por
// último notes/actions sobre los contracts. Corta en el primer error.
func (s *Seeder) Run(ctx context.Context, c Counts) (Result, error) {
	var res Result
	if c.Customers <= 0 {
		return res, nil
	}

	customerIDs := make([]int64, 0, c.Customers)
	for i := 0; i < c.Customers; i++ {
		var out idResponse
		if err := s.api.Post(ctx, "/customers", s.customerPayload(i), &out); err != nil {
			return res, fmt.Errorf("seed customer: %w", err)
		}
		customerIDs = append(customerIDs, out.CustomerID)
		res.Customers++
	}
	s.log.Info("customers created", map[string]any{"count": res.Customers})

	contractIDs := make([]int64, 0, c.Contracts)
	for i := 0; i < c.Contracts; i++ {
		var out idResponse
		if err := s.api.Post(ctx, "/contracts", s.contractPayload(pick(s.fake, customerIDs)), &out); err != nil {
			return res, fmt.Errorf("seed contract: %w", err)
		}
		contractIDs = append(contractIDs, out.ContractID)
		res.Contracts++
	}
	s.log.Info("contracts created", map[string]any{"count": res.Contracts})

	for i := 0; i < c.Events; i++ {
		if err := s.api.Post(ctx, "/events", s.eventPayload(pick(s.fake, customerIDs)), nil); err != nil {
			return res, fmt.Errorf("seed event: %w", err)
		}
		res.Events++
	}
	s.log.Info("events created", map[string]any{"count": res.Events})

	if len(contractIDs) == 0 {
		return res, nil
	}

	// última note por contract, para colgar respuestas
	lastNote := make(map[int64]int64)
	for i := 0; i < c.Notes; i++ {
		contractID := pick(s.fake, contractIDs)
		payload := map[string]any{
			"contract_id": contractID,
			"body":        s.sentence(),
			"created_by":  s.fake.RandomString(users),
		}
		if parent, ok := lastNote[contractID]; ok && s.fake.Bool() {
			payload["parent_comment_id"] = parent
		}
		var out idResponse
		if err := s.api.Post(ctx, "/notes", payload, &out); err != nil {
			return res, fmt.Errorf("seed note: %w", err)
		}
		lastNote[contractID] = out.NoteID
		res.Notes++
	}
	s.log.Info("notes created", map[string]any{"count": res.Notes})

	for i := 0; i < c.Actions; i++ {
		payload := map[string]any{
			"contract_id": pick(s.fake, contractIDs),
			"action_type": s.fake.RandomString(actionTypes),
			"acted_by":    s.fake.RandomString(users),
		}
		if s.fake.Bool() {
			payload["action_note"] = s.sentence()
		}
		if err := s.api.Post(ctx, "/actions", payload, nil); err != nil {
			return res, fmt.Errorf("seed action: %w", err)
		}
		res.Actions++
	}
	s.log.Info("actions created", map[string]any{"count": res.Actions})

	return res, nil
}

// customerPayload arma un customer; n entra en el email para que no choque
// con el índice único aunque el faker repita nombres.
func (s *Seeder) customerPayload(n int) map[string]any {
	f := s.fake
	var name string
	if f.Bool() {
		name = f.Company() + " " + f.CompanySuffix()
	} else {
		name = f.Name()
	}
	local, domain, _ := strings.Cut(f.Email(), "@")
	return map[string]any{
		"name":       name,
		"email":      fmt.Sprintf("%s.%d@%s", local, n+1, domain),
		"phone":      f.Phone(),
		"segment":    f.RandomString(segments),
		"risk_level": f.RandomString(riskLevels),
		"status":     f.RandomString(statuses),
	}
}

func (s *Seeder) contractPayload(customerID int64) map[string]any {
	f := s.fake
	now := s.now().UTC().Truncate(time.Second)
	effective := f.DateRange(now.AddDate(-2, 0, 0), now)

	payload := map[string]any{
		"customer_id":    customerID,
		"type":           f.RandomString(contractTypes),
		"status":         f.RandomString(contractStatuses),
		"effective_date": effective.Format(time.RFC3339),
		"created_by":     f.RandomString(users),
		"updated_by":     f.RandomString(users),
	}
	if f.Bool() {
		payload["expiration_date"] = f.DateRange(effective.Add(time.Hour), effective.AddDate(2, 0, 0)).Format(time.RFC3339)
	}
	if f.Bool() {
		payload["terms_ref"] = "https://docs.example.com/terms/" + f.UUID()
	}
	if f.Bool() {
		payload["attachments_ref"] = fmt.Sprintf("contracts/%d/%s.pdf", customerID, f.UUID()[:8])
	}
	return payload
}

func (s *Seeder) eventPayload(customerID int64) map[string]any {
	f := s.fake
	now := s.now().UTC().Truncate(time.Second)
	payload := map[string]any{
		"customer_id": customerID,
		"event_type":  f.RandomString(eventTypes),
		"channel":     f.RandomString(channels),
		"timestamp":   f.DateRange(now.AddDate(-1, 0, 0), now).Format(time.RFC3339),
	}
	if f.Bool() {
		payload["ip_address"] = f.IPv4Address()
	}
	if f.Bool() {
		payload["user_agent"] = f.UserAgent()
	}
	if f.Bool() {
		payload["metadata_json"] = map[string]any{
			"action":  f.RandomString([]string{"view", "download", "update", "submit"}),
			"result":  f.RandomString([]string{"ok", "denied", "retry"}),
			"details": s.sentence(),
		}
	}
	if f.Bool() {
		payload["correlation_id"] = f.UUID()
	}
	return payload
}

func (s *Seeder) sentence() string {
	return s.fake.Sentence(s.fake.IntRange(4, 10))
}

func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.IntN(len(items))]
}
