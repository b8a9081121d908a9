package seed

import (
	"reflect"
	"testing"
	"time"
)

func fixedSeeder(seed uint64) *Seeder {
	s := New(nil, nil, seed)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s
}

func payloads(s *Seeder) []map[string]any {
	return []map[string]any{
		s.customerPayload(0),
		s.customerPayload(1),
		s.contractPayload(1),
		s.eventPayload(1),
	}
}

func TestPayloads_SameSeedSameData(t *testing.T) {
	a := payloads(fixedSeeder(42))
	b := payloads(fixedSeeder(42))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical payloads for the same seed:\n%v\n%v", a, b)
	}

	c := payloads(fixedSeeder(43))
	if reflect.DeepEqual(a, c) {
		t.Fatalf("expected different payloads for another seed")
	}
}

func TestCustomerPayload_EmailCarriesIndex(t *testing.T) {
	s := fixedSeeder(7)
	first := s.customerPayload(0)["email"].(string)
	second := s.customerPayload(1)["email"].(string)
	if first == second {
		t.Fatalf("expected distinct emails, got %q twice", first)
	}
}

func TestContractPayload_DatesWithinRange(t *testing.T) {
	s := fixedSeeder(9)
	now := s.now()
	for i := 0; i < 50; i++ {
		p := s.contractPayload(1)
		eff, err := time.Parse(time.RFC3339, p["effective_date"].(string))
		if err != nil {
			t.Fatalf("effective_date: %v", err)
		}
		if eff.After(now) || eff.Before(now.AddDate(-2, 0, 0)) {
			t.Fatalf("effective_date out of range: %v", eff)
		}
		if raw, ok := p["expiration_date"].(string); ok {
			exp, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				t.Fatalf("expiration_date: %v", err)
			}
			if !exp.After(eff) {
				t.Fatalf("expiration %v not after effective %v", exp, eff)
			}
		}
	}
}
