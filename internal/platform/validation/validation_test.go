package validation

import (
	"errors"
	"strings"
	"testing"

	"customer-contract-portal/internal/platform/apperr"
)

type input struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"required,email"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(input{Name: "too-long-name", Email: "nope"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "name: must be at most 5 characters") {
		t.Fatalf("missing name detail: %s", msg)
	}
	if !strings.Contains(msg, "email: must be a valid email") {
		t.Fatalf("missing email detail: %s", msg)
	}

	if err := Struct(input{Name: "ok", Email: "a@x.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVar(t *testing.T) {
	if err := Var("email", "a@x.com", "email"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Var("email", "bad", "email")
	if err == nil || err.Error() != "email: must be a valid email" {
		t.Fatalf("unexpected error: %v", err)
	}
}
