package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NotFound("contract", 7))

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("did not expect ErrValidation")
	}
	if got := err.Error(); got != "wrap: contract 7 not found" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStorage_WrapsOnce(t *testing.T) {
	base := errors.New("disk full")
	err := Storage(base)
	if !errors.Is(err, ErrStorage) || !errors.Is(err, base) {
		t.Fatalf("expected storage error wrapping base, got %v", err)
	}

	nf := NotFound("note", 1)
	if Storage(nf) != error(nf) {
		t.Fatalf("Storage must not re-wrap typed errors")
	}
	if Storage(nil) != nil {
		t.Fatalf("Storage(nil) must be nil")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("customer", 1), http.StatusNotFound},
		{Validation("bad email"), http.StatusUnprocessableEntity},
		{InvalidArgument("limit"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
	if PublicMessage(Storage(errors.New("pq: secret"))) != "internal error" {
		t.Fatalf("storage details must not leak")
	}
}
