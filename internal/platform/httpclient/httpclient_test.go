package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative"} {
		if _, err := New(raw, 0); err == nil {
			t.Fatalf("expected error for base url %q", raw)
		}
	}
}

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-Actor"); got != "seed" {
			t.Errorf("expected X-Actor seed, got %q", got)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"customer_id": 7, "email": in["email"]})
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.Actor = "seed"

	var out struct {
		CustomerID int64  `json:"customer_id"`
		Email      string `json:"email"`
	}
	if err := c.Post(context.Background(), "customers", map[string]string{"email": "a@x.com"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.CustomerID != 7 || out.Email != "a@x.com" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestDoJSON_SendsRequestID(t *testing.T) {
	seen := map[string]bool{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("expected uuid request id, got %q", id)
		}
		seen[id] = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := c.Delete(context.Background(), "/notes/1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected a fresh request id per call, got %v", seen)
	}
}

func TestDoJSON_DecodesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"customer 9 not found","kind":"not_found"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	err = c.Get(context.Background(), "/customers/9", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Kind != "not_found" || apiErr.Message != "customer 9 not found" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatal("IsStatus should match 404")
	}
}

func TestDoJSON_PlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, _ := New(ts.URL, 0)
	err := c.Delete(context.Background(), "/events/1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "boom" || apiErr.Kind != "" {
		t.Fatalf("unexpected error %v", err)
	}
}
