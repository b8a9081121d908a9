package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"customer-contract-portal/internal/adapters/storage/sqlite"
	"customer-contract-portal/internal/adapters/storage/sqlstore"
	"customer-contract-portal/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ContractLifecycle(t *testing.T) {
	ts := newServer(t)
	runLifecycleScenario(t, ts.URL)
}

// Mismo escenario sobre el store SQL (SQLite en archivo temporal).
func TestHTTP_EndToEnd_ContractLifecycle_SQLite(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ts := httptest.NewServer(router.NewRouter(router.Options{DB: db, Dialect: sqlstore.SQLite}))
	t.Cleanup(ts.Close)

	runLifecycleScenario(t, ts.URL)
}

func runLifecycleScenario(t *testing.T, baseURL string) {
	t.Helper()

	// 1) customer + contract en Draft
	customerID := createCustomer(t, baseURL, "a@x.com")
	contractID := createContract(t, baseURL, customerID)

	{
		st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/contracts/%d", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get contract, got %d body=%s", st, body)
		}
		c := decode[map[string]any](t, body)
		if c["status"] != "Draft" {
			t.Fatalf("expected Draft, got %v", c["status"])
		}
	}

	// 2) alice aprueba
	{
		st, body := doReq(t, baseURL, "POST", "/actions", "", map[string]any{
			"contract_id": contractID,
			"action_type": "approve",
			"acted_by":    "alice",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 approve, got %d body=%s", st, body)
		}
		a := decode[map[string]any](t, body)
		if a["prior_status"] != "Draft" || a["new_status"] != "Approved" {
			t.Fatalf("unexpected approve transition %v -> %v", a["prior_status"], a["new_status"])
		}
	}

	// 3) bob reabre (acted_by desde X-Actor)
	{
		st, body := doReq(t, baseURL, "POST", "/actions", "bob", map[string]any{
			"contract_id": contractID,
			"action_type": "reopen",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 reopen, got %d body=%s", st, body)
		}
		a := decode[map[string]any](t, body)
		if a["acted_by"] != "bob" {
			t.Fatalf("expected acted_by bob, got %v", a["acted_by"])
		}
		if a["prior_status"] != "Approved" || a["new_status"] != "Pending Approval" {
			t.Fatalf("unexpected reopen transition %v -> %v", a["prior_status"], a["new_status"])
		}
	}

	// 4) flag no cambia status
	{
		st, body := doReq(t, baseURL, "POST", "/actions", "", map[string]any{
			"contract_id": contractID,
			"action_type": "flag",
			"action_note": "check pricing",
			"acted_by":    "carol",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 flag, got %d body=%s", st, body)
		}
		a := decode[map[string]any](t, body)
		if a["new_status"] != nil {
			t.Fatalf("expected new_status null for flag, got %v", a["new_status"])
		}
		if a["prior_status"] != "Pending Approval" {
			t.Fatalf("unexpected prior_status %v", a["prior_status"])
		}
	}

	// 5) contract refleja el último cambio y last_action_at
	{
		st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/contracts/%d", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get contract, got %d", st)
		}
		c := decode[map[string]any](t, body)
		if c["status"] != "Pending Approval" {
			t.Fatalf("expected Pending Approval, got %v", c["status"])
		}
		if c["last_action_at"] == nil {
			t.Fatal("expected last_action_at to be set")
		}
	}

	// 6) historial en orden cronológico
	{
		st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/contracts/%d/history", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, body)
		}
		hist := decode[[]map[string]any](t, body)
		if len(hist) != 3 {
			t.Fatalf("expected 3 actions, got %d", len(hist))
		}
		want := []string{"approve", "reopen", "flag"}
		for i, a := range hist {
			if a["action_type"] != want[i] {
				t.Fatalf("history[%d]: expected %s, got %v", i, want[i], a["action_type"])
			}
		}
	}

	// 7) listado de actions: más reciente primero
	{
		st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/actions?contract_id=%d&limit=1", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list actions, got %d", st)
		}
		list := decode[[]map[string]any](t, body)
		if len(list) != 1 || list[0]["action_type"] != "flag" {
			t.Fatalf("expected newest action flag, got %v", list)
		}
	}

	// 8) borrar el customer arrastra contract, actions y events
	{
		st, body := doReq(t, baseURL, "POST", "/events", "", map[string]any{
			"customer_id": customerID,
			"event_type":  "Login",
			"channel":     "Web",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 event, got %d body=%s", st, body)
		}

		st, _ = doReq(t, baseURL, "DELETE", fmt.Sprintf("/customers/%d", customerID), "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete customer, got %d", st)
		}
		st, _ = doReq(t, baseURL, "GET", fmt.Sprintf("/contracts/%d", contractID), "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for cascaded contract, got %d", st)
		}
		st, body = doReq(t, baseURL, "GET", fmt.Sprintf("/events?customer_id=%d", customerID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d", st)
		}
		if evs := decode[[]map[string]any](t, body); len(evs) != 0 {
			t.Fatalf("expected no events after cascade, got %d", len(evs))
		}
		st, body = doReq(t, baseURL, "GET", fmt.Sprintf("/actions?contract_id=%d", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list actions, got %d", st)
		}
		if acts := decode[[]map[string]any](t, body); len(acts) != 0 {
			t.Fatalf("expected no actions after cascade, got %d", len(acts))
		}
	}
}

func TestHTTP_Pagination_RejectsOutOfRange(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{
		"/customers?limit=0",
		"/customers?limit=101",
		"/customers?skip=-1",
		"/contracts?offset=-1",
		"/events?limit=abc",
		"/notes?limit=500",
	} {
		st, body := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", path, st, body)
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/customers?skip=0&limit=100", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 at upper bound, got %d", st)
	}
}

func TestHTTP_Customers_ValidationAndPartialUpdate(t *testing.T) {
	ts := newServer(t)

	id := createCustomer(t, ts.URL, "a@x.com")

	// email duplicado
	{
		st, body := doReq(t, ts.URL, "POST", "/customers", "", customerPayload("a@x.com"))
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 duplicate email, got %d body=%s", st, body)
		}
	}

	// email inválido
	{
		st, _ := doReq(t, ts.URL, "POST", "/customers", "", customerPayload("not-an-email"))
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 invalid email, got %d", st)
		}
	}

	// update parcial: solo segment
	{
		st, body := doReq(t, ts.URL, "PATCH", fmt.Sprintf("/customers/%d", id), "", map[string]any{"segment": "Corporate"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, body)
		}
		c := decode[map[string]any](t, body)
		if c["segment"] != "Corporate" || c["name"] != "Customer One" || c["status"] != "Active" {
			t.Fatalf("unexpected customer after patch: %v", c)
		}
	}

	// PUT sin body no cambia nada
	{
		st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/customers/%d", id), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 empty put, got %d body=%s", st, body)
		}
		if c := decode[map[string]any](t, body); c["segment"] != "Corporate" {
			t.Fatalf("unexpected customer after empty put: %v", c)
		}
	}

	// id inválido / inexistente
	if st, _ := doReq(t, ts.URL, "GET", "/customers/abc", "", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/customers/999", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing customer, got %d", st)
	}
}

func TestHTTP_Contracts_StatusOnlyViaActionsOrOverride(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "a@x.com")
	contractID := createContract(t, ts.URL, customerID)

	// contract para customer inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/contracts", "", map[string]any{
			"customer_id":    999,
			"type":           "NDA",
			"effective_date": "2025-01-01T00:00:00Z",
			"created_by":     "alice",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown customer, got %d", st)
		}
	}

	// update genérico no acepta status
	{
		st, _ := doReq(t, ts.URL, "PATCH", fmt.Sprintf("/contracts/%d", contractID), "", map[string]any{"status": "Active"})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 editing status, got %d", st)
		}
	}

	// update genérico de otros campos
	{
		st, body := doReq(t, ts.URL, "PATCH", fmt.Sprintf("/contracts/%d", contractID), "", map[string]any{
			"type":       "Master Services Agreement",
			"updated_by": "dave",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch contract, got %d body=%s", st, body)
		}
		c := decode[map[string]any](t, body)
		if c["status"] != "Draft" || c["updated_by"] != "dave" || c["last_action_at"] != nil {
			t.Fatalf("unexpected contract after patch: %v", c)
		}
	}

	// override: cambia status sin generar action
	{
		st, body := doReq(t, ts.URL, "POST", fmt.Sprintf("/contracts/%d/status-override", contractID), "admin", map[string]any{
			"status": "Active",
			"reason": "migrated from legacy system",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 override, got %d body=%s", st, body)
		}
		c := decode[map[string]any](t, body)
		if c["status"] != "Active" || c["updated_by"] != "admin" {
			t.Fatalf("unexpected contract after override: %v", c)
		}

		st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/contracts/%d/history", contractID), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d", st)
		}
		if hist := decode[[]map[string]any](t, body); len(hist) != 0 {
			t.Fatalf("override must not create actions, got %d", len(hist))
		}
	}

	// filtro por status
	{
		st, body := doReq(t, ts.URL, "GET", "/contracts?status=Active", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		if list := decode[[]map[string]any](t, body); len(list) != 1 {
			t.Fatalf("expected 1 Active contract, got %d", len(list))
		}
	}

	// action sobre contract inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/actions", "", map[string]any{
			"contract_id": 999, "action_type": "approve", "acted_by": "alice",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 action on unknown contract, got %d", st)
		}
	}
}

func TestHTTP_Notes_Threading(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "a@x.com")
	k1 := createContract(t, ts.URL, customerID)
	k2 := createContract(t, ts.URL, customerID)

	root := createNote(t, ts.URL, map[string]any{"contract_id": k1, "body": "root", "created_by": "alice"})
	reply := createNote(t, ts.URL, map[string]any{"contract_id": k1, "body": "reply", "created_by": "bob", "parent_comment_id": root})
	createNote(t, ts.URL, map[string]any{"contract_id": k1, "body": "nested", "created_by": "carol", "parent_comment_id": reply})

	// parent inexistente
	if st, _ := doReq(t, ts.URL, "POST", "/notes", "", map[string]any{
		"contract_id": k1, "body": "x", "created_by": "a", "parent_comment_id": 999,
	}); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown parent, got %d", st)
	}

	// parent de otro contract
	if st, _ := doReq(t, ts.URL, "POST", "/notes", "", map[string]any{
		"contract_id": k2, "body": "x", "created_by": "a", "parent_comment_id": root,
	}); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 cross-contract parent, got %d", st)
	}

	// body demasiado largo
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	if st, _ := doReq(t, ts.URL, "POST", "/notes", "", map[string]any{
		"contract_id": k1, "body": string(long), "created_by": "a",
	}); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 long body, got %d", st)
	}

	// respuestas directas
	{
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/notes/%d/replies", root), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 replies, got %d", st)
		}
		replies := decode[[]map[string]any](t, body)
		if len(replies) != 1 || int64(replies[0]["note_id"].(float64)) != reply {
			t.Fatalf("unexpected replies %v", replies)
		}
	}

	// edición marca edited_at
	{
		st, body := doReq(t, ts.URL, "PATCH", fmt.Sprintf("/notes/%d", root), "", map[string]any{
			"body": "root (edited)", "edit_note": "typo",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 edit, got %d body=%s", st, body)
		}
		n := decode[map[string]any](t, body)
		if n["edited_at"] == nil || n["edit_note"] != "typo" || n["body"] != "root (edited)" {
			t.Fatalf("unexpected note after edit: %v", n)
		}
	}

	// PUT sin body cuenta como {}: solo mueve edited_at
	{
		st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/notes/%d", reply), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 empty edit, got %d body=%s", st, body)
		}
		n := decode[map[string]any](t, body)
		if n["edited_at"] == nil || n["body"] != "reply" {
			t.Fatalf("unexpected note after empty edit: %v", n)
		}
	}

	// crear sí exige body
	if st, _ := doReq(t, ts.URL, "POST", "/notes", "", nil); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 create without body, got %d", st)
	}

	// borrar la raíz borra todo el hilo
	{
		st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/notes/%d", root), "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete note, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/notes?contract_id=%d", k1), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list notes, got %d", st)
		}
		if list := decode[[]map[string]any](t, body); len(list) != 0 {
			t.Fatalf("expected empty thread after delete, got %d", len(list))
		}
	}
}

func TestHTTP_Events_FiltersAndDefaults(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "a@x.com")

	for _, ev := range []map[string]any{
		{"customer_id": customerID, "event_type": "Login", "channel": "Web", "timestamp": "2025-01-10T09:00:00Z"},
		{"customer_id": customerID, "event_type": "Payment", "channel": "API", "timestamp": "2025-02-10T09:00:00Z",
			"metadata_json": map[string]any{"amount": 120.5}},
		{"customer_id": customerID, "event_type": "Login", "channel": "Mobile", "timestamp": "2025-03-10T09:00:00Z"},
	} {
		if st, body := doReq(t, ts.URL, "POST", "/events", "", ev); st != http.StatusCreated {
			t.Fatalf("expected 201 event, got %d body=%s", st, body)
		}
	}

	// timestamp por defecto
	{
		st, body := doReq(t, ts.URL, "POST", "/events", "", map[string]any{
			"customer_id": customerID, "event_type": "Query", "channel": "Web",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, body)
		}
		if e := decode[map[string]any](t, body); e["timestamp"] == nil || e["timestamp"] == "0001-01-01T00:00:00Z" {
			t.Fatalf("expected timestamp default, got %v", e["timestamp"])
		}
	}

	// tipo + orden desc
	{
		st, body := doReq(t, ts.URL, "GET", "/events?event_type=Login", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		list := decode[[]map[string]any](t, body)
		if len(list) != 2 || list[0]["channel"] != "Mobile" {
			t.Fatalf("unexpected login events %v", list)
		}
	}

	// rango de fechas (inclusivo)
	{
		st, body := doReq(t, ts.URL, "GET", "/events?start_date=2025-02-01&end_date=2025-03-01", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, body)
		}
		list := decode[[]map[string]any](t, body)
		if len(list) != 1 || list[0]["event_type"] != "Payment" {
			t.Fatalf("unexpected ranged events %v", list)
		}
		meta, _ := list[0]["metadata_json"].(map[string]any)
		if meta["amount"] != 120.5 {
			t.Fatalf("unexpected metadata %v", list[0]["metadata_json"])
		}
	}

	// event para customer inexistente
	if st, _ := doReq(t, ts.URL, "POST", "/events", "", map[string]any{
		"customer_id": 999, "event_type": "Login", "channel": "Web",
	}); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown customer, got %d", st)
	}
}

func TestHTTP_RootAndHealth(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/", "/health"} {
		st, body := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", path, st, body)
		}
	}
}

func customerPayload(email string) map[string]any {
	return map[string]any{
		"name":       "Customer One",
		"email":      email,
		"phone":      "+1-555-0100",
		"segment":    "Retail",
		"risk_level": "Low",
	}
}

func createCustomer(t *testing.T, baseURL, email string) int64 {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/customers", "", customerPayload(email))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create customer, got %d body=%s", st, body)
	}
	var out struct {
		CustomerID int64 `json:"customer_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode customer: %v", err)
	}
	return out.CustomerID
}

func createContract(t *testing.T, baseURL string, customerID int64) int64 {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/contracts", "", map[string]any{
		"customer_id":    customerID,
		"type":           "Service Agreement",
		"effective_date": "2025-01-01T00:00:00Z",
		"created_by":     "alice",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create contract, got %d body=%s", st, body)
	}
	var out struct {
		ContractID int64 `json:"contract_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode contract: %v", err)
	}
	return out.ContractID
}

func createNote(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/notes", "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create note, got %d body=%s", st, body)
	}
	var out struct {
		NoteID int64 `json:"note_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode note: %v", err)
	}
	return out.NoteID
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return v
}

func doReq(t *testing.T, baseURL, method, path, actor string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set("X-Actor", actor)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
