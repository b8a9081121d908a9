package actions

import (
	"net/http"
	"time"

	"customer-contract-portal/internal/middleware"
	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, bounds paging.Bounds) {
	r.Route("/actions", func(ar chi.Router) {
		ar.Post("/", recordActionHandler(svc))
		ar.Get("/", listActionsHandler(svc, bounds))
		ar.Get("/{actionID}", getActionHandler(svc))
		ar.Delete("/{actionID}", deleteActionHandler(svc))
	})

	// Historial cronológico de cambios de status de un contract.
	r.Get("/contracts/{contractID}/history", contractHistoryHandler(svc))
}

type recordActionRequest struct {
	ContractID int64 `json:"contract_id"`
	RecordInput
}

// actionResponse representa un action (registro de auditoría) devuelto por la API.
type actionResponse struct {
	ActionID    int64     `json:"action_id"`
	ContractID  int64     `json:"contract_id"`
	ActionType  string    `json:"action_type"`
	ActionNote  *string   `json:"action_note"`
	ActedBy     string    `json:"acted_by"`
	ActedAt     time.Time `json:"acted_at"`
	PriorStatus *string   `json:"prior_status"`
	NewStatus   *string   `json:"new_status"`
}

// recordActionHandler godoc
// @Summary Registrar action sobre un contract
// @Description approve => Approved, reject => Rejected, reopen => Pending Approval. Cualquier otro action_type no cambia el status (new_status null). El cambio de status y el action se escriben en la misma transacción.
// @Tags actions
// @Accept json
// @Produce json
// @Param payload body recordActionRequest true "Action"
// @Success 201 {object} actionResponse
// @Failure 404 {object} map[string]string "contract not found"
// @Failure 422 {object} map[string]string "validation_error"
// @Router /actions [post]
func recordActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordActionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		req.ActedBy = middleware.ActorOr(r.Context(), req.ActedBy)

		a, err := svc.Record(r.Context(), req.ContractID, req.RecordInput)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toActionResponse(a))
	}
}

// listActionsHandler godoc
// @Summary Listar actions (más recientes primero)
// @Tags actions
// @Produce json
// @Param skip query int false "Offset (>= 0)"
// @Param limit query int false "Máximo a devolver (1-100). Por defecto 100"
// @Param contract_id query int false "Filtrar por contract"
// @Param action_type query string false "Filtrar por tipo"
// @Success 200 {array} actionResponse
// @Failure 400 {object} map[string]string "invalid_argument"
// @Router /actions [get]
func listActionsHandler(svc *Service, bounds paging.Bounds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := bounds.Parse(httpjson.Offset(r), r.URL.Query().Get("limit"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		contractID, err := httpjson.QueryID(r, "contract_id")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		items, err := svc.List(r.Context(), ListFilter{
			ContractID: contractID,
			ActionType: httpjson.QueryString(r, "action_type"),
		}, page)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toActionResponses(items))
	}
}

func getActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "actionID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toActionResponse(a))
	}
}

func deleteActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "actionID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpjson.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// contractHistoryHandler godoc
// @Summary Historial de un contract
// @Description Actions del contract en orden cronológico (más antiguo primero).
// @Tags actions
// @Produce json
// @Param contractID path int true "ID del contract"
// @Success 200 {array} actionResponse
// @Failure 404 {object} map[string]string "contract not found"
// @Router /contracts/{contractID}/history [get]
func contractHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "contractID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		items, err := svc.History(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toActionResponses(items))
	}
}

func toActionResponses(items []Action) []actionResponse {
	out := make([]actionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toActionResponse(a))
	}
	return out
}

func toActionResponse(a Action) actionResponse {
	out := actionResponse{
		ActionID:   a.ID,
		ContractID: a.ContractID,
		ActionType: string(a.Type),
		ActionNote: a.Note,
		ActedBy:    a.ActedBy,
		ActedAt:    a.ActedAt,
	}
	if !a.PriorStatus.IsZero() {
		v := a.PriorStatus.String()
		out.PriorStatus = &v
	}
	if a.NewStatus != nil {
		v := a.NewStatus.String()
		out.NewStatus = &v
	}
	return out
}
