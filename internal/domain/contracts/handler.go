package contracts

import (
	"net/http"
	"time"

	"customer-contract-portal/internal/middleware"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/paging"
	"customer-contract-portal/internal/platform/patch"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, bounds paging.Bounds) {
	r.Route("/contracts", func(cr chi.Router) {
		cr.Post("/", createContractHandler(svc))
		cr.Get("/", listContractsHandler(svc, bounds))

		cr.Get("/{contractID}", getContractHandler(svc))
		cr.Put("/{contractID}", updateContractHandler(svc))
		cr.Patch("/{contractID}", updateContractHandler(svc))
		cr.Delete("/{contractID}", deleteContractHandler(svc))

		// Override administrativo: cambia status sin Action (ver logs).
		cr.Post("/{contractID}/status-override", overrideStatusHandler(svc))
	})
}

type createContractRequest struct {
	CustomerID int64 `json:"customer_id"`
	CreateInput
}

type updateContractRequest struct {
	// status no se acepta acá; solo se detecta para dar un error claro.
	Status patch.Field[string] `json:"status"`
	UpdateInput
}

// contractResponse representa un contract devuelto por la API.
type contractResponse struct {
	ContractID     int64      `json:"contract_id"`
	CustomerID     int64      `json:"customer_id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	EffectiveDate  time.Time  `json:"effective_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	TermsRef       *string    `json:"terms_ref"`
	AttachmentsRef *string    `json:"attachments_ref"`
	CreatedBy      string     `json:"created_by"`
	UpdatedBy      string     `json:"updated_by"`
	LastActionAt   *time.Time `json:"last_action_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// createContractHandler godoc
// @Summary Crear contract
// @Description Crea un contract para un customer existente. Status por defecto "Draft".
// @Tags contracts
// @Accept json
// @Produce json
// @Param payload body createContractRequest true "Datos del contract"
// @Success 201 {object} contractResponse
// @Failure 404 {object} map[string]string "customer not found"
// @Failure 422 {object} map[string]string "validation_error"
// @Router /contracts [post]
func createContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContractRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		req.CreatedBy = middleware.ActorOr(r.Context(), req.CreatedBy)

		c, err := svc.Create(r.Context(), req.CustomerID, req.CreateInput)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toContractResponse(c))
	}
}

// listContractsHandler godoc
// @Summary Listar contracts
// @Tags contracts
// @Produce json
// @Param skip query int false "Offset (>= 0)"
// @Param limit query int false "Máximo a devolver (1-100). Por defecto 100"
// @Param customer_id query int false "Filtrar por customer"
// @Param status query string false "Filtrar por status exacto"
// @Success 200 {array} contractResponse
// @Failure 400 {object} map[string]string "invalid_argument"
// @Router /contracts [get]
func listContractsHandler(svc *Service, bounds paging.Bounds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := bounds.Parse(httpjson.Offset(r), r.URL.Query().Get("limit"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		customerID, err := httpjson.QueryID(r, "customer_id")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		items, err := svc.List(r.Context(), ListFilter{
			CustomerID: customerID,
			Status:     httpjson.QueryString(r, "status"),
		}, page)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]contractResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContractResponse(c))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "contractID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toContractResponse(c))
	}
}

func updateContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "contractID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		var req updateContractRequest
		if err := httpjson.DecodeOptional(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}
		if req.Status.Set {
			httpjson.Error(w, apperr.Validation(
				"status: cannot be edited here; record an action or use POST /contracts/{id}/status-override"))
			return
		}

		c, err := svc.Update(r.Context(), id, req.UpdateInput)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toContractResponse(c))
	}
}

// overrideStatusHandler godoc
// @Summary Override administrativo de status
// @Description Escribe el status sin pasar por el ciclo de vida. No genera Action.
// @Tags contracts
// @Accept json
// @Produce json
// @Param contractID path int true "ID del contract"
// @Param payload body OverrideInput true "Nuevo status y responsable"
// @Success 200 {object} contractResponse
// @Failure 404 {object} map[string]string "not_found"
// @Router /contracts/{contractID}/status-override [post]
func overrideStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "contractID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		var req OverrideInput
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		req.UpdatedBy = middleware.ActorOr(r.Context(), req.UpdatedBy)

		c, err := svc.OverrideStatus(r.Context(), id, req)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toContractResponse(c))
	}
}

func deleteContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "contractID")
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

func toContractResponse(c Contract) contractResponse {
	return contractResponse{
		ContractID:     c.ID,
		CustomerID:     c.CustomerID,
		Type:           c.Type,
		Status:         c.Status.String(),
		EffectiveDate:  c.EffectiveDate,
		ExpirationDate: c.ExpirationDate,
		TermsRef:       c.TermsRef,
		AttachmentsRef: c.AttachmentsRef,
		CreatedBy:      c.CreatedBy,
		UpdatedBy:      c.UpdatedBy,
		LastActionAt:   c.LastActionAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
