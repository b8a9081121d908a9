package customers

import (
	"net/http"
	"time"

	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, bounds paging.Bounds) {
	r.Route("/customers", func(cr chi.Router) {
		cr.Post("/", createCustomerHandler(svc))
		cr.Get("/", listCustomersHandler(svc, bounds))

		cr.Get("/{customerID}", getCustomerHandler(svc))
		// PUT se mantiene por compatibilidad; ambos son parciales (exclude-unset).
		cr.Put("/{customerID}", updateCustomerHandler(svc))
		cr.Patch("/{customerID}", updateCustomerHandler(svc))
		cr.Delete("/{customerID}", deleteCustomerHandler(svc))
	})
}

// customerResponse representa un customer devuelto por la API.
type customerResponse struct {
	CustomerID int64     `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Segment    string    `json:"segment"`
	RiskLevel  string    `json:"risk_level"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// createCustomerHandler godoc
// @Summary Crear customer
// @Description Alta de customer. El email es único; status por defecto "Active".
// @Tags customers
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del customer"
// @Success 201 {object} customerResponse
// @Failure 422 {object} map[string]string "validation_error"
// @Router /customers [post]
func createCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateInput
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		c, err := svc.Create(r.Context(), req)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toCustomerResponse(c))
	}
}

// listCustomersHandler godoc
// @Summary Listar customers
// @Description Lista paginada en orden de almacenamiento (no garantizado).
// @Tags customers
// @Produce json
// @Param skip query int false "Offset (>= 0)"
// @Param limit query int false "Máximo a devolver (1-100). Por defecto 100"
// @Success 200 {array} customerResponse
// @Failure 400 {object} map[string]string "invalid_argument"
// @Router /customers [get]
func listCustomersHandler(svc *Service, bounds paging.Bounds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := bounds.Parse(httpjson.Offset(r), r.URL.Query().Get("limit"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		items, err := svc.List(r.Context(), page)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]customerResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCustomerResponse(c))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "customerID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toCustomerResponse(c))
	}
}

// updateCustomerHandler godoc
// @Summary Actualizar customer (parcial)
// @Description Solo se modifican los campos enviados; updated_at se actualiza siempre.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerID path int true "ID del customer"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} customerResponse
// @Failure 404 {object} map[string]string "not_found"
// @Failure 422 {object} map[string]string "validation_error"
// @Router /customers/{customerID} [patch]
func updateCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "customerID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		var req UpdateInput
		if err := httpjson.DecodeOptional(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		c, err := svc.Update(r.Context(), id, req)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toCustomerResponse(c))
	}
}

// deleteCustomerHandler godoc
// @Summary Borrar customer
// @Description Borra el customer y en cascada sus contracts (notes, actions) y events.
// @Tags customers
// @Param customerID path int true "ID del customer"
// @Success 204
// @Failure 404 {object} map[string]string "not_found"
// @Router /customers/{customerID} [delete]
func deleteCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "customerID")
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

func toCustomerResponse(c Customer) customerResponse {
	return customerResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Segment:    c.Segment,
		RiskLevel:  c.RiskLevel,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
