package events

import (
	"net/http"
	"time"

	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, bounds paging.Bounds) {
	r.Route("/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc, bounds))
		er.Get("/{eventID}", getEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))
	})
}

// createEventRequest es el cuerpo de la solicitud para registrar un evento de actividad.
type createEventRequest struct {
	CustomerID int64 `json:"customer_id"`
	CreateInput
}

// eventResponse representa un evento de actividad devuelto por la API.
type eventResponse struct {
	EventID       int64          `json:"event_id"`
	CustomerID    int64          `json:"customer_id"`
	EventType     string         `json:"event_type"`
	Timestamp     time.Time      `json:"timestamp"`
	Channel       Channel        `json:"channel"`
	IPAddress     *string        `json:"ip_address"`
	UserAgent     *string        `json:"user_agent"`
	MetadataJSON  map[string]any `json:"metadata_json"`
	CorrelationID *string        `json:"correlation_id"`
}

// createEventHandler godoc
// @Summary Registrar evento
// @Description Agrega un evento al log de actividad del customer. Los eventos no se editan.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Evento; timestamp opcional en RFC3339"
// @Success 201 {object} eventResponse
// @Failure 404 {object} map[string]string "customer not found"
// @Failure 422 {object} map[string]string "validation_error"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		e, err := svc.Create(r.Context(), req.CustomerID, req.CreateInput)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Más recientes primero. start_date / end_date son inclusivos (RFC3339).
// @Tags events
// @Produce json
// @Param skip query int false "Offset (>= 0)"
// @Param limit query int false "Máximo a devolver (1-100). Por defecto 100"
// @Param customer_id query int false "Filtrar por customer"
// @Param event_type query string false "Filtrar por tipo"
// @Param start_date query string false "timestamp mínimo (RFC3339)"
// @Param end_date query string false "timestamp máximo (RFC3339)"
// @Success 200 {array} eventResponse
// @Failure 400 {object} map[string]string "invalid_argument"
// @Router /events [get]
func listEventsHandler(svc *Service, bounds paging.Bounds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := bounds.Parse(httpjson.Offset(r), r.URL.Query().Get("limit"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		items, err := svc.List(r.Context(), filter, page)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "eventID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEventResponse(e))
	}
}

func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "eventID")
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

func parseListFilter(r *http.Request) (ListFilter, error) {
	customerID, err := httpjson.QueryID(r, "customer_id")
	if err != nil {
		return ListFilter{}, err
	}
	from, err := httpjson.QueryTime(r, "start_date")
	if err != nil {
		return ListFilter{}, err
	}
	to, err := httpjson.QueryTime(r, "end_date")
	if err != nil {
		return ListFilter{}, err
	}

	return ListFilter{
		CustomerID: customerID,
		Type:       httpjson.QueryString(r, "event_type"),
		From:       from,
		To:         to,
	}, nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		EventID:       e.ID,
		CustomerID:    e.CustomerID,
		EventType:     e.Type,
		Timestamp:     e.Timestamp,
		Channel:       e.Channel,
		IPAddress:     e.IPAddress,
		UserAgent:     e.UserAgent,
		MetadataJSON:  e.Metadata,
		CorrelationID: e.CorrelationID,
	}
}
