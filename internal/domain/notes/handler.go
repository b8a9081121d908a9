package notes

import (
	"net/http"
	"time"

	"customer-contract-portal/internal/middleware"
	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, bounds paging.Bounds) {
	r.Route("/notes", func(nr chi.Router) {
		nr.Post("/", createNoteHandler(svc))
		nr.Get("/", listNotesHandler(svc, bounds))

		nr.Get("/{noteID}", getNoteHandler(svc))
		nr.Put("/{noteID}", editNoteHandler(svc))
		nr.Patch("/{noteID}", editNoteHandler(svc))
		nr.Delete("/{noteID}", deleteNoteHandler(svc))

		nr.Get("/{noteID}/replies", listRepliesHandler(svc))
	})
}

type createNoteRequest struct {
	ContractID int64 `json:"contract_id"`
	CreateInput
}

// noteResponse representa una note (comentario) devuelta por la API.
type noteResponse struct {
	NoteID          int64      `json:"note_id"`
	ContractID      int64      `json:"contract_id"`
	Body            string     `json:"body"`
	ParentCommentID *int64     `json:"parent_comment_id"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	EditedAt        *time.Time `json:"edited_at"`
	EditNote        *string    `json:"edit_note"`
}

// createNoteHandler godoc
// @Summary Crear note
// @Description Crea una note sobre un contract; con parent_comment_id queda como respuesta.
// @Tags notes
// @Accept json
// @Produce json
// @Param payload body createNoteRequest true "Note"
// @Success 201 {object} noteResponse
// @Failure 404 {object} map[string]string "contract o parent not found"
// @Failure 422 {object} map[string]string "validation_error"
// @Router /notes [post]
func createNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		req.CreatedBy = middleware.ActorOr(r.Context(), req.CreatedBy)

		n, err := svc.Create(r.Context(), req.ContractID, req.CreateInput)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toNoteResponse(n))
	}
}

func listNotesHandler(svc *Service, bounds paging.Bounds) http.HandlerFunc {
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

		items, err := svc.List(r.Context(), ListFilter{ContractID: contractID}, page)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toNoteResponses(items))
	}
}

func getNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "noteID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		n, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toNoteResponse(n))
	}
}

// editNoteHandler godoc
// @Summary Editar note
// @Description Aplica body y/o edit_note; edited_at se actualiza siempre. No hay historial de versiones.
// @Tags notes
// @Accept json
// @Produce json
// @Param noteID path int true "ID de la note"
// @Param payload body EditInput true "Campos a editar"
// @Success 200 {object} noteResponse
// @Failure 404 {object} map[string]string "not_found"
// @Router /notes/{noteID} [patch]
func editNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "noteID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		var req EditInput
		if err := httpjson.DecodeOptional(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		n, err := svc.Edit(r.Context(), id, req)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toNoteResponse(n))
	}
}

func deleteNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "noteID")
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

func listRepliesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "noteID")
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		items, err := svc.Replies(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toNoteResponses(items))
	}
}

func toNoteResponses(items []Note) []noteResponse {
	out := make([]noteResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNoteResponse(n))
	}
	return out
}

func toNoteResponse(n Note) noteResponse {
	return noteResponse{
		NoteID:          n.ID,
		ContractID:      n.ContractID,
		Body:            n.Body,
		ParentCommentID: n.ParentID,
		CreatedBy:       n.CreatedBy,
		CreatedAt:       n.CreatedAt,
		EditedAt:        n.EditedAt,
		EditNote:        n.EditNote,
	}
}
