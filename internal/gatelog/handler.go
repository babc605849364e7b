package gatelog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuskit/gatepass-management/internal/gatepass"
	"github.com/campuskit/gatepass-management/internal/transport"
	"github.com/campuskit/gatepass-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Search(query string) (*gatepass.GatePass, error)
	FindOrCreateLog(dto CreateLogDTO) (*EntryExitLog, error)
	MarkEntry(passID, markedBy string) (*EntryExitLog, error)
	MarkExit(passID string) (*EntryExitLog, error)
	ListRecent() ([]*EntryExitLog, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// Search handles GET /search/{query}. A query with no approved match
// responds 200 with a null body, mirroring the lookup contract the security
// frontend expects.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	pass, err := h.Service.Search(query)
	if err != nil {
		h.Logger.Error("Search: service error", "error", err, "query", query)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, pass)
}

// CreateOrGet handles POST /logs
func (h *Handler) CreateOrGet(w http.ResponseWriter, r *http.Request) {
	var dto CreateLogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateOrGet: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.Service.FindOrCreateLog(dto)
	if err != nil {
		h.Logger.Error("CreateOrGet: service error", "error", err, "pass_id", dto.PassID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, log)
}

// MarkEntry handles PATCH /logs/{passId}/entry
func (h *Handler) MarkEntry(w http.ResponseWriter, r *http.Request) {
	passID := chi.URLParam(r, "passId")

	var dto MarkEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkEntry: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.Service.MarkEntry(passID, dto.MarkedBy)
	if err != nil {
		h.Logger.Error("MarkEntry: service error", "error", err, "pass_id", passID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Entry marked successfully",
		"log":     log,
	})
}

// MarkExit handles PATCH /logs/{passId}/exit
func (h *Handler) MarkExit(w http.ResponseWriter, r *http.Request) {
	passID := chi.URLParam(r, "passId")

	log, err := h.Service.MarkExit(passID)
	if err != nil {
		h.Logger.Error("MarkExit: service error", "error", err, "pass_id", passID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Exit marked successfully",
		"log":     log,
	})
}

// List handles GET /logs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.ListRecent()
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, logs)
}
