package gatepass

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campuskit/gatepass-management/internal/transport"
	"github.com/campuskit/gatepass-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateGatePass(dto CreateGatePassDTO) (*GatePass, error)
	ListByStudent(studentID int64) ([]*GatePass, error)
	ListByDepartment(department string) ([]*GatePass, error)
	GetByPassID(passID string) (*GatePass, error)
	Approve(passID, approvedBy, remarks string) (*GatePass, error)
	Reject(passID, approvedBy, remarks string) (*GatePass, error)
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

// Create handles POST /gatepasses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateGatePassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pass, err := h.Service.CreateGatePass(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err, "student_id", dto.StudentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Gate pass created successfully",
		"gatePass": pass,
	})
}

// GetByStudent handles GET /gatepasses/student/{studentId}
func (h *Handler) GetByStudent(w http.ResponseWriter, r *http.Request) {
	studentIDStr := chi.URLParam(r, "studentId")
	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetByStudent: invalid student ID", "id", studentIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid student ID")
		return
	}

	passes, err := h.Service.ListByStudent(studentID)
	if err != nil {
		h.Logger.Error("GetByStudent: service error", "error", err, "student_id", studentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, passes)
}

// GetByDepartment handles GET /gatepasses/department/{department}
func (h *Handler) GetByDepartment(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "department")

	passes, err := h.Service.ListByDepartment(department)
	if err != nil {
		h.Logger.Error("GetByDepartment: service error", "error", err, "department", department)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, passes)
}

// GetOne handles GET /gatepasses/{passId}
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	passID := chi.URLParam(r, "passId")

	pass, err := h.Service.GetByPassID(passID)
	if err != nil {
		h.Logger.Warn("GetOne: service error", "error", err, "pass_id", passID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, pass)
}

// Approve handles PATCH /gatepasses/{passId}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	passID := chi.URLParam(r, "passId")

	var dto DecisionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Approve: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pass, err := h.Service.Approve(passID, dto.ApprovedBy, dto.HodRemarks)
	if err != nil {
		h.Logger.Error("Approve: service error", "error", err, "pass_id", passID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Gate pass approved",
		"gatePass": pass,
	})
}

// Reject handles PATCH /gatepasses/{passId}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	passID := chi.URLParam(r, "passId")

	var dto DecisionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Reject: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pass, err := h.Service.Reject(passID, dto.ApprovedBy, dto.HodRemarks)
	if err != nil {
		h.Logger.Error("Reject: service error", "error", err, "pass_id", passID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Gate pass rejected",
		"gatePass": pass,
	})
}
