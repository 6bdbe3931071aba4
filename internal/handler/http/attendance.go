package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/handler/http/response"
	attendanceservice "github.com/staffhub-ops/hr-backend-go/internal/service/attendance"
)

const maxImportSize = 10 << 20 // 10 MiB

type AttendanceHandler interface {
	Analyze(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Candidates(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	RejectOvertime(w http.ResponseWriter, r *http.Request)
	RevertOvertime(w http.ResponseWriter, r *http.Request)
	BulkDecide(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	importService   attendance.ImportService
	overtimeService attendance.OvertimeService
}

func NewAttendanceHandler(importService attendance.ImportService, overtimeService attendance.OvertimeService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		importService:   importService,
		overtimeService: overtimeService,
	}
}

// readTabular extracts the tabular text from the request. Multipart uploads
// carry a "file" part (CSV or XLSX); XLSX is converted so analyze and apply
// always operate on identical text. A plain body is taken as CSV verbatim.
func readTabular(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			return "", err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", err
		}
		defer file.Close()

		if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			return attendanceservice.XLSXToCSV(file)
		}

		data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Analyze implements AttendanceHandler. Read-only: classification never
// touches the record store.
func (h *AttendanceHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	text, err := readTabular(r)
	if err != nil {
		slog.Error("Analyze read error", "error", err)
		response.BadRequest(w, "Could not read uploaded file", nil)
		return
	}

	result, err := h.importService.Analyze(r.Context(), text)
	if err != nil {
		slog.Error("Analyze service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Apply implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	text, err := readTabular(r)
	if err != nil {
		slog.Error("Apply read error", "error", err)
		response.BadRequest(w, "Could not read uploaded file", nil)
		return
	}

	result, err := h.importService.Apply(r.Context(), text)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Summary, result)
}

// Candidates implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Candidates(w http.ResponseWriter, r *http.Request) {
	filter := attendance.CandidateFilter{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		StaffID: r.URL.Query().Get("staff_id"),
	}

	candidates, err := h.overtimeService.Candidates(r.Context(), filter)
	if err != nil {
		slog.Error("Candidates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidates)
}

// ApproveOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.ApproveOvertimeRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := h.overtimeService.Approve(r.Context(), id, req); err != nil {
		slog.Error("ApproveOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", nil)
}

// RejectOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.overtimeService.Reject(r.Context(), id); err != nil {
		slog.Error("RejectOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected", nil)
}

// RevertOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RevertOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.overtimeService.Revert(r.Context(), id); err != nil {
		slog.Error("RevertOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime decision reverted", nil)
}

// BulkDecide implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BulkDecide(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkDecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Decision != attendance.BulkApprove && req.Decision != attendance.BulkReject {
		response.BadRequest(w, "Decision must be approve or reject", nil)
		return
	}

	result, err := h.overtimeService.BulkDecide(r.Context(), req)
	if err != nil {
		slog.Error("BulkDecide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
