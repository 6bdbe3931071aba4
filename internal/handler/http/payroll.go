package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
	"github.com/staffhub-ops/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	CreateLoan(w http.ResponseWriter, r *http.Request)
	CloseLoan(w http.ResponseWriter, r *http.Request)
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	DecideAdvance(w http.ResponseWriter, r *http.Request)
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func queryPeriod(r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rows, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Finalize implements PayrollHandler.
func (h *PayrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req payroll.FinalizePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Finalize decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.Finalize(r.Context(), req); err != nil {
		slog.Error("Finalize service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll finalized", nil)
}

// ListPayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	year, month, ok := queryPeriod(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	payslips, err := h.payrollService.ListPayslips(r.Context(), year, month)
	if err != nil {
		slog.Error("ListPayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// CreateLoan implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loan, err := h.payrollService.CreateLoan(r.Context(), req)
	if err != nil {
		slog.Error("CreateLoan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", loan)
}

// CloseLoan implements PayrollHandler.
func (h *PayrollHandlerImpl) CloseLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.CloseLoan(r.Context(), id); err != nil {
		slog.Error("CloseLoan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan closed", nil)
}

// CreateAdvance implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	advance, err := h.payrollService.CreateAdvance(r.Context(), req)
	if err != nil {
		slog.Error("CreateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary advance created", advance)
}

// DecideAdvance implements PayrollHandler.
func (h *PayrollHandlerImpl) DecideAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.DecideAdvance(r.Context(), id, payroll.AdvanceStatus(body.Status)); err != nil {
		slog.Error("DecideAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary advance decided", nil)
}

// CreateAdjustment implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adjustment, err := h.payrollService.CreateAdjustment(r.Context(), req)
	if err != nil {
		slog.Error("CreateAdjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created", adjustment)
}

// DeleteAdjustment implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteAdjustment(r.Context(), id); err != nil {
		slog.Error("DeleteAdjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}
