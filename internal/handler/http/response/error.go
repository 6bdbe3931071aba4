package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/auth"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/leave"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/user"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffInactive):
		Conflict(w, "Staff member is inactive")
	case errors.Is(err, staff.ErrNoJobHistory):
		BadRequest(w, "Staff member has no job history", nil)

	// Attendance import errors: structural defects in the uploaded file are
	// the caller's problem, not the server's.
	case errors.Is(err, attendance.ErrEmptyInput):
		BadRequest(w, "The uploaded file contains no data rows", nil)
	case errors.Is(err, attendance.ErrMissingRequiredColumns):
		BadRequest(w, "The uploaded file is missing required columns", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Overtime decision already recorded for this attendance record")
	case errors.Is(err, attendance.ErrNotProcessed):
		Conflict(w, "No overtime decision recorded for this attendance record")
	case errors.Is(err, attendance.ErrMissingCheckOut):
		BadRequest(w, "Attendance record has no check-out time", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule entry not found")
	case errors.Is(err, schedule.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this staff member and period")
	case errors.Is(err, payroll.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, payroll.ErrAdvanceNotFound):
		NotFound(w, "Salary advance not found")
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Monthly adjustment not found")
	case errors.Is(err, payroll.ErrNoPayableStaff):
		NotFound(w, "No staff left to generate payroll for in this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
