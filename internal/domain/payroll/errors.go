package payroll

import "errors"

var (
	ErrInvalidPeriod        = errors.New("invalid pay period")
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this staff member and period")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrAdvanceNotFound      = errors.New("salary advance not found")
	ErrAdjustmentNotFound   = errors.New("monthly adjustment not found")
	ErrNoPayableStaff       = errors.New("no staff left to generate payroll for in this period")
)
