package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	StaffIDs []string `json:"staff_ids"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollRow is one computed (not yet persisted) payroll result. Finalize
// turns selected rows into immutable payslips.
type PayrollRow struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	PayType   string `json:"pay_type"`

	BasePay         decimal.Decimal `json:"base_pay"`
	UnpaidDays      int             `json:"unpaid_days"`
	UnpaidDeduction decimal.Decimal `json:"unpaid_deduction"`
	AttendanceBonus decimal.Decimal `json:"attendance_bonus"`
	BonusStreak     int             `json:"bonus_streak"`
	SSOAllowance    decimal.Decimal `json:"sso_allowance"`
	SSODeduction    decimal.Decimal `json:"sso_deduction"`
	OtherEarnings   decimal.Decimal `json:"other_earnings"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	AdvanceTotal    decimal.Decimal `json:"advance_total"`
	LoanRepayment   decimal.Decimal `json:"loan_repayment"`

	EarningsDetail   []LineItem `json:"earnings_detail"`
	DeductionsDetail []LineItem `json:"deductions_detail"`

	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

type FinalizePayrollRequest struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Rows  []PayrollRow `json:"rows"`
}

func (r *FinalizePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "at least one payroll row is required",
		})
	}
	for _, row := range r.Rows {
		if validator.IsEmpty(row.StaffID) {
			errs = append(errs, validator.ValidationError{
				Field:   "rows",
				Message: "every payroll row needs a staff_id",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLoanRequest struct {
	StaffID          string          `json:"staff_id"`
	Principal        decimal.Decimal `json:"principal"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
	StartYear        int             `json:"start_year"`
	StartMonth       int             `json:"start_month"`
	Note             *string         `json:"note"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if !r.Principal.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "principal",
			Message: "principal must be positive",
		})
	}
	if !r.MonthlyRepayment.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_repayment",
			Message: "monthly_repayment must be positive",
		})
	}
	if r.StartMonth < 1 || r.StartMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "start_month",
			Message: "start_month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAdvanceRequest struct {
	StaffID string          `json:"staff_id"`
	Amount  decimal.Decimal `json:"amount"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAdjustmentRequest struct {
	StaffID     string          `json:"staff_id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, []string{string(AdjustmentEarning), string(AdjustmentDeduction)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be earning or deduction",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID               string          `json:"id"`
	StaffID          string          `json:"staff_id"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	PayType          string          `json:"pay_type"`
	BasePay          decimal.Decimal `json:"base_pay"`
	UnpaidDays       int             `json:"unpaid_days"`
	UnpaidDeduction  decimal.Decimal `json:"unpaid_deduction"`
	AttendanceBonus  decimal.Decimal `json:"attendance_bonus"`
	SSOAllowance     decimal.Decimal `json:"sso_allowance"`
	SSODeduction     decimal.Decimal `json:"sso_deduction"`
	OtherEarnings    decimal.Decimal `json:"other_earnings"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	AdvanceTotal     decimal.Decimal `json:"advance_total"`
	LoanRepayment    decimal.Decimal `json:"loan_repayment"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
	EarningsDetail   []LineItem      `json:"earnings_detail"`
	DeductionsDetail []LineItem      `json:"deductions_detail"`
	GeneratedAt      string          `json:"generated_at"`
}
