package payroll

import "context"

type PayrollRepository interface {
	// Payslips. CreatePayslip inserts write-once; a second insert for the
	// same (staff_id, year, month) fails with ErrPayslipAlreadyExists.
	CreatePayslip(ctx context.Context, payslip Payslip) (Payslip, error)
	GetPayslip(ctx context.Context, staffID string, year, month int) (Payslip, error)
	ListPayslips(ctx context.Context, year, month int) ([]Payslip, error)
	// ListFinalizedStaff returns the staff ids already holding a payslip for
	// the period; generation excludes them upstream.
	ListFinalizedStaff(ctx context.Context, year, month int) ([]string, error)

	// Loans
	CreateLoan(ctx context.Context, loan Loan) (Loan, error)
	ListActiveLoans(ctx context.Context, staffID string) ([]Loan, error)
	CloseLoan(ctx context.Context, id string) error

	// Salary advances
	CreateAdvance(ctx context.Context, advance SalaryAdvance) (SalaryAdvance, error)
	ListApprovedAdvances(ctx context.Context, staffID string, year, month int) ([]SalaryAdvance, error)
	DecideAdvance(ctx context.Context, id string, status AdvanceStatus) error

	// Monthly adjustments
	CreateAdjustment(ctx context.Context, adjustment MonthlyAdjustment) (MonthlyAdjustment, error)
	ListAdjustments(ctx context.Context, staffID string, year, month int) ([]MonthlyAdjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error

	// Bonus streaks, upserted by the known staff_id key. GetStreak returns a
	// zero-value streak, not an error, for staff with no row yet.
	GetStreak(ctx context.Context, staffID string) (BonusStreak, error)
	UpsertStreak(ctx context.Context, streak BonusStreak) error
}

// BonusEvaluator is the external collaborator that turns a period's
// absence/lateness counts into a bonus amount and an updated streak.
type BonusEvaluator interface {
	Evaluate(streak, absences, lateness int) (BonusResult, error)
}

type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]PayrollRow, error)
	Finalize(ctx context.Context, req FinalizePayrollRequest) error
	ListPayslips(ctx context.Context, year, month int) ([]PayslipResponse, error)

	CreateLoan(ctx context.Context, req CreateLoanRequest) (Loan, error)
	CloseLoan(ctx context.Context, id string) error
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (SalaryAdvance, error)
	DecideAdvance(ctx context.Context, id string, status AdvanceStatus) error
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (MonthlyAdjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error
}
