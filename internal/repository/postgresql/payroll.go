package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payslipColumns = `
	id, staff_id, year, month, pay_type,
	base_pay, unpaid_days, unpaid_deduction, attendance_bonus,
	sso_allowance, sso_deduction, other_earnings, other_deductions,
	advance_total, loan_repayment, total_earnings, total_deductions, net_pay,
	earnings_detail, deductions_detail, generated_at
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.StaffID, &p.Year, &p.Month, &p.PayType,
		&p.BasePay, &p.UnpaidDays, &p.UnpaidDeduction, &p.AttendanceBonus,
		&p.SSOAllowance, &p.SSODeduction, &p.OtherEarnings, &p.OtherDeductions,
		&p.AdvanceTotal, &p.LoanRepayment, &p.TotalEarnings, &p.TotalDeductions, &p.NetPay,
		&p.EarningsDetail, &p.DeductionsDetail, &p.GeneratedAt,
	)
	return p, err
}

// CreatePayslip implements payroll.PayrollRepository. The unique constraint
// on (staff_id, year, month) is what makes payslips write-once.
func (r *payrollRepository) CreatePayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			staff_id, year, month, pay_type,
			base_pay, unpaid_days, unpaid_deduction, attendance_bonus,
			sso_allowance, sso_deduction, other_earnings, other_deductions,
			advance_total, loan_repayment, total_earnings, total_deductions, net_pay,
			earnings_detail, deductions_detail
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING id, generated_at
	`

	err := q.QueryRow(ctx, query,
		p.StaffID, p.Year, p.Month, p.PayType,
		p.BasePay, p.UnpaidDays, p.UnpaidDeduction, p.AttendanceBonus,
		p.SSOAllowance, p.SSODeduction, p.OtherEarnings, p.OtherDeductions,
		p.AdvanceTotal, p.LoanRepayment, p.TotalEarnings, p.TotalDeductions, p.NetPay,
		p.EarningsDetail, p.DeductionsDetail,
	).Scan(&p.ID, &p.GeneratedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}
	return p, nil
}

// GetPayslip implements payroll.PayrollRepository.
func (r *payrollRepository) GetPayslip(ctx context.Context, staffID string, year, month int) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE staff_id = $1 AND year = $2 AND month = $3`

	p, err := scanPayslip(q.QueryRow(ctx, query, staffID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

// ListPayslips implements payroll.PayrollRepository.
func (r *payrollRepository) ListPayslips(ctx context.Context, year, month int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE year = $1 AND month = $2 ORDER BY staff_id`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	return payslips, rows.Err()
}

// ListFinalizedStaff implements payroll.PayrollRepository.
func (r *payrollRepository) ListFinalizedStaff(ctx context.Context, year, month int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT staff_id FROM payslips WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list finalized staff: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan staff id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateLoan implements payroll.PayrollRepository.
func (r *payrollRepository) CreateLoan(ctx context.Context, loan payroll.Loan) (payroll.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (staff_id, principal, monthly_repayment, active, start_year, start_month, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loan.StaffID, loan.Principal, loan.MonthlyRepayment,
		loan.Active, loan.StartYear, loan.StartMonth, loan.Note,
	).Scan(&loan.ID, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		return payroll.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}
	return loan, nil
}

// ListActiveLoans implements payroll.PayrollRepository.
func (r *payrollRepository) ListActiveLoans(ctx context.Context, staffID string) ([]payroll.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, principal, monthly_repayment, active, start_year, start_month, note,
			   created_at, updated_at
		FROM loans
		WHERE staff_id = $1 AND active = TRUE
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active loans: %w", err)
	}
	defer rows.Close()

	var loans []payroll.Loan
	for rows.Next() {
		var loan payroll.Loan
		if err := rows.Scan(
			&loan.ID, &loan.StaffID, &loan.Principal, &loan.MonthlyRepayment,
			&loan.Active, &loan.StartYear, &loan.StartMonth, &loan.Note,
			&loan.CreatedAt, &loan.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// CloseLoan implements payroll.PayrollRepository.
func (r *payrollRepository) CloseLoan(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE loans SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to close loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrLoanNotFound
	}
	return nil
}

// CreateAdvance implements payroll.PayrollRepository.
func (r *payrollRepository) CreateAdvance(ctx context.Context, advance payroll.SalaryAdvance) (payroll.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (staff_id, amount, year, month, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		advance.StaffID, advance.Amount, advance.Year, advance.Month, advance.Status,
	).Scan(&advance.ID, &advance.CreatedAt, &advance.UpdatedAt)
	if err != nil {
		return payroll.SalaryAdvance{}, fmt.Errorf("failed to create salary advance: %w", err)
	}
	return advance, nil
}

// ListApprovedAdvances implements payroll.PayrollRepository.
func (r *payrollRepository) ListApprovedAdvances(ctx context.Context, staffID string, year, month int) ([]payroll.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, amount, year, month, status, created_at, updated_at
		FROM salary_advances
		WHERE staff_id = $1 AND year = $2 AND month = $3 AND status = 'approved'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, staffID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved advances: %w", err)
	}
	defer rows.Close()

	var advances []payroll.SalaryAdvance
	for rows.Next() {
		var advance payroll.SalaryAdvance
		if err := rows.Scan(
			&advance.ID, &advance.StaffID, &advance.Amount, &advance.Year,
			&advance.Month, &advance.Status, &advance.CreatedAt, &advance.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary advance: %w", err)
		}
		advances = append(advances, advance)
	}
	return advances, rows.Err()
}

// DecideAdvance implements payroll.PayrollRepository.
func (r *payrollRepository) DecideAdvance(ctx context.Context, id string, status payroll.AdvanceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salary_advances SET status = $2, updated_at = NOW() WHERE id = $1 AND status = 'pending'`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to decide salary advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrAdvanceNotFound
	}
	return nil
}

// CreateAdjustment implements payroll.PayrollRepository.
func (r *payrollRepository) CreateAdjustment(ctx context.Context, adjustment payroll.MonthlyAdjustment) (payroll.MonthlyAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_adjustments (staff_id, year, month, type, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adjustment.StaffID, adjustment.Year, adjustment.Month,
		adjustment.Type, adjustment.Amount, adjustment.Description,
	).Scan(&adjustment.ID, &adjustment.CreatedAt)
	if err != nil {
		return payroll.MonthlyAdjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}
	return adjustment, nil
}

// ListAdjustments implements payroll.PayrollRepository.
func (r *payrollRepository) ListAdjustments(ctx context.Context, staffID string, year, month int) ([]payroll.MonthlyAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, year, month, type, amount, description, created_at
		FROM monthly_adjustments
		WHERE staff_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, staffID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []payroll.MonthlyAdjustment
	for rows.Next() {
		var adjustment payroll.MonthlyAdjustment
		if err := rows.Scan(
			&adjustment.ID, &adjustment.StaffID, &adjustment.Year, &adjustment.Month,
			&adjustment.Type, &adjustment.Amount, &adjustment.Description, &adjustment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, adjustment)
	}
	return adjustments, rows.Err()
}

// DeleteAdjustment implements payroll.PayrollRepository.
func (r *payrollRepository) DeleteAdjustment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrAdjustmentNotFound
	}
	return nil
}

// GetStreak implements payroll.PayrollRepository. A missing row means a
// zero streak, not an error.
func (r *payrollRepository) GetStreak(ctx context.Context, staffID string) (payroll.BonusStreak, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT staff_id, streak, updated_at FROM bonus_streaks WHERE staff_id = $1`

	var streak payroll.BonusStreak
	err := q.QueryRow(ctx, query, staffID).Scan(&streak.StaffID, &streak.Streak, &streak.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.BonusStreak{StaffID: staffID}, nil
		}
		return payroll.BonusStreak{}, fmt.Errorf("failed to get bonus streak: %w", err)
	}
	return streak, nil
}

// UpsertStreak implements payroll.PayrollRepository.
func (r *payrollRepository) UpsertStreak(ctx context.Context, streak payroll.BonusStreak) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_streaks (staff_id, streak, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (staff_id) DO UPDATE SET streak = EXCLUDED.streak, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, streak.StaffID, streak.Streak); err != nil {
		return fmt.Errorf("failed to upsert bonus streak: %w", err)
	}
	return nil
}
