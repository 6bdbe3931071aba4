package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/staffhub-ops/hr-backend-go/internal/config"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/leave"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/validator"
)

// Shifts longer than this raw span carry the fixed unpaid break when no
// explicit break pair was clocked. The same rule feeds overtime
// eligibility; do not change one side without the other.
const (
	autoBreakTriggerMinutes = 300
	autoBreakMinutes        = 60
)

type PayrollServiceImpl struct {
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	holidayRepo    schedule.HolidayRepository
	leaveRepo      leave.LeaveRepository
	payrollRepo    payroll.PayrollRepository
	bonusEvaluator payroll.BonusEvaluator
	norm           *timeutil.Normalizer
	business       config.BusinessConfig
}

func NewPayrollService(
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	holidayRepo schedule.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
	bonusEvaluator payroll.BonusEvaluator,
	norm *timeutil.Normalizer,
	business config.BusinessConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		bonusEvaluator: bonusEvaluator,
		norm:           norm,
		business:       business,
	}
}

func periodBounds(year, month int) (from, to string) {
	from = fmt.Sprintf("%04d-%02d-01", year, month)
	to = fmt.Sprintf("%04d-%02d-%02d", year, month, timeutil.DaysInMonth(year, month))
	return from, to
}

// Generate implements payroll.PayrollService. It computes rows without
// persisting anything; staff already holding a payslip for the period are
// excluded before computation.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	finalizedIDs, err := s.payrollRepo.ListFinalizedStaff(ctx, req.Year, req.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list finalized staff: %w", err)
	}
	finalized := make(map[string]bool, len(finalizedIDs))
	for _, id := range finalizedIDs {
		finalized[id] = true
	}

	var members []staff.Staff
	if len(req.StaffIDs) > 0 {
		for _, id := range req.StaffIDs {
			member, err := s.staffRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, staff.ErrStaffNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
			}
			members = append(members, member)
		}
	} else {
		members, err = s.staffRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active staff: %w", err)
		}
	}

	from, to := periodBounds(req.Year, req.Month)

	holidays, err := s.holidayRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date] = true
	}

	rows := make([]payroll.PayrollRow, 0, len(members))
	for _, member := range members {
		if finalized[member.ID] {
			continue
		}

		row, err := s.computeRow(ctx, member, req.Year, req.Month, from, to, holidaySet)
		if err != nil {
			if errors.Is(err, staff.ErrNoJobHistory) {
				continue
			}
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, payroll.ErrNoPayableStaff
	}
	return rows, nil
}

func (s *PayrollServiceImpl) computeRow(
	ctx context.Context,
	member staff.Staff,
	year, month int,
	from, to string,
	holidaySet map[string]bool,
) (payroll.PayrollRow, error) {
	history, err := s.staffRepo.GetJobHistory(ctx, member.ID)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to fetch job history for %s: %w", member.ID, err)
	}
	job, ok := staff.CurrentJob(history)
	if !ok {
		return payroll.PayrollRow{}, staff.ErrNoJobHistory
	}

	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, member.ID, from, to)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list attendance for %s: %w", member.ID, err)
	}
	attendanceByDate := make(map[string]attendance.AttendanceRecord, len(records))
	for _, r := range records {
		attendanceByDate[r.Date] = r
	}

	entries, err := s.scheduleRepo.ListByStaffAndRange(ctx, member.ID, from, to)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list schedule for %s: %w", member.ID, err)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, member.ID, from, to)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list approved leave for %s: %w", member.ID, err)
	}
	onLeave := func(date string) bool {
		for _, l := range leaves {
			if l.Covers(date) {
				return true
			}
		}
		return false
	}

	// Absence: a work-type schedule day with no attendance, no approved
	// leave covering it, and no declared public holiday. The bonus
	// evaluator sees this count for every pay type; only the salaried
	// proration reuses it as unpaid days.
	absences := 0
	lateness := 0
	for _, entry := range entries {
		if entry.Kind != schedule.KindWork {
			continue
		}
		record, present := attendanceByDate[entry.Date]
		if !present {
			if !onLeave(entry.Date) && !holidaySet[entry.Date] {
				absences++
			}
			continue
		}
		if record.CheckIn != nil && entry.StartTime != nil {
			scheduledStart := s.norm.Clock(entry.Date, *entry.StartTime)
			if scheduledStart != nil && record.CheckIn.After(*scheduledStart) {
				lateness++
			}
		}
	}

	basePay := decimal.Zero
	unpaidDeduction := decimal.Zero
	unpaidDays := absences
	daysInMonth := timeutil.DaysInMonth(year, month)

	switch job.PayType {
	case staff.PayTypeSalaried:
		basePay = job.BaseSalary
		dailyRate := job.BaseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
		unpaidDeduction = dailyRate.Mul(decimal.NewFromInt(int64(unpaidDays))).Round(2)
	case staff.PayTypeHourly:
		totalMinutes := 0
		for _, record := range records {
			if record.CheckIn == nil || record.CheckOut == nil {
				continue
			}
			raw := int(record.CheckOut.Sub(*record.CheckIn).Minutes())
			switch {
			case record.BreakStart != nil && record.BreakEnd != nil:
				raw -= int(record.BreakEnd.Sub(*record.BreakStart).Minutes())
			case raw > autoBreakTriggerMinutes:
				raw -= autoBreakMinutes
			}
			totalMinutes += raw
		}
		hours := decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60))
		basePay = hours.Mul(job.HourlyRate).Round(2)
		// Hourly staff are not prorated; a missed shift simply earns
		// nothing. The absence still counts against the bonus.
		unpaidDays = 0
	}

	streak, err := s.payrollRepo.GetStreak(ctx, member.ID)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to fetch bonus streak for %s: %w", member.ID, err)
	}
	bonusResult, err := s.bonusEvaluator.Evaluate(streak.Streak, absences, lateness)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("bonus evaluation failed for %s: %w", member.ID, err)
	}

	adjustments, err := s.payrollRepo.ListAdjustments(ctx, member.ID, year, month)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list adjustments for %s: %w", member.ID, err)
	}
	otherEarnings := decimal.Zero
	otherDeductions := decimal.Zero
	var earningsDetail, deductionsDetail []payroll.LineItem
	for _, adj := range adjustments {
		item := payroll.LineItem{Description: adj.Description, Amount: adj.Amount}
		if adj.Type == payroll.AdjustmentEarning {
			otherEarnings = otherEarnings.Add(adj.Amount)
			earningsDetail = append(earningsDetail, item)
		} else {
			otherDeductions = otherDeductions.Add(adj.Amount)
			deductionsDetail = append(deductionsDetail, item)
		}
	}

	// Statutory amount is itemized twice on purpose: once as a deduction
	// and once as an equal allowance. Net zero against take-home, but both
	// lines must appear.
	ssoBase := basePay.Add(otherEarnings)
	sso := s.business.SSORate.Mul(ssoBase).Round(2)
	if sso.GreaterThan(s.business.SSOCap) {
		sso = s.business.SSOCap
	}

	advances, err := s.payrollRepo.ListApprovedAdvances(ctx, member.ID, year, month)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list advances for %s: %w", member.ID, err)
	}
	advanceTotal := decimal.Zero
	for _, a := range advances {
		advanceTotal = advanceTotal.Add(a.Amount)
	}

	loans, err := s.payrollRepo.ListActiveLoans(ctx, member.ID)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to list loans for %s: %w", member.ID, err)
	}
	loanRepayment := decimal.Zero
	for _, l := range loans {
		loanRepayment = loanRepayment.Add(l.MonthlyRepayment)
	}

	totalEarnings := basePay.Add(bonusResult.Amount).Add(sso).Add(otherEarnings)
	totalDeductions := unpaidDeduction.Add(sso).Add(advanceTotal).Add(loanRepayment).Add(otherDeductions)
	netPay := totalEarnings.Sub(totalDeductions)

	return payroll.PayrollRow{
		StaffID:          member.ID,
		StaffName:        member.FullName,
		PayType:          string(job.PayType),
		BasePay:          basePay,
		UnpaidDays:       unpaidDays,
		UnpaidDeduction:  unpaidDeduction,
		AttendanceBonus:  bonusResult.Amount,
		BonusStreak:      bonusResult.Streak,
		SSOAllowance:     sso,
		SSODeduction:     sso,
		OtherEarnings:    otherEarnings,
		OtherDeductions:  otherDeductions,
		AdvanceTotal:     advanceTotal,
		LoanRepayment:    loanRepayment,
		EarningsDetail:   earningsDetail,
		DeductionsDetail: deductionsDetail,
		TotalEarnings:    totalEarnings,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
	}, nil
}

// Finalize implements payroll.PayrollService. One immutable payslip is
// written per selected row; staff already finalized for the period are
// skipped, never overwritten or duplicated. The streak value computed at
// generation time is committed alongside the payslip.
func (s *PayrollServiceImpl) Finalize(ctx context.Context, req payroll.FinalizePayrollRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, row := range req.Rows {
		payslip := payroll.Payslip{
			StaffID:          row.StaffID,
			Year:             req.Year,
			Month:            req.Month,
			PayType:          row.PayType,
			BasePay:          row.BasePay,
			UnpaidDays:       row.UnpaidDays,
			UnpaidDeduction:  row.UnpaidDeduction,
			AttendanceBonus:  row.AttendanceBonus,
			SSOAllowance:     row.SSOAllowance,
			SSODeduction:     row.SSODeduction,
			OtherEarnings:    row.OtherEarnings,
			OtherDeductions:  row.OtherDeductions,
			AdvanceTotal:     row.AdvanceTotal,
			LoanRepayment:    row.LoanRepayment,
			TotalEarnings:    row.TotalEarnings,
			TotalDeductions:  row.TotalDeductions,
			NetPay:           row.NetPay,
			EarningsDetail:   row.EarningsDetail,
			DeductionsDetail: row.DeductionsDetail,
		}

		if _, err := s.payrollRepo.CreatePayslip(ctx, payslip); err != nil {
			if errors.Is(err, payroll.ErrPayslipAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to finalize payslip for %s: %w", row.StaffID, err)
		}

		if err := s.payrollRepo.UpsertStreak(ctx, payroll.BonusStreak{
			StaffID: row.StaffID,
			Streak:  row.BonusStreak,
		}); err != nil {
			return fmt.Errorf("failed to update bonus streak for %s: %w", row.StaffID, err)
		}
	}

	return nil
}

// ListPayslips implements payroll.PayrollService. The period arrives as raw
// query parameters, so it is range-checked here rather than in a DTO.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, year, month int) ([]payroll.PayslipResponse, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	payslips, err := s.payrollRepo.ListPayslips(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, payroll.PayslipResponse{
			ID:               p.ID,
			StaffID:          p.StaffID,
			Year:             p.Year,
			Month:            p.Month,
			PayType:          p.PayType,
			BasePay:          p.BasePay,
			UnpaidDays:       p.UnpaidDays,
			UnpaidDeduction:  p.UnpaidDeduction,
			AttendanceBonus:  p.AttendanceBonus,
			SSOAllowance:     p.SSOAllowance,
			SSODeduction:     p.SSODeduction,
			OtherEarnings:    p.OtherEarnings,
			OtherDeductions:  p.OtherDeductions,
			AdvanceTotal:     p.AdvanceTotal,
			LoanRepayment:    p.LoanRepayment,
			TotalEarnings:    p.TotalEarnings,
			TotalDeductions:  p.TotalDeductions,
			NetPay:           p.NetPay,
			EarningsDetail:   p.EarningsDetail,
			DeductionsDetail: p.DeductionsDetail,
			GeneratedAt:      p.GeneratedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}

// CreateLoan implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateLoan(ctx context.Context, req payroll.CreateLoanRequest) (payroll.Loan, error) {
	if err := req.Validate(); err != nil {
		return payroll.Loan{}, err
	}

	return s.payrollRepo.CreateLoan(ctx, payroll.Loan{
		StaffID:          req.StaffID,
		Principal:        req.Principal,
		MonthlyRepayment: req.MonthlyRepayment,
		Active:           true,
		StartYear:        req.StartYear,
		StartMonth:       req.StartMonth,
		Note:             req.Note,
	})
}

// CloseLoan implements payroll.PayrollService.
func (s *PayrollServiceImpl) CloseLoan(ctx context.Context, id string) error {
	return s.payrollRepo.CloseLoan(ctx, id)
}

// CreateAdvance implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateAdvance(ctx context.Context, req payroll.CreateAdvanceRequest) (payroll.SalaryAdvance, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryAdvance{}, err
	}

	return s.payrollRepo.CreateAdvance(ctx, payroll.SalaryAdvance{
		StaffID: req.StaffID,
		Amount:  req.Amount,
		Year:    req.Year,
		Month:   req.Month,
		Status:  payroll.AdvancePending,
	})
}

// DecideAdvance implements payroll.PayrollService.
func (s *PayrollServiceImpl) DecideAdvance(ctx context.Context, id string, status payroll.AdvanceStatus) error {
	if status != payroll.AdvanceApproved && status != payroll.AdvanceRejected {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be approved or rejected",
		}}
	}
	return s.payrollRepo.DecideAdvance(ctx, id, status)
}

// CreateAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateAdjustment(ctx context.Context, req payroll.CreateAdjustmentRequest) (payroll.MonthlyAdjustment, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyAdjustment{}, err
	}

	return s.payrollRepo.CreateAdjustment(ctx, payroll.MonthlyAdjustment{
		StaffID:     req.StaffID,
		Year:        req.Year,
		Month:       req.Month,
		Type:        payroll.AdjustmentType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
	})
}

// DeleteAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteAdjustment(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteAdjustment(ctx, id)
}
