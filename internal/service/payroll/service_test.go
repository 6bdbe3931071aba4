package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-ops/hr-backend-go/internal/config"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/leave"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-ops/hr-backend-go/internal/service/bonus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	members map[string]staff.Staff
	history map[string][]staff.JobHistoryEntry
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	member, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) GetJobHistory(_ context.Context, staffID string) ([]staff.JobHistoryEntry, error) {
	return f.history[staffID], nil
}

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) GetByID(context.Context, string) (attendance.AttendanceRecord, error) {
	return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(context.Context, string, string) (*attendance.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	return r, nil
}

func (f *fakeAttendanceRepo) UpdateTimes(context.Context, string, attendance.TimePatch) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByStaffAndRange(_ context.Context, staffID, from, to string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, r := range f.records {
		if r.StaffID == staffID && from <= r.Date && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListPendingWithCheckOut(context.Context, attendance.CandidateFilter) ([]attendance.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Decide(context.Context, string, attendance.OvertimeStatus, int) error {
	return nil
}

func (f *fakeAttendanceRepo) RevertDecision(context.Context, string) error {
	return nil
}

type fakeScheduleRepo struct {
	entries []schedule.ScheduleEntry
}

func (f *fakeScheduleRepo) GetByStaffAndDate(_ context.Context, staffID, date string) (*schedule.ScheduleEntry, error) {
	for i := range f.entries {
		if f.entries[i].StaffID == staffID && f.entries[i].Date == date {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) ListByStaffAndRange(_ context.Context, staffID, from, to string) ([]schedule.ScheduleEntry, error) {
	var out []schedule.ScheduleEntry
	for _, e := range f.entries {
		if e.StaffID == staffID && from <= e.Date && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, e schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	return e, nil
}

func (f *fakeScheduleRepo) DeleteCascade(context.Context, string, string) error {
	return nil
}

type fakeHolidayRepo struct {
	holidays []schedule.PublicHoliday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h schedule.PublicHoliday) (schedule.PublicHoliday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) Delete(context.Context, string) error { return nil }

func (f *fakeHolidayRepo) ListByRange(_ context.Context, from, to string) ([]schedule.PublicHoliday, error) {
	var out []schedule.PublicHoliday
	for _, h := range f.holidays {
		if from <= h.Date && h.Date <= to {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (f *fakeLeaveRepo) GetByID(context.Context, string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListByStaffAndRange(context.Context, string, string, string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, staffID, from, to string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.StaffID == staffID && r.Status == leave.StatusApproved && r.StartDate <= to && from <= r.EndDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(context.Context, string, leave.Status, string) error {
	return nil
}

type payslipKey struct {
	staffID     string
	year, month int
}

type fakePayrollRepo struct {
	payslips    map[payslipKey]payroll.Payslip
	loans       []payroll.Loan
	advances    []payroll.SalaryAdvance
	adjustments []payroll.MonthlyAdjustment
	streaks     map[string]payroll.BonusStreak
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		payslips: make(map[payslipKey]payroll.Payslip),
		streaks:  make(map[string]payroll.BonusStreak),
	}
}

func (f *fakePayrollRepo) CreatePayslip(_ context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	key := payslipKey{p.StaffID, p.Year, p.Month}
	if _, exists := f.payslips[key]; exists {
		return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
	}
	p.ID = "ps-" + p.StaffID
	p.GeneratedAt = time.Now()
	f.payslips[key] = p
	return p, nil
}

func (f *fakePayrollRepo) GetPayslip(_ context.Context, staffID string, year, month int) (payroll.Payslip, error) {
	p, ok := f.payslips[payslipKey{staffID, year, month}]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListPayslips(_ context.Context, year, month int) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for key, p := range f.payslips {
		if key.year == year && key.month == month {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListFinalizedStaff(_ context.Context, year, month int) ([]string, error) {
	var out []string
	for key := range f.payslips {
		if key.year == year && key.month == month {
			out = append(out, key.staffID)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) CreateLoan(_ context.Context, l payroll.Loan) (payroll.Loan, error) {
	l.ID = "loan-1"
	f.loans = append(f.loans, l)
	return l, nil
}

func (f *fakePayrollRepo) ListActiveLoans(_ context.Context, staffID string) ([]payroll.Loan, error) {
	var out []payroll.Loan
	for _, l := range f.loans {
		if l.StaffID == staffID && l.Active {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) CloseLoan(_ context.Context, id string) error {
	for i := range f.loans {
		if f.loans[i].ID == id {
			f.loans[i].Active = false
			return nil
		}
	}
	return payroll.ErrLoanNotFound
}

func (f *fakePayrollRepo) CreateAdvance(_ context.Context, a payroll.SalaryAdvance) (payroll.SalaryAdvance, error) {
	a.ID = "adv-1"
	f.advances = append(f.advances, a)
	return a, nil
}

func (f *fakePayrollRepo) ListApprovedAdvances(_ context.Context, staffID string, year, month int) ([]payroll.SalaryAdvance, error) {
	var out []payroll.SalaryAdvance
	for _, a := range f.advances {
		if a.StaffID == staffID && a.Year == year && a.Month == month && a.Status == payroll.AdvanceApproved {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) DecideAdvance(_ context.Context, id string, status payroll.AdvanceStatus) error {
	for i := range f.advances {
		if f.advances[i].ID == id {
			f.advances[i].Status = status
			return nil
		}
	}
	return payroll.ErrAdvanceNotFound
}

func (f *fakePayrollRepo) CreateAdjustment(_ context.Context, a payroll.MonthlyAdjustment) (payroll.MonthlyAdjustment, error) {
	a.ID = "adj-1"
	f.adjustments = append(f.adjustments, a)
	return a, nil
}

func (f *fakePayrollRepo) ListAdjustments(_ context.Context, staffID string, year, month int) ([]payroll.MonthlyAdjustment, error) {
	var out []payroll.MonthlyAdjustment
	for _, a := range f.adjustments {
		if a.StaffID == staffID && a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) DeleteAdjustment(_ context.Context, id string) error {
	for i := range f.adjustments {
		if f.adjustments[i].ID == id {
			f.adjustments = append(f.adjustments[:i], f.adjustments[i+1:]...)
			return nil
		}
	}
	return payroll.ErrAdjustmentNotFound
}

func (f *fakePayrollRepo) GetStreak(_ context.Context, staffID string) (payroll.BonusStreak, error) {
	return f.streaks[staffID], nil
}

func (f *fakePayrollRepo) UpsertStreak(_ context.Context, s payroll.BonusStreak) error {
	f.streaks[s.StaffID] = s
	return nil
}

func testBusinessConfig() config.BusinessConfig {
	return config.BusinessConfig{
		Timezone:                 "Asia/Bangkok",
		OvertimeThresholdMinutes: 15,
		SSORate:                  decimal.RequireFromString("0.05"),
		SSOCap:                   decimal.RequireFromString("750"),
		AbsenceAllowance:         1,
		LatenessAllowance:        3,
		BonusBase:                decimal.RequireFromString("500"),
		BonusStep:                decimal.RequireFromString("100"),
		BonusStepCap:             6,
	}
}

type payrollFixture struct {
	staffRepo      *fakeStaffRepo
	attendanceRepo *fakeAttendanceRepo
	scheduleRepo   *fakeScheduleRepo
	holidayRepo    *fakeHolidayRepo
	leaveRepo      *fakeLeaveRepo
	payrollRepo    *fakePayrollRepo
	service        payroll.PayrollService
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()

	business := testBusinessConfig()
	norm, err := timeutil.NewNormalizer(business.Timezone)
	require.NoError(t, err)

	f := &payrollFixture{
		staffRepo:      &fakeStaffRepo{members: map[string]staff.Staff{}, history: map[string][]staff.JobHistoryEntry{}},
		attendanceRepo: &fakeAttendanceRepo{},
		scheduleRepo:   &fakeScheduleRepo{},
		holidayRepo:    &fakeHolidayRepo{},
		leaveRepo:      &fakeLeaveRepo{},
		payrollRepo:    newFakePayrollRepo(),
	}
	evaluator := bonus.NewStreakEvaluator(
		business.AbsenceAllowance, business.LatenessAllowance,
		business.BonusBase, business.BonusStep, business.BonusStepCap,
	)
	f.service = NewPayrollService(
		f.staffRepo, f.attendanceRepo, f.scheduleRepo, f.holidayRepo,
		f.leaveRepo, f.payrollRepo, evaluator, norm, business,
	)
	return f
}

func (f *payrollFixture) addSalaried(id, name string, salary string) {
	f.staffRepo.members[id] = staff.Staff{ID: id, FullName: name, IsActive: true}
	f.staffRepo.history[id] = []staff.JobHistoryEntry{{
		StaffID:    id,
		PayType:    staff.PayTypeSalaried,
		BaseSalary: decimal.RequireFromString(salary),
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (f *payrollFixture) addHourly(id, name string, rate string) {
	f.staffRepo.members[id] = staff.Staff{ID: id, FullName: name, IsActive: true}
	f.staffRepo.history[id] = []staff.JobHistoryEntry{{
		StaffID:    id,
		PayType:    staff.PayTypeHourly,
		HourlyRate: decimal.RequireFromString(rate),
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (f *payrollFixture) addWorkDay(staffID, date string) {
	start, end := "09:00", "18:00"
	f.scheduleRepo.entries = append(f.scheduleRepo.entries, schedule.ScheduleEntry{
		StaffID:   staffID,
		Date:      date,
		Kind:      schedule.KindWork,
		StartTime: &start,
		EndTime:   &end,
	})
}

func utcTime(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	parsed = parsed.UTC()
	return &parsed
}

func TestGenerateSalariedUnpaidDayProration(t *testing.T) {
	f := newPayrollFixture(t)
	f.addSalaried("s1", "Ploy", "30000")

	// September has 30 days; three scheduled work days with no attendance,
	// no leave and no holiday become unpaid days.
	for _, date := range []string{"2025-09-01", "2025-09-02", "2025-09-03"} {
		f.addWorkDay("s1", date)
	}

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "s1", row.StaffID)
	assert.True(t, row.BasePay.Equal(decimal.RequireFromString("30000")), "base pay %s", row.BasePay)
	assert.Equal(t, 3, row.UnpaidDays)
	assert.True(t, row.UnpaidDeduction.Equal(decimal.RequireFromString("3000")), "unpaid deduction %s", row.UnpaidDeduction)

	// Three absences exceed the allowance of one, so no bonus and the
	// streak resets.
	assert.True(t, row.AttendanceBonus.IsZero())
	assert.Equal(t, 0, row.BonusStreak)
}

func TestGenerateAbsenceExcusedByLeaveAndHoliday(t *testing.T) {
	f := newPayrollFixture(t)
	f.addSalaried("s1", "Ploy", "30000")

	f.addWorkDay("s1", "2025-09-01")
	f.addWorkDay("s1", "2025-09-02")
	f.leaveRepo.requests = append(f.leaveRepo.requests, leave.LeaveRequest{
		StaffID:   "s1",
		StartDate: "2025-09-01",
		EndDate:   "2025-09-01",
		Status:    leave.StatusApproved,
	})
	f.holidayRepo.holidays = append(f.holidayRepo.holidays, schedule.PublicHoliday{
		Date: "2025-09-02", Name: "Founding Day",
	})

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 0, rows[0].UnpaidDays)
	assert.True(t, rows[0].UnpaidDeduction.IsZero())
	// A clean month pays the base bonus and starts a streak.
	assert.True(t, rows[0].AttendanceBonus.Equal(decimal.RequireFromString("500")), "bonus %s", rows[0].AttendanceBonus)
	assert.Equal(t, 1, rows[0].BonusStreak)
}

func TestGenerateSSOCappedAndItemizedBothSides(t *testing.T) {
	f := newPayrollFixture(t)
	// 5% of 30000 is 1500, above the 750 cap.
	f.addSalaried("s1", "Ploy", "30000")

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	cap := decimal.RequireFromString("750")
	assert.True(t, row.SSODeduction.Equal(cap), "sso deduction %s", row.SSODeduction)
	assert.True(t, row.SSOAllowance.Equal(cap), "sso allowance %s", row.SSOAllowance)

	// The cap applies to each side independently; earnings and deductions
	// each carry exactly 750, and the pair cancels out of net pay.
	expectedNet := row.BasePay.Add(row.AttendanceBonus)
	assert.True(t, row.NetPay.Equal(expectedNet), "net pay %s", row.NetPay)
}

func TestGenerateHourlyWithAutoBreak(t *testing.T) {
	f := newPayrollFixture(t)
	f.addHourly("h1", "Mek", "150")

	// Nine raw hours with no clocked break: the five hour trigger applies
	// the fixed sixty minute deduction, leaving eight payable hours.
	f.attendanceRepo.records = append(f.attendanceRepo.records, attendance.AttendanceRecord{
		ID:       "a1",
		StaffID:  "h1",
		Date:     "2025-09-01",
		CheckIn:  utcTime(t, "2025-09-01 02:00"),
		CheckOut: utcTime(t, "2025-09-01 11:00"),
	})

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].BasePay.Equal(decimal.RequireFromString("1200")), "base pay %s", rows[0].BasePay)
	assert.Equal(t, 0, rows[0].UnpaidDays)
}

func TestGenerateHourlyAbsencesBreakStreak(t *testing.T) {
	f := newPayrollFixture(t)
	f.addHourly("h1", "Mek", "150")
	f.payrollRepo.streaks["h1"] = payroll.BonusStreak{StaffID: "h1", Streak: 4}

	// Three scheduled shifts, none attended. Hourly staff are never
	// prorated, but the missed shifts still count against the bonus.
	for _, date := range []string{"2025-09-01", "2025-09-02", "2025-09-03"} {
		f.addWorkDay("h1", date)
	}

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.BasePay.IsZero(), "base pay %s", row.BasePay)
	assert.Equal(t, 0, row.UnpaidDays)
	assert.True(t, row.UnpaidDeduction.IsZero())
	assert.True(t, row.AttendanceBonus.IsZero(), "bonus %s", row.AttendanceBonus)
	assert.Equal(t, 0, row.BonusStreak)
}

func TestGenerateAppliesAdjustmentsAdvancesAndLoans(t *testing.T) {
	f := newPayrollFixture(t)
	f.addSalaried("s1", "Ploy", "10000")

	f.payrollRepo.adjustments = append(f.payrollRepo.adjustments,
		payroll.MonthlyAdjustment{StaffID: "s1", Year: 2025, Month: 9, Type: payroll.AdjustmentEarning, Amount: decimal.RequireFromString("1000"), Description: "night shift premium"},
		payroll.MonthlyAdjustment{StaffID: "s1", Year: 2025, Month: 9, Type: payroll.AdjustmentDeduction, Amount: decimal.RequireFromString("200"), Description: "uniform"},
	)
	f.payrollRepo.advances = append(f.payrollRepo.advances,
		payroll.SalaryAdvance{ID: "adv-ok", StaffID: "s1", Year: 2025, Month: 9, Amount: decimal.RequireFromString("2000"), Status: payroll.AdvanceApproved},
		payroll.SalaryAdvance{ID: "adv-no", StaffID: "s1", Year: 2025, Month: 9, Amount: decimal.RequireFromString("9999"), Status: payroll.AdvancePending},
	)
	f.payrollRepo.loans = append(f.payrollRepo.loans,
		payroll.Loan{ID: "l1", StaffID: "s1", MonthlyRepayment: decimal.RequireFromString("500"), Active: true},
		payroll.Loan{ID: "l2", StaffID: "s1", MonthlyRepayment: decimal.RequireFromString("400"), Active: false},
	)

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.OtherEarnings.Equal(decimal.RequireFromString("1000")))
	assert.True(t, row.OtherDeductions.Equal(decimal.RequireFromString("200")))
	assert.True(t, row.AdvanceTotal.Equal(decimal.RequireFromString("2000")))
	assert.True(t, row.LoanRepayment.Equal(decimal.RequireFromString("500")))
	require.Len(t, row.EarningsDetail, 1)
	assert.Equal(t, "night shift premium", row.EarningsDetail[0].Description)
	require.Len(t, row.DeductionsDetail, 1)

	// The statutory base includes adjustment earnings: 5% of 11000 = 550.
	assert.True(t, row.SSODeduction.Equal(decimal.RequireFromString("550")), "sso %s", row.SSODeduction)

	expectedEarnings := decimal.RequireFromString("10000").
		Add(row.AttendanceBonus).
		Add(decimal.RequireFromString("550")).
		Add(decimal.RequireFromString("1000"))
	expectedDeductions := decimal.RequireFromString("550").
		Add(decimal.RequireFromString("2000")).
		Add(decimal.RequireFromString("500")).
		Add(decimal.RequireFromString("200"))
	assert.True(t, row.TotalEarnings.Equal(expectedEarnings), "total earnings %s", row.TotalEarnings)
	assert.True(t, row.TotalDeductions.Equal(expectedDeductions), "total deductions %s", row.TotalDeductions)
	assert.True(t, row.NetPay.Equal(expectedEarnings.Sub(expectedDeductions)))
}

func TestFinalizeWritesOnceAndCommitsStreak(t *testing.T) {
	f := newPayrollFixture(t)
	f.addSalaried("s1", "Ploy", "10000")

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	err = f.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{Year: 2025, Month: 9, Rows: rows})
	require.NoError(t, err)

	slip, err := f.payrollRepo.GetPayslip(context.Background(), "s1", 2025, 9)
	require.NoError(t, err)
	assert.True(t, slip.NetPay.Equal(rows[0].NetPay))
	assert.Equal(t, rows[0].BonusStreak, f.payrollRepo.streaks["s1"].Streak)

	// Finalizing again must not duplicate or overwrite.
	err = f.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{Year: 2025, Month: 9, Rows: rows})
	require.NoError(t, err)

	// And the staff member disappears from subsequent generation runs for
	// the same period, leaving nobody to pay.
	_, err = f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	assert.ErrorIs(t, err, payroll.ErrNoPayableStaff)
}

func TestGenerateSkipsStaffWithoutJobHistory(t *testing.T) {
	f := newPayrollFixture(t)
	f.staffRepo.members["ghost"] = staff.Staff{ID: "ghost", FullName: "No Job", IsActive: true}
	f.addSalaried("s1", "Ploy", "10000")

	rows, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].StaffID)
}

func TestGenerateRejectsInvalidPeriod(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.Generate(context.Background(), payroll.GeneratePayrollRequest{Year: 2025, Month: 13})
	assert.Error(t, err)

	_, err = f.service.ListPayslips(context.Background(), 2025, 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
