package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a staff loan repaid in fixed monthly installments while active.
type Loan struct {
	ID               string
	StaffID          string
	Principal        decimal.Decimal
	MonthlyRepayment decimal.Decimal
	Active           bool
	StartYear        int
	StartMonth       int
	Note             *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type AdvanceStatus string

const (
	AdvancePending  AdvanceStatus = "pending"
	AdvanceApproved AdvanceStatus = "approved"
	AdvanceRejected AdvanceStatus = "rejected"
)

// SalaryAdvance is a one-off pre-payment deducted from the period it was
// approved for.
type SalaryAdvance struct {
	ID        string
	StaffID   string
	Amount    decimal.Decimal
	Year      int
	Month     int
	Status    AdvanceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AdjustmentType string

const (
	AdjustmentEarning   AdjustmentType = "earning"
	AdjustmentDeduction AdjustmentType = "deduction"
)

// MonthlyAdjustment is an ad-hoc itemized earning or deduction for one
// staff member and period.
type MonthlyAdjustment struct {
	ID          string
	StaffID     string
	Year        int
	Month       int
	Type        AdjustmentType
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// BonusStreak tracks consecutive clean months per staff member.
type BonusStreak struct {
	StaffID   string
	Streak    int
	UpdatedAt time.Time
}

// Payslip is the immutable finalized result for one staff member and pay
// period. Write-once: once a payslip exists for (StaffID, Year, Month) that
// staff member is permanently excluded from regeneration for the period.
// GeneratedAt is assigned by the record store at commit time.
type Payslip struct {
	ID      string
	StaffID string
	Year    int
	Month   int

	PayType          string
	BasePay          decimal.Decimal
	UnpaidDays       int
	UnpaidDeduction  decimal.Decimal
	AttendanceBonus  decimal.Decimal
	SSOAllowance     decimal.Decimal
	SSODeduction     decimal.Decimal
	OtherEarnings    decimal.Decimal
	OtherDeductions  decimal.Decimal
	AdvanceTotal     decimal.Decimal
	LoanRepayment    decimal.Decimal
	TotalEarnings    decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal
	EarningsDetail   []LineItem
	DeductionsDetail []LineItem

	GeneratedAt time.Time
}

// LineItem keeps an adjustment's description for payslip itemization.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
