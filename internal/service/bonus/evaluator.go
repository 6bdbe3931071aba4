package bonus

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/payroll"
)

// StreakEvaluator pays a graduated attendance bonus: a clean month earns
// base + step * streak (steps capped), and extends the streak by one.
// Exceeding either allowance pays nothing and resets the streak.
type StreakEvaluator struct {
	absenceAllowance  int
	latenessAllowance int
	base              decimal.Decimal
	step              decimal.Decimal
	stepCap           int
}

func NewStreakEvaluator(absenceAllowance, latenessAllowance int, base, step decimal.Decimal, stepCap int) payroll.BonusEvaluator {
	return &StreakEvaluator{
		absenceAllowance:  absenceAllowance,
		latenessAllowance: latenessAllowance,
		base:              base,
		step:              step,
		stepCap:           stepCap,
	}
}

// Evaluate implements payroll.BonusEvaluator.
func (e *StreakEvaluator) Evaluate(streak, absences, lateness int) (payroll.BonusResult, error) {
	if absences > e.absenceAllowance || lateness > e.latenessAllowance {
		return payroll.BonusResult{Amount: decimal.Zero, Streak: 0}, nil
	}

	steps := streak
	if steps > e.stepCap {
		steps = e.stepCap
	}
	amount := e.base.Add(e.step.Mul(decimal.NewFromInt(int64(steps))))

	return payroll.BonusResult{Amount: amount, Streak: streak + 1}, nil
}
