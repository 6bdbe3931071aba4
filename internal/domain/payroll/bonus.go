package payroll

import "github.com/shopspring/decimal"

// BonusResult is what the streak evaluator hands back: the amount to pay
// this period and the streak value to persist.
type BonusResult struct {
	Amount decimal.Decimal
	Streak int
}
