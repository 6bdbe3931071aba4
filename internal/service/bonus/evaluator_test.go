package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluator() *StreakEvaluator {
	return NewStreakEvaluator(1, 3,
		decimal.RequireFromString("500"),
		decimal.RequireFromString("100"),
		6,
	).(*StreakEvaluator)
}

func TestEvaluateCleanMonth(t *testing.T) {
	e := newEvaluator()

	result, err := e.Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("500")), "amount %s", result.Amount)
	assert.Equal(t, 1, result.Streak)

	result, err = e.Evaluate(3, 1, 3)
	require.NoError(t, err)
	// Allowances are inclusive: exactly at the limit still pays.
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("800")), "amount %s", result.Amount)
	assert.Equal(t, 4, result.Streak)
}

func TestEvaluateStepCap(t *testing.T) {
	e := newEvaluator()

	result, err := e.Evaluate(10, 0, 0)
	require.NoError(t, err)
	// Streaks keep growing but the payout plateaus at the cap.
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("1100")), "amount %s", result.Amount)
	assert.Equal(t, 11, result.Streak)
}

func TestEvaluateBreachResetsStreak(t *testing.T) {
	e := newEvaluator()

	for _, tc := range []struct {
		name               string
		absences, lateness int
	}{
		{"too many absences", 2, 0},
		{"too many late arrivals", 0, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, err := e.Evaluate(5, tc.absences, tc.lateness)
			require.NoError(t, err)
			assert.True(t, result.Amount.IsZero())
			assert.Equal(t, 0, result.Streak)
		})
	}
}
