package projection

import (
	"fmt"
	"math/big"
)

// DailyIncrement is what the pot grows by on every successful day
const DailyIncrement int64 = 10

// Projection holds the inputs and both projected outcomes
type Projection struct {
	Inputs
	RemainingDays int64
	FinalSuccess  *big.Int
	FinalFail     *big.Int
}

// Step is the pot on a single day under both models
type Step struct {
	Day       int64
	Remaining int64
	Success   *big.Int
	Fail      *big.Int
}

// Success returns pot + 10 * (totalDays - day)
func Success(pot, day, totalDays int64) *big.Int {
	return successAfter(pot, totalDays-day)
}

// Fail returns pot * 2^remainingDays
func Fail(pot, remainingDays int64) *big.Int {
	if pot == 0 {
		return new(big.Int)
	}
	if remainingDays <= 0 {
		return big.NewInt(pot)
	}

	return new(big.Int).Lsh(big.NewInt(pot), uint(remainingDays))
}

// Compute expects inputs that already passed validation
func Compute(in Inputs) Projection {
	remaining := in.RemainingDays()

	return Projection{
		Inputs:        in,
		RemainingDays: remaining,
		FinalSuccess:  Success(in.Pot, in.Day, in.TotalDays),
		FinalFail:     Fail(in.Pot, remaining),
	}
}

// MaxScheduleRows bounds how many days a single schedule may hold
const MaxScheduleRows = 10_000

// Schedule traces the pot from the current day to the last one.
// A limit <= 0 asks for every day, which fails past MaxScheduleRows.
func Schedule(in Inputs, limit int) ([]Step, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	days := in.RemainingDays() + 1
	if limit > 0 && int64(limit) < days {
		days = int64(limit)
	}
	if days > MaxScheduleRows {
		return nil, &ValidationError{Problems: []string{
			fmt.Sprintf("schedule would have %d rows, at most %d are allowed", days, MaxScheduleRows),
		}}
	}

	steps := make([]Step, 0, days)
	fail := big.NewInt(in.Pot)

	for i := int64(0); i < days; i++ {
		if i > 0 {
			fail = new(big.Int).Lsh(fail, 1)
		}
		steps = append(steps, Step{
			Day:       in.Day + i,
			Remaining: in.RemainingDays() - i,
			Success:   successAfter(in.Pot, i),
			Fail:      fail,
		})
	}

	return steps, nil
}

func successAfter(pot, days int64) *big.Int {
	growth := new(big.Int).Mul(big.NewInt(DailyIncrement), big.NewInt(days))
	return growth.Add(growth, big.NewInt(pot))
}
