package projection

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	assert.Equal(t, "102400", Fail(100, 10).String())
	assert.Equal(t, "0", Fail(0, 0).String())
	assert.Equal(t, "0", Fail(0, 10_000).String())
	assert.Equal(t, "42", Fail(42, 0).String())

	// Well past 64 bits
	want := new(big.Int).Mul(big.NewInt(100), new(big.Int).Exp(big.NewInt(2), big.NewInt(200), nil))
	assert.Equal(t, 0, want.Cmp(Fail(100, 200)))
}

func TestSuccess(t *testing.T) {
	assert.Equal(t, "150", Success(50, 10, 20).String())
	assert.Equal(t, "50", Success(50, 20, 20).String())
	assert.Equal(t, "3650", Success(0, 0, 365).String())
}

func TestCompute(t *testing.T) {
	p := Compute(Inputs{Day: 10, Pot: 500, TotalDays: 365})

	assert.Equal(t, int64(355), p.RemainingDays)
	assert.Equal(t, "4050", p.FinalSuccess.String())

	want := new(big.Int).Lsh(big.NewInt(500), 355)
	assert.Equal(t, want.String(), p.FinalFail.String())
}

func TestSchedule(t *testing.T) {
	in := Inputs{Day: 2, Pot: 100, TotalDays: 5}

	t.Run("Every day", func(t *testing.T) {
		steps, err := Schedule(in, 0)
		require.NoError(t, err)
		require.Len(t, steps, 4)

		first := steps[0]
		assert.Equal(t, int64(2), first.Day)
		assert.Equal(t, int64(3), first.Remaining)
		assert.Equal(t, "100", first.Success.String())
		assert.Equal(t, "100", first.Fail.String())

		assert.Equal(t, "200", steps[1].Fail.String())
		assert.Equal(t, "110", steps[1].Success.String())

		p := Compute(in)
		last := steps[len(steps)-1]
		assert.Equal(t, int64(5), last.Day)
		assert.Zero(t, last.Remaining)
		assert.Equal(t, p.FinalSuccess.String(), last.Success.String())
		assert.Equal(t, p.FinalFail.String(), last.Fail.String())
	})

	t.Run("Limited", func(t *testing.T) {
		steps, err := Schedule(in, 2)
		require.NoError(t, err)
		assert.Len(t, steps, 2)

		steps, err = Schedule(in, 50)
		require.NoError(t, err)
		assert.Len(t, steps, 4)
	})

	t.Run("Final day only", func(t *testing.T) {
		steps, err := Schedule(Inputs{Day: 5, Pot: 7, TotalDays: 5}, 0)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "7", steps[0].Fail.String())
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		_, err := Schedule(Inputs{Day: 6, Pot: 7, TotalDays: 5}, 0)
		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestScheduleRowCap(t *testing.T) {
	in, err := ParseArgs([]string{"0", "0", "1000000000000"})
	require.NoError(t, err)
	assert.Equal(t, "0", Compute(in).FinalFail.String())

	t.Run("Every day is refused", func(t *testing.T) {
		steps, err := Schedule(in, 0)
		assert.Nil(t, steps)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, err.Error(), "at most 10000 are allowed")
	})

	t.Run("Limit above cap is refused", func(t *testing.T) {
		_, err := Schedule(in, MaxScheduleRows+1)
		assert.Error(t, err)
	})

	t.Run("Limit within cap", func(t *testing.T) {
		steps, err := Schedule(in, MaxScheduleRows)
		require.NoError(t, err)
		assert.Len(t, steps, MaxScheduleRows)
	})
}
