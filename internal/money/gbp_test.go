package money

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "£0"},
		{7, "£7"},
		{999, "£999"},
		{1000, "£1,000"},
		{4050, "£4,050"},
		{123456, "£123,456"},
		{1234567, "£1,234,567"},
		{-1500, "£-1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInt(tt.in))
	}
}

func TestFormatBig(t *testing.T) {
	// 100 * 2^200 has 63 digits
	amount := new(big.Int).Lsh(big.NewInt(100), 200)
	got := Format(amount)

	assert.True(t, strings.HasPrefix(got, "£"))
	assert.Equal(t, amount.String(), strings.ReplaceAll(strings.TrimPrefix(got, "£"), ",", ""))

	groups := strings.Split(strings.TrimPrefix(got, "£"), ",")
	assert.Len(t, groups, 21)
	for _, g := range groups {
		assert.Len(t, g, 3)
	}
}

func TestFormatLeavesAmountUntouched(t *testing.T) {
	amount := big.NewInt(-2500)
	assert.Equal(t, "£-2,500", Format(amount))
	assert.Equal(t, int64(-2500), amount.Int64())
}

func TestFormatNil(t *testing.T) {
	assert.Equal(t, "£0", Format(nil))
}

func TestFormatMatchesFormatInt(t *testing.T) {
	for _, n := range []int64{0, 5, 1000, 4050, 999999, 1234567, -1500} {
		assert.Equal(t, FormatInt(n), Format(big.NewInt(n)))
	}
}
