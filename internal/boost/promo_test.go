package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		code string
		stay Stay
		err  error
	}{
		{"employee always applies", EmployeeCode, Stay{CheckIn: 1, CheckOut: 2}, nil},
		{"free night needs five nights", FreeNightCode, Stay{CheckIn: 3, CheckOut: 7}, ErrStayTooShort},
		{"free night on five nights", FreeNightCode, Stay{CheckIn: 3, CheckOut: 8}, nil},
		{"payday starting on the fifteenth", PaydayCode, Stay{CheckIn: 15, CheckOut: 16}, nil},
		{"payday around the fifteenth", PaydayCode, Stay{CheckIn: 12, CheckOut: 18}, nil},
		{"payday leaving on the fifteenth", PaydayCode, Stay{CheckIn: 12, CheckOut: 15}, ErrPaydayNotSpanned},
		{"payday on the thirtieth", PaydayCode, Stay{CheckIn: 30, CheckOut: 31}, nil},
		{"payday leaving on the thirtieth", PaydayCode, Stay{CheckIn: 20, CheckOut: 30}, ErrPaydayNotSpanned},
		{"unknown code", "FREE", Stay{CheckIn: 1, CheckOut: 2}, ErrUnknownCode},
		{"codes are case sensitive", "payday", Stay{CheckIn: 15, CheckOut: 16}, ErrUnknownCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.code, tt.stay)
			if tt.err == nil {
				assert.NoError(t, err)
				assert.True(t, Eligible(tt.code, tt.stay))

				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.False(t, Eligible(tt.code, tt.stay))
		})
	}
}

func TestApply(t *testing.T) {
	stay := Stay{CheckIn: 14, CheckOut: 20, NightlyPrice: 1000, Total: 6500}

	assert.InDelta(t, 5850.0, Apply(EmployeeCode, stay), 1e-9)
	assert.InDelta(t, 5500.0, Apply(FreeNightCode, stay), 1e-9)
	assert.InDelta(t, 6045.0, Apply(PaydayCode, stay), 1e-9)
	assert.Equal(t, 6500.0, Apply("NOPE", stay))

	short := Stay{CheckIn: 1, CheckOut: 3, NightlyPrice: 1000, Total: 2000}
	assert.Equal(t, 2000.0, Apply(FreeNightCode, short))
	assert.Equal(t, 2000.0, Apply(PaydayCode, short))
}

func TestLookupAndCodes(t *testing.T) {
	assert.Equal(t, []string{EmployeeCode, PaydayCode, FreeNightCode}, Codes())

	for _, code := range Codes() {
		strategy, ok := Lookup(code)
		require.True(t, ok, code)
		assert.Equal(t, code, strategy.Code())
	}

	_, ok := Lookup("BLACK_FRIDAY")
	assert.False(t, ok)
}
