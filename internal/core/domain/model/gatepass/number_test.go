package gatepass_test

import (
	"fmt"
	"testing"
	"time"

	"gatepass/internal/core/domain/model/gatepass"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fy2526(t *testing.T) gatepass.FinancialYear {
	t.Helper()
	return gatepass.FinancialYearOf(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
}

func TestComposeNumber(t *testing.T) {
	t.Run("renders a three-digit zero padded sequence", func(t *testing.T) {
		n, err := gatepass.ComposeNumber(7, fy2526(t), gatepass.RGP)

		require.NoError(t, err)
		assert.Equal(t, "RAPL-RGP-2526/007", n.Code())
	})

	t.Run("renders NRGP namespace", func(t *testing.T) {
		n, err := gatepass.ComposeNumber(999, fy2526(t), gatepass.NRGP)

		require.NoError(t, err)
		assert.Equal(t, "RAPL-NRGP-2526/999", n.Code())
	})

	t.Run("widens to four digits past 999", func(t *testing.T) {
		n, err := gatepass.ComposeNumber(1000, fy2526(t), gatepass.RGP)

		require.NoError(t, err)
		assert.Equal(t, "RAPL-RGP-2526/1000", n.Code())
	})

	t.Run("rejects sequence zero", func(t *testing.T) {
		_, err := gatepass.ComposeNumber(0, fy2526(t), gatepass.RGP)
		require.Error(t, err)
	})

	t.Run("rejects sequence beyond the namespace", func(t *testing.T) {
		_, err := gatepass.ComposeNumber(10000, fy2526(t), gatepass.RGP)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sequence")
	})

	t.Run("rejects unconstructed financial year", func(t *testing.T) {
		var fy gatepass.FinancialYear
		_, err := gatepass.ComposeNumber(1, fy, gatepass.RGP)
		require.Error(t, err)
	})
}

func TestParseNumber_RoundTrip(t *testing.T) {
	fy := fy2526(t)

	for _, sequence := range []int{1, 2, 42, 99, 100, 999, 1000, 9999} {
		for _, passType := range []gatepass.PassType{gatepass.RGP, gatepass.NRGP} {
			name := fmt.Sprintf("%s_%d", passType, sequence)
			t.Run(name, func(t *testing.T) {
				composed, err := gatepass.ComposeNumber(sequence, fy, passType)
				require.NoError(t, err)

				parsed, err := gatepass.ParseNumber(composed.Code())
				require.NoError(t, err)

				assert.Equal(t, sequence, parsed.Sequence())
				assert.Equal(t, passType, parsed.PassType())
				assert.Equal(t, fy.Code(), parsed.FinancialYear().Code())
				assert.True(t, parsed.IsEqual(composed))
			})
		}
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"wrong prefix", "XAPL-RGP-2526/001"},
		{"missing prefix", "RGP-2526/001"},
		{"unknown pass type", "RAPL-GP-2526/001"},
		{"lowercase pass type", "RAPL-rgp-2526/001"},
		{"two digit sequence", "RAPL-RGP-2526/01"},
		{"five digit sequence", "RAPL-RGP-2526/10000"},
		{"four digit sequence with leading zero", "RAPL-RGP-2526/0042"},
		{"zero sequence", "RAPL-RGP-2526/000"},
		{"non-consecutive financial year", "RAPL-RGP-2527/001"},
		{"three digit financial year", "RAPL-RGP-526/001"},
		{"missing slash", "RAPL-RGP-2526-001"},
		{"trailing garbage", "RAPL-RGP-2526/001x"},
		{"leading garbage", "xRAPL-RGP-2526/001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gatepass.ParseNumber(tt.code)
			require.ErrorIs(t, err, gatepass.ErrInvalidNumberFormat)
		})
	}
}

func TestPassType(t *testing.T) {
	t.Run("returnable maps to RGP", func(t *testing.T) {
		assert.Equal(t, gatepass.RGP, gatepass.PassTypeForReturnable(true))
	})

	t.Run("non-returnable maps to NRGP", func(t *testing.T) {
		assert.Equal(t, gatepass.NRGP, gatepass.PassTypeForReturnable(false))
	})

	t.Run("from string", func(t *testing.T) {
		pt, err := gatepass.PassTypeFromString("NRGP")
		require.NoError(t, err)
		assert.Equal(t, gatepass.NRGP, pt)

		_, err = gatepass.PassTypeFromString("nrgp")
		require.Error(t, err)
	})
}

func TestNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n gatepass.Number
		require.Error(t, n.Validate())
	})
}
