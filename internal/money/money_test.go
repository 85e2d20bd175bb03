package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianopnk-hub/nf-solver-web/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"decimal comma with dot grouping", "1.234,56", 123456},
		{"decimal dot with comma grouping", "1,234.56", 123456},
		{"plain decimal comma", "1234,56", 123456},
		{"plain decimal dot", "1234.56", 123456},
		{"bare integer", "1234", 123400},
		{"negative decimal comma", "-10,00", -1000},
		{"negative decimal dot", "-10.00", -1000},
		{"explicit plus sign", "+7,50", 750},
		{"zero", "0", 0},
		{"comma as grouping when no two-digit tail", "1,234", 123400},
		{"single fraction digit after dot", "12.5", 1250},
		{"long fraction rounds half away from zero", "0.999", 100},
		{"internal spaces ignored", " 1 234,56 ", 123456},
		{"large grouped amount", "12.345.678,90", 1234567890},
		{"fraction only", ".50", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"-",
		"+",
		"abc",
		"12,34,56",
		"1.2.3",
		"10,0x",
		"R$ 10,00",
	}

	for _, input := range inputs {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := money.Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, money.ErrInvalidAmount)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{100, "1,00"},
		{-1000, "-10,00"},
		{123456, "1.234,56"},
		{-123456, "-1.234,56"},
		{1234567890, "12.345.678,90"},
		{100000000, "1.000.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.cents))
		})
	}
}

// Every formatted value must read back to the same minor-unit integer.
func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 99, 100, -100, 12345, -9999999, 123456789012, -123456789012}

	for _, v := range values {
		got, err := money.Parse(money.Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
