package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafePercent(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		base     float64
		expected float64
	}{
		{
			name:     "Razão comum com arredondamento",
			part:     50,
			base:     1700,
			expected: 2.94,
		},
		{
			name:     "Base zero resulta em zero, nunca Infinity",
			part:     120,
			base:     0,
			expected: 0,
		},
		{
			name:     "Variação negativa preserva o sinal",
			part:     -50,
			base:     200,
			expected: -25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafePercent(tt.part, tt.base))
		})
	}
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 2.5, SafeRatio(5, 2))
	assert.Equal(t, 0.0, SafeRatio(5, 0))
}

func TestSafeDivDecimal(t *testing.T) {
	spend := decimal.RequireFromString("150.50")

	assert.True(t, decimal.RequireFromString("0.7525").Equal(SafeDivDecimal(spend, 200)))
	assert.True(t, SafeDivDecimal(spend, 0).IsZero())
}
