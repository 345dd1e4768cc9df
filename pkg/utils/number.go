package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafePercent calcula (part/base)*100 com a convenção de zero explícito:
// base zero resulta em 0, nunca NaN ou Infinity. Toda razão percentual da
// aplicação deve passar por aqui.
func SafePercent(part, base float64) float64 {
	if base == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace((part / base) * 100)
}

// SafeRatio calcula part/base com a mesma convenção de zero do SafePercent.
func SafeRatio(part, base float64) float64 {
	if base == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / base)
}

// SafeDivDecimal divide um valor monetário por um contador, retornando zero
// quando o denominador é zero. Usado para CPC e CPM.
func SafeDivDecimal(amount decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return amount.DivRound(decimal.NewFromInt(count), 4)
}
