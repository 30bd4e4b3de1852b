// Package core holds the PenteFino domain types and the fixed-point money
// arithmetic every other package funnels currency values through.
//
// Amounts cross the API boundary as decimal numbers but are never summed or
// subtracted as floats: they are converted to integer cents first, combined,
// and converted back. Repeated float addition of decimal fractions
// accumulates representable-fraction error (0.1+0.2 != 0.3 in binary
// floating point); integer cents do not.
package core

import (
	"math"
	"strconv"
	"strings"
)

// Money is an amount in integer cents (centavos).
type Money struct {
	Cents int64
}

// Reais returns the decimal value for display purposes.
// Use cents for calculations.
func (m Money) Reais() float64 {
	return float64(m.Cents) / 100.0
}

// ToCents converts a decimal amount to integer cents, rounding half away
// from zero. NaN and infinities map to 0.
func ToCents(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v * 100))
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100.0
}

// ParseCents converts a decimal string to cents. It accepts both dot
// (12.34) and comma (12,34) decimal separators. Unparseable input yields 0
// rather than an error: amounts are user-entered with no format validation
// upstream, and a zero row is preferable to a rejected ledger load.
func ParseCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return ToCents(v)
}

// SumCents sums decimal amounts through integer cents, so the result
// carries no binary floating-point residue from repeated addition.
func SumCents(values []float64) float64 {
	var total int64
	for _, v := range values {
		total += ToCents(v)
	}
	return FromCents(total)
}

// PercentageOf returns percent% of value, computed on cents with the
// resulting cent rounded half away from zero. PercentageOf(99.99, 50) is
// exactly 50.00.
func PercentageOf(value float64, percent int) float64 {
	cents := ToCents(value)
	return FromCents(roundedDiv(cents*int64(percent), 100))
}

// roundedDiv divides num by den (den > 0) rounding half away from zero.
func roundedDiv(num, den int64) int64 {
	if num >= 0 {
		return (num + den/2) / den
	}
	return (num - den/2) / den
}

// FormatBRL renders a decimal amount as Brazilian-real currency text,
// e.g. "R$ 1.234,56". Non-finite input renders as zero.
func FormatBRL(v float64) string {
	cents := ToCents(v)
	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)

	// Insert dot thousands separators right to left.
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(whole[i : i+3])
	}

	out := "R$ " + b.String() + "," + pad2(cents%100)
	if neg {
		return "-" + out
	}
	return out
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
