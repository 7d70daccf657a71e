package domain

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a rupee value already rounded to two fractional digits.
// It serializes as a JSON number that always carries a fractional part
// (171.0, 0.57, -0.4) so clients render totals consistently.
type Amount float64

// Float64 returns the amount as a plain float64
func (a Amount) Float64() float64 {
	return float64(a)
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	if f == 0 {
		// normalizes -0
		return []byte("0.0"), nil
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// String formats the amount with exactly two decimals, as printed on invoices
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}
