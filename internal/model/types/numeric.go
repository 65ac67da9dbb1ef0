package types

import (
	"math"
	"strconv"

	"exusiai.dev/trialstats/internal/util"
)

// Percent is a percentage kept at full precision in memory and rendered as a
// string with exactly two decimals, e.g. "92.00".
type Percent float64

func (p Percent) String() string {
	return strconv.FormatFloat(finite(float64(p)), 'f', 2, 64)
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, p.String()), nil
}

// Magnitude is a physical measurement rendered as a number rounded to three decimals.
type Magnitude float64

func (m Magnitude) Rounded() float64 {
	return util.RoundFloat64(finite(float64(m)), 3)
}

func (m Magnitude) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, m.Rounded(), 'f', -1, 64), nil
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
