package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode is how real-valued amounts become whole currency units.
type RoundingMode string

const (
	// RoundHalfEven sends ties to the even neighbour (2.5 -> 2, 3.5 -> 4).
	RoundHalfEven RoundingMode = "half_even"
	// RoundHalfUp sends ties away from zero (2.5 -> 3, -2.5 -> -3).
	RoundHalfUp RoundingMode = "half_up"
)

// ParseRoundingMode validates a rounding mode name. Empty means RoundHalfEven.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch mode := RoundingMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return RoundHalfEven, nil
	case RoundHalfEven, RoundHalfUp:
		return mode, nil
	}
	return "", fmt.Errorf("unknown rounding mode %q (want %s or %s)", s, RoundHalfEven, RoundHalfUp)
}

// Round converts x to whole units. A float64 that prints as "n.5" is exactly
// n.5, so ties are decided on the same value the float arithmetic produced.
func (m RoundingMode) Round(x float64) int {
	d := decimal.NewFromFloat(x)
	if m == RoundHalfUp {
		d = d.Round(0)
	} else {
		d = d.RoundBank(0)
	}
	return int(d.IntPart())
}
