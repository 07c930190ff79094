// Package amount converts between stroops and lumens and renders both as
// display strings. One lumen (XLM) is 10^7 stroops.
package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of stroops in one lumen.
const Scale = 10_000_000

// scaleExp is the base-10 exponent matching Scale.
const scaleExp = -7

var (
	maxStroops = decimal.NewFromInt(math.MaxInt64)
	minStroops = decimal.NewFromInt(math.MinInt64)
)

// Stroops is an amount expressed in the smallest indivisible unit of the ledger.
type Stroops int64

// Lumens is an amount expressed in major display units.
type Lumens struct {
	decimal.Decimal
}

// Of returns a pointer to v, for call sites that need to distinguish a known
// amount from an absent one.
func Of(v int64) *Stroops {
	s := Stroops(v)
	return &s
}

// NewLumens creates a Lumens value from a float64.
func NewLumens(value float64) Lumens {
	return Lumens{decimal.NewFromFloat(value)}
}

// NewLumensFromString parses a decimal string such as "12.5".
func NewLumensFromString(value string) (Lumens, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Lumens{}, err
	}
	return Lumens{d}, nil
}

// ParseStroops parses an integer stroop count. Underscores and thousands
// commas are accepted as digit separators.
func ParseStroops(value string) (Stroops, error) {
	clean := strings.NewReplacer("_", "", ",", "").Replace(strings.TrimSpace(value))
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stroop amount %q: %w", value, err)
	}
	return Stroops(n), nil
}

// ToMajorUnits converts stroops to lumens. The conversion is exact.
func ToMajorUnits(s Stroops) Lumens {
	return Lumens{decimal.New(int64(s), scaleExp)}
}

// ToSmallestUnits converts lumens to stroops, truncating anything below one stroop.
// Amounts outside the int64 stroop range saturate at math.MaxInt64 or
// math.MinInt64.
func ToSmallestUnits(l Lumens) Stroops {
	d := l.Decimal.Shift(-scaleExp).Truncate(0)
	switch {
	case d.GreaterThan(maxStroops):
		return math.MaxInt64
	case d.LessThan(minStroops):
		return math.MinInt64
	}
	return Stroops(d.IntPart())
}

// Lumens is shorthand for ToMajorUnits(s).
func (s Stroops) Lumens() Lumens { return ToMajorUnits(s) }

// Stroops is shorthand for ToSmallestUnits(l).
func (l Lumens) Stroops() Stroops { return ToSmallestUnits(l) }

// String returns the raw integer count.
func (s Stroops) String() string { return strconv.FormatInt(int64(s), 10) }

// nonNegative maps absent and negative amounts to zero.
func nonNegative(s *Stroops) Stroops {
	if s == nil || *s < 0 {
		return 0
	}
	return *s
}
