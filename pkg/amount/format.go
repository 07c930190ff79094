package amount

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSymbol is appended to rendered amounts unless WithSymbol overrides it.
	DefaultSymbol = "XLM"
	// DefaultDecimals is the number of fractional digits FormatCurrency renders by default.
	DefaultDecimals = 2

	maxDecimals = 20
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	one      = decimal.NewFromInt(1)
)

type options struct {
	decimals int
	symbol   string
}

// Option customizes currency rendering.
type Option func(*options)

// WithDecimals sets the number of fractional digits. Values outside [0, 20] are clamped.
func WithDecimals(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.decimals = 0
		case n > maxDecimals:
			o.decimals = maxDecimals
		default:
			o.decimals = n
		}
	}
}

// WithSymbol sets the currency symbol. An empty symbol keeps the default.
func WithSymbol(symbol string) Option {
	return func(o *options) {
		if symbol != "" {
			o.symbol = symbol
		}
	}
}

func resolve(opts []Option) options {
	o := options{decimals: DefaultDecimals, symbol: DefaultSymbol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// FormatCurrency renders an amount as grouped lumens with a fixed number of
// fractional digits followed by the symbol, e.g. "1,250.00 XLM".
// A nil amount renders as zero at the default precision.
func FormatCurrency(a *Stroops, opts ...Option) string {
	o := resolve(opts)
	if a == nil {
		return groupFixed(decimal.Zero, DefaultDecimals) + " " + o.symbol
	}
	return groupFixed(nonNegative(a).Lumens().Decimal, o.decimals) + " " + o.symbol
}

// FormatCompact abbreviates large amounts with K and M suffixes, e.g. "1.50M XLM".
// Amounts under one thousand lumens fall back to FormatCurrency at two decimals.
// Only the symbol option is honored.
func FormatCompact(a *Stroops, opts ...Option) string {
	o := resolve(opts)
	if a == nil {
		return "0 " + o.symbol
	}
	v := nonNegative(a).Lumens().Decimal
	switch {
	case v.GreaterThanOrEqual(million):
		return v.Shift(-6).StringFixed(2) + "M " + o.symbol
	case v.GreaterThanOrEqual(thousand):
		return v.Shift(-3).StringFixed(2) + "K " + o.symbol
	default:
		return FormatCurrency(a, WithDecimals(DefaultDecimals), WithSymbol(o.symbol))
	}
}

// ProgressRatio returns raised/goal clamped to [0, 1]. A non-positive goal or
// raised amount yields zero without dividing.
func ProgressRatio(raised, goal Stroops) decimal.Decimal {
	if goal <= 0 || raised <= 0 {
		return decimal.Zero
	}
	if raised >= goal {
		return one
	}
	return raised.Lumens().Div(goal.Lumens().Decimal)
}

// FormatProgress renders the funding ratio as a percentage with two decimals, e.g. "50.00%".
func FormatProgress(raised, goal Stroops) string {
	return ProgressRatio(raised, goal).Shift(2).StringFixed(2) + "%"
}

// groupFixed renders d with exactly places fractional digits and comma
// separated thousands in the integer part.
func groupFixed(d decimal.Decimal, places int) string {
	fixed := d.StringFixed(int32(places))
	whole, frac, hasFrac := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fixed
	}
	grouped := humanize.Comma(n)
	if !hasFrac {
		return grouped
	}
	return grouped + "." + frac
}
