// Package xdecimal provides the fixed 8-fractional-digit decimal type used
// throughout the simulation kernel for money and quantities.
//
// Every arithmetic result is truncated toward zero to 8 fractional digits
// before it is ever compared or stored, so the kernel never accumulates the
// rounding error of raw binary floating point. It wraps
// github.com/shopspring/decimal, which already carries arbitrary-precision
// arithmetic; Decimal only adds the truncation and the domain helpers the
// store and matcher need (zero(), one(), is-zero comparison, safe parsing).
package xdecimal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the fixed number of fractional digits every Decimal is truncated to.
const Scale = 8

// Decimal is an immutable fixed-point value truncated toward zero to Scale
// fractional digits on every construction and every arithmetic result.
type Decimal struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Decimal{}

// One is the multiplicative identity.
var One = NewFromInt(1)

// NewFromFloat builds a Decimal from a float64, truncating to Scale digits.
func NewFromFloat(v float64) Decimal {
	return safe(decimal.NewFromFloat(v))
}

// NewFromInt builds a Decimal from an integer.
func NewFromInt(v int64) Decimal {
	return safe(decimal.NewFromInt(v))
}

// Parse parses a decimal string (as found in CSV columns), truncating to Scale digits.
func Parse(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return safe(d), nil
}

// safe truncates toward zero to Scale fractional digits. Every Decimal
// value that escapes this package has already passed through safe.
func safe(d decimal.Decimal) Decimal {
	return Decimal{d: d.Truncate(Scale)}
}

func (a Decimal) Add(b Decimal) Decimal { return safe(a.d.Add(b.d)) }
func (a Decimal) Sub(b Decimal) Decimal { return safe(a.d.Sub(b.d)) }
func (a Decimal) Mul(b Decimal) Decimal { return safe(a.d.Mul(b.d)) }

// Div divides a by b, truncating the result toward zero to Scale digits.
// Division is computed at a wider internal precision before truncation so
// the final 8-digit result is not itself corrupted by an intermediate
// rounding step.
func (a Decimal) Div(b Decimal) Decimal {
	return safe(a.d.DivRound(b.d, Scale+8))
}

func (a Decimal) Neg() Decimal { return safe(a.d.Neg()) }

// IsZero reports whether the normalized value is exactly zero.
func (a Decimal) IsZero() bool { return a.d.IsZero() }

// Sign returns -1, 0, or 1.
func (a Decimal) Sign() int { return a.d.Sign() }

func (a Decimal) GreaterThan(b Decimal) bool      { return a.d.GreaterThan(b.d) }
func (a Decimal) GreaterThanOrEqual(b Decimal) bool { return a.d.GreaterThanOrEqual(b.d) }
func (a Decimal) LessThan(b Decimal) bool         { return a.d.LessThan(b.d) }
func (a Decimal) LessThanOrEqual(b Decimal) bool  { return a.d.LessThanOrEqual(b.d) }
func (a Decimal) Equal(b Decimal) bool            { return a.d.Equal(b.d) }

// Float64 converts to a float64, for logging and dashboard-style snapshots
// only — never use the result in further arithmetic that feeds back into
// the store.
func (a Decimal) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// String renders the normalized decimal value.
func (a Decimal) String() string { return a.d.String() }

// MarshalJSON/UnmarshalJSON let Decimal flow through config and persistence
// layers as plain JSON numbers.
func (a Decimal) MarshalJSON() ([]byte, error) {
	return a.d.MarshalJSON()
}

func (a *Decimal) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = safe(d)
	return nil
}

// QuantizeTick truncates v toward zero to the nearest multiple of tick.
// tick <= 0 leaves v unchanged (an unconfigured rule has no tick constraint).
func (a Decimal) QuantizeTick(tick Decimal) Decimal {
	if tick.Sign() <= 0 {
		return a
	}
	quotient := a.d.Div(tick.d).Truncate(0)
	return safe(quotient.Mul(tick.d))
}

// Abs returns the absolute value.
func (a Decimal) Abs() Decimal { return safe(a.d.Abs()) }
