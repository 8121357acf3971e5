package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Errors returned by operations in this package.
// They are always wrapped with operation context, so callers should test
// them with [errors.Is].
var (
	// ErrInvalidAmount indicates an attempt to construct a negative monetary value.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCurrencyCode indicates a currency code absent from the catalog.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	// ErrCurrencyMismatch indicates an operation on amounts denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrNegativeResult indicates a subtraction whose result would be negative.
	ErrNegativeResult = errors.New("negative result")
	// ErrInvalidMultiplier indicates a negative scaling factor.
	ErrInvalidMultiplier = errors.New("invalid multiplier")
	// ErrInvalidDivisor indicates a divisor less than 1.
	ErrInvalidDivisor = errors.New("invalid divisor")
	// ErrValueTooLow indicates a nonzero result below the atomic unit of the
	// currency, which would be indistinguishable from zero at its scale.
	ErrValueTooLow = errors.New("value below atomic unit")

	errAmountOverflow = errors.New("amount overflow")
)

// Money represents a non-negative monetary amount.
// The zero value corresponds to 0 units of an unknown currency.
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	curr  Currency        // resolved through a Catalog at construction
	value decimal.Decimal // always >= 0, floor-rounded to the currency scale
}

// newMoneyUnsafe creates a new monetary value without checking the sign
// or the scale. Use it only if you are absolutely sure that the arguments
// are valid.
func newMoneyUnsafe(c Currency, d decimal.Decimal) Money {
	return Money{curr: c, value: d}
}

// newMoneySafe creates a new monetary value, rejecting negative amounts and
// floor-rounding the value to the scale of the currency.
func newMoneySafe(c Currency, d decimal.Decimal) (Money, error) {
	if d.IsNeg() {
		return Money{}, ErrInvalidAmount
	}
	d = d.Floor(c.Scale()).Pad(c.Scale())
	if d.Scale() < c.Scale() {
		return Money{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
	}
	return newMoneyUnsafe(c, d), nil
}

// New returns a monetary value denominated in the currency identified by
// the given code. The value is floor-rounded to the scale of the currency,
// so digits the currency cannot represent are discarded, never carried.
//
// New returns an error if:
//   - the value is negative ([ErrInvalidAmount]);
//   - the catalog has no entry for the code ([ErrInvalidCurrencyCode]).
func New(value decimal.Decimal, code string, cat Catalog) (Money, error) {
	c, err := ParseCurr(code, cat)
	if err != nil {
		return Money{}, err
	}
	m, err := newMoneySafe(c, value)
	if err != nil {
		return Money{}, fmt.Errorf("constructing [%v %v]: %w", code, value, err)
	}
	return m, nil
}

// NewFromDecimal returns a monetary value with the specified currency.
// Unlike [New], it does not consult a catalog; the caller supplies an
// already resolved [Currency].
//
// NewFromDecimal returns [ErrInvalidAmount] if the value is negative.
func NewFromDecimal(curr Currency, value decimal.Decimal) (Money, error) {
	m, err := newMoneySafe(curr, value)
	if err != nil {
		return Money{}, fmt.Errorf("constructing [%v %v]: %w", curr, value, err)
	}
	return m, nil
}

// NewFromFloat64 converts a float to a monetary value.
// See also constructor [New].
//
// NewFromFloat64 returns an error if the float is a special value (NaN or Inf),
// in addition to the error conditions of [Parse].
func NewFromFloat64(value float64, code string, cat Catalog) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", value)
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	m, err := Parse(s, code, cat)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// Parse converts a decimal string to a monetary value denominated in the
// currency identified by the given code.
// See also constructor [New].
func Parse(value, code string, cat Catalog) (Money, error) {
	c, err := ParseCurr(code, cat)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	m, err := newMoneySafe(c, d)
	if err != nil {
		return Money{}, fmt.Errorf("constructing [%v %v]: %w", code, value, err)
	}
	return m, nil
}

// MustParse is like [Parse] but panics if the strings cannot be parsed.
// It simplifies safe initialization of global variables holding monetary values.
func MustParse(value, code string, cat Catalog) Money {
	m, err := Parse(value, code, cat)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", value, code, err))
	}
	return m
}

// Zero returns a zero monetary value of the given currency.
func Zero(c Currency) Money {
	var d decimal.Decimal
	return newMoneyUnsafe(c, d.Pad(c.Scale()))
}

// Curr returns the currency of the monetary value.
func (m Money) Curr() Currency {
	return m.curr
}

// Decimal returns the decimal representation of the monetary value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.value.IsPos()
}

// SameCurr returns true if monetary values are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// ULP (Unit in the Last Place) returns the atomic unit of the currency,
// 10^-scale, the smallest amount the currency can represent.
func (m Money) ULP() Money {
	return newMoneyUnsafe(m.curr, m.value.ULP())
}

// Zero returns a zero monetary value with the same currency as m.
// See also method [Money.ULP].
func (m Money) Zero() Money {
	return newMoneyUnsafe(m.curr, m.value.Zero())
}

// Cmp compares monetary values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the values are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.value.Cmp(b.value), nil
}

// Add returns the sum of monetary values m and b.
//
// Add returns an error if the values are denominated in different
// currencies ([ErrCurrencyMismatch]).
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.value.AddExact(b.value, m.curr.Scale())
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(m.curr, d)
}

// Sub returns the difference between monetary values m and b.
// Negative monetary values are never constructed, so the minuend must be
// at least as large as the subtrahend.
//
// Sub returns an error if:
//   - the values are denominated in different currencies ([ErrCurrencyMismatch]);
//   - m is smaller than b ([ErrNegativeResult]).
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	if m.value.Cmp(b.value) < 0 {
		return Money{}, ErrNegativeResult
	}
	d, err := m.value.SubExact(b.value, m.curr.Scale())
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(m.curr, d)
}

// Mul returns the product of the monetary value and factor e, floor-rounded
// to the scale of the currency.
//
// Mul returns an error if:
//   - the factor is negative ([ErrInvalidMultiplier]);
//   - the product is nonzero but smaller than the atomic unit of the
//     currency ([ErrValueTooLow]). An exact zero product is allowed.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	c, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	if e.IsNeg() {
		return Money{}, ErrInvalidMultiplier
	}
	d, err := m.value.Mul(e)
	if err != nil {
		return Money{}, err
	}
	if err := m.checkAtomic(d); err != nil {
		return Money{}, err
	}
	return newMoneySafe(m.curr, d)
}

// QuoRem returns the quotient q and remainder r of the monetary value and
// divisor e such that m = q * e + r, exactly. The quotient is floor-rounded
// to the scale of the currency and the remainder is the leftover the
// currency cannot split further: 0 <= r < e * ULP.
// Together the two outputs reconstitute the original amount, so floor
// division never loses value.
//
// QuoRem returns an error if:
//   - the divisor is less than 1 ([ErrInvalidDivisor]);
//   - the quotient is nonzero but smaller than the atomic unit of the
//     currency ([ErrValueTooLow]).
func (m Money) QuoRem(e int) (q, r Money, err error) {
	q, r, err = m.quoRem(e)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", m, e, m, e, err)
	}
	return q, r, nil
}

func (m Money) quoRem(e int) (q, r Money, err error) {
	if e < 1 {
		return Money{}, Money{}, ErrInvalidDivisor
	}
	div, err := decimal.New(int64(e), 0)
	if err != nil {
		return Money{}, Money{}, err
	}

	// Quotient
	d, err := m.value.Quo(div)
	if err != nil {
		return Money{}, Money{}, err
	}
	if err := m.checkAtomic(d); err != nil {
		return Money{}, Money{}, err
	}
	q, err = newMoneySafe(m.curr, d)
	if err != nil {
		return Money{}, Money{}, err
	}

	// Remainder
	p, err := q.value.Mul(div)
	if err != nil {
		return Money{}, Money{}, err
	}
	d, err = m.value.Sub(p)
	if err != nil {
		return Money{}, Money{}, err
	}
	r, err = newMoneySafe(m.curr, d)
	if err != nil {
		return Money{}, Money{}, err
	}
	return q, r, nil
}

// checkAtomic rejects a nonzero result that floor rounding would collapse
// to zero at the currency scale. An exact zero passes.
func (m Money) checkAtomic(d decimal.Decimal) error {
	if d.IsZero() {
		return nil
	}
	ulp, err := decimal.New(1, m.curr.Scale())
	if err != nil {
		return err
	}
	if d.Cmp(ulp) < 0 {
		return ErrValueTooLow
	}
	return nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the monetary value, e.g. "BRL 10.00".
// See also method [Money.Display].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.value.String()
}

// Display returns the monetary value prefixed with the display symbol of
// its currency, e.g. "R$10.00" or "¥10". It is informational only and not
// part of the arithmetic contract.
func (m Money) Display() string {
	return m.curr.Grapheme() + m.value.String()
}
