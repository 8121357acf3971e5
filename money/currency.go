package money

import (
	"fmt"
)

// Currency type represents a currency in the global financial system.
// The zero value has an empty code and indicates an unknown currency.
//
// A Currency carries the properties defined by [ISO 4217] that the rest of
// the package needs: the alphabetic code, the number of digits used to
// represent the minor unit (the scale), and the display symbol (grapheme).
// Currency values are resolved through a [Catalog] and are comparable, so
// two amounts are denominated in the same currency exactly when their
// Currency values are equal.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code     string
	scale    int
	grapheme string
}

// Catalog resolves upper-case ISO 4217 currency codes.
// The second return value reports whether the catalog has an entry for
// the code; absence of a key is surfaced by this package as
// [ErrInvalidCurrencyCode].
//
// [ISO4217] is the catalog shipped with this package.
type Catalog interface {
	Currency(code string) (Currency, bool)
}

// CatalogMap is a Catalog backed by a plain map.
// It is convenient for tests and for applications that load their
// currency data from an external source.
type CatalogMap map[string]Currency

// Currency implements the [Catalog] interface.
func (m CatalogMap) Currency(code string) (Currency, bool) {
	c, ok := m[code]
	return c, ok
}

// NewCurrency returns a currency with the given ISO 4217 code, fraction
// size, and display symbol. It is intended for building custom catalogs.
//
// NewCurrency returns an error if the code is empty or the scale is negative.
func NewCurrency(code string, scale int, grapheme string) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf("empty code: %w", ErrInvalidCurrencyCode)
	}
	if scale < 0 {
		return Currency{}, fmt.Errorf("negative scale %v: %w", scale, ErrInvalidCurrencyCode)
	}
	return Currency{code: code, scale: scale, grapheme: grapheme}, nil
}

// ParseCurr resolves a currency code against the given catalog.
//
// ParseCurr returns [ErrInvalidCurrencyCode] if the catalog has no entry
// for the code.
func ParseCurr(code string, cat Catalog) (Currency, error) {
	c, ok := cat.Currency(code)
	if !ok {
		return Currency{}, fmt.Errorf("parsing currency %q: %w", code, ErrInvalidCurrencyCode)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the code cannot be resolved.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string, cat Catalog) Currency {
	c, err := ParseCurr(code, cat)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the 3-letter code assigned to the currency by the ISO 4217
// standard.
func (c Currency) Code() string {
	return c.code
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency.
// A scale of 0 indicates a currency without minor units, such as the
// Japanese Yen; most currencies use a scale of 2.
func (c Currency) Scale() int {
	return c.scale
}

// Grapheme returns the display symbol of the currency, e.g. "R$" for BRL.
// It may be empty if the catalog does not define one.
func (c Currency) Grapheme() string {
	return c.grapheme
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.code
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.code)+2)
	text = append(text, '"')
	text = append(text, c.code...)
	text = append(text, '"')
	return text, nil
}
