/*
Package money implements non-negative monetary values with fixed
per-currency precision.

# Representation

A [Money] value pairs a [Currency] with a [decimal.Decimal] amount.
The amount is always greater than or equal to zero and is floor-rounded
to the scale of its currency at construction and after every arithmetic
operation, so a Money value never carries digits its currency cannot
represent. Money values are immutable and safe for concurrent use by
multiple goroutines.

Currencies are resolved through a [Catalog], which maps an upper-case
ISO 4217 code to its fraction size and display symbol. The package ships
[ISO4217], an in-memory catalog of common currencies, but the embedding
application may supply its own.

# Operations

Arithmetic never loses value silently. [Money.Add] and [Money.Sub] require
matching currencies, and Sub refuses to produce a negative result.
[Money.Mul] floors the product to the currency scale and rejects a nonzero
product that would be indistinguishable from zero at that scale.
[Money.QuoRem] performs floor division and returns the exact leftover, so
quotient*divisor + remainder always reconstitutes the original amount.

# Errors

Every fallible operation returns a wrapped sentinel error such as
[ErrCurrencyMismatch] or [ErrValueTooLow], suitable for [errors.Is] checks.
Panics are reserved for the Must* constructors used to initialize globals.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package money
