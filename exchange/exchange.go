// Package exchange converts monetary values between currencies using rates
// supplied by an external provider.
//
// Rates are expressed relative to a common base currency, so a conversion
// is a two-hop multiplication through that base. The package never invents
// a rate: a currency missing from the provider's table fails Convert with
// [ErrRateUnavailable].
package exchange

import (
	"context"
	"errors"
	"fmt"

	"github.com/govalues/decimal"

	"github.com/lucaslrolim/financial-system/money"
)

// ErrRateUnavailable indicates that the rate provider has no entry for a
// requested currency.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateProvider supplies per-currency conversion rates relative to a common
// base currency. The call is synchronous; implementations decide their own
// timeout and retry policy.
//
// [Client] is an HTTP-backed implementation.
type RateProvider interface {
	Rates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// Exchanger converts monetary values using a [RateProvider] and resolves
// target currencies through a [money.Catalog].
type Exchanger struct {
	provider RateProvider
	catalog  money.Catalog
}

// NewExchanger returns an exchanger backed by the given provider and catalog.
func NewExchanger(p RateProvider, cat money.Catalog) *Exchanger {
	return &Exchanger{provider: p, catalog: cat}
}

// Convert returns the monetary value converted into the currency identified
// by toCurrency. It fetches the rate table once per call and hops through
// the provider's base currency: the value is scaled by the rate of its own
// currency, re-denominated in the target currency, and scaled by the target
// rate. Floor rounding applies at each hop, as with any [money.Money.Mul].
//
// Convert returns an error if:
//   - the provider call fails;
//   - the table has no entry for either currency ([ErrRateUnavailable]);
//   - the catalog has no entry for toCurrency ([money.ErrInvalidCurrencyCode]);
//   - either scaling step fails, e.g. with [money.ErrValueTooLow].
func (e *Exchanger) Convert(ctx context.Context, m money.Money, toCurrency string) (money.Money, error) {
	c, err := e.convert(ctx, m, toCurrency)
	if err != nil {
		return money.Money{}, fmt.Errorf("converting [%v] to %v: %w", m, toCurrency, err)
	}
	return c, nil
}

func (e *Exchanger) convert(ctx context.Context, m money.Money, toCurrency string) (money.Money, error) {
	rates, err := e.provider.Rates(ctx)
	if err != nil {
		return money.Money{}, fmt.Errorf("fetching rates: %w", err)
	}

	from, ok := rates[m.Curr().Code()]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: no rate for %v", ErrRateUnavailable, m.Curr())
	}
	to, ok := rates[toCurrency]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: no rate for %v", ErrRateUnavailable, toCurrency)
	}

	hop, err := m.Mul(from)
	if err != nil {
		return money.Money{}, err
	}
	target, err := money.New(hop.Decimal(), toCurrency, e.catalog)
	if err != nil {
		return money.Money{}, err
	}
	return target.Mul(to)
}
