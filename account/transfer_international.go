package account

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"

	"github.com/lucaslrolim/financial-system/money"
)

// Converter converts a monetary value into another currency.
// It is implemented by [exchange.Exchanger]; tests supply fakes.
//
// [exchange.Exchanger]: https://pkg.go.dev/github.com/lucaslrolim/financial-system/exchange#Exchanger
type Converter interface {
	Convert(ctx context.Context, m money.Money, toCurrency string) (money.Money, error)
}

// TransferInternational moves value between accounts holding different
// currencies. The value is denominated in toCurrency, the receiver's
// currency: the converter translates it into the sender's currency, the
// converted amount is withdrawn from the sender, and the original value is
// deposited into the receiver. If any step fails the whole operation fails
// and neither returned account reflects a partial state.
//
// TransferInternational returns [ErrUnsupportedCurrency] if the receiver
// does not hold toCurrency, and otherwise any error of the converter,
// [Account.Withdraw], or [Account.Deposit].
func TransferInternational(ctx context.Context, conv Converter, sender, receiver Account, toCurrency string, value decimal.Decimal) (Account, Account, error) {
	s, r, err := transferInternational(ctx, conv, sender, receiver, toCurrency, value)
	if err != nil {
		return Account{}, Account{}, fmt.Errorf("transferring [%v %v] from account %v to account %v: %w",
			toCurrency, value, sender.ID, receiver.ID, err)
	}
	return s, r, nil
}

func transferInternational(ctx context.Context, conv Converter, sender, receiver Account, toCurrency string, value decimal.Decimal) (Account, Account, error) {
	if receiver.Currency().Code() != toCurrency {
		return Account{}, Account{}, fmt.Errorf("%w: receiving account holds %v", ErrUnsupportedCurrency, receiver.Currency())
	}
	m, err := money.NewFromDecimal(receiver.Currency(), value)
	if err != nil {
		return Account{}, Account{}, err
	}

	converted, err := conv.Convert(ctx, m, sender.Currency().Code())
	if err != nil {
		return Account{}, Account{}, err
	}

	s, err := sender.withdraw(converted.Decimal(), sender.Currency().Code())
	if err != nil {
		return Account{}, Account{}, err
	}
	r, err := receiver.deposit(value, toCurrency)
	if err != nil {
		return Account{}, Account{}, err
	}
	return s, r, nil
}
