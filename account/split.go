package account

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ErrInvalidDistribution indicates a weight vector that contains a negative
// weight, does not sum to exactly 1, or does not match the number of accounts.
var ErrInvalidDistribution = errors.New("invalid distribution")

// Operation applies a value denominated in the given currency to an account
// and returns the updated account. [Account.Deposit] and [Account.Withdraw]
// satisfy this signature as method expressions.
type Operation func(a Account, value decimal.Decimal, code string) (Account, error)

// SplitTransfer withdraws the value from the sender once and deposits
// weights[i] * value into each receivers[i], in input order.
// Every receiver must hold the sender's currency; the first mismatched
// deposit fails the whole operation with [ErrUnsupportedCurrency] and no
// partial state is returned.
//
// SplitTransfer returns [ErrInvalidDistribution] unless the weights are all
// non-negative, sum to exactly 1, and match the receivers in number.
func SplitTransfer(sender Account, receivers []Account, value decimal.Decimal, weights []decimal.Decimal) (Account, []Account, error) {
	if err := validateWeights(weights, len(receivers)); err != nil {
		return Account{}, nil, fmt.Errorf("splitting [%v %v] from account %v: %w",
			sender.Currency(), value, sender.ID, err)
	}
	s, err := sender.Withdraw(value, sender.Currency().Code())
	if err != nil {
		return Account{}, nil, err
	}
	rs, err := split(receivers, value, weights, sender.Currency().Code(), Account.Deposit)
	if err != nil {
		return Account{}, nil, err
	}
	return s, rs, nil
}

// SplitValue applies the operation to each account with its share of the
// value, weights[i] * value, in input order. All shares are denominated in
// the first account's currency; the per-account operation enforces this.
//
// SplitValue returns [ErrInvalidDistribution] unless the weights are all
// non-negative, sum to exactly 1, and match the accounts in number.
func SplitValue(accounts []Account, value decimal.Decimal, weights []decimal.Decimal, op Operation) ([]Account, error) {
	if err := validateWeights(weights, len(accounts)); err != nil {
		return nil, fmt.Errorf("splitting [%v]: %w", value, err)
	}
	return split(accounts, value, weights, accounts[0].Currency().Code(), op)
}

func split(accounts []Account, value decimal.Decimal, weights []decimal.Decimal, code string, op Operation) ([]Account, error) {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		share, err := weights[i].Mul(value)
		if err != nil {
			return nil, fmt.Errorf("computing share [%v * %v]: %w", weights[i], value, err)
		}
		out[i], err = op(a, share, code)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// validateWeights checks that the weight vector describes a complete
// distribution: one non-negative weight per account, summing to exactly 1.
func validateWeights(weights []decimal.Decimal, accounts int) error {
	if len(weights) == 0 || len(weights) != accounts {
		return fmt.Errorf("%w: %v weights for %v accounts", ErrInvalidDistribution, len(weights), accounts)
	}
	var sum decimal.Decimal
	for _, w := range weights {
		if w.IsNeg() {
			return fmt.Errorf("%w: negative weight %v", ErrInvalidDistribution, w)
		}
		var err error
		sum, err = sum.Add(w)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDistribution, err)
		}
	}
	if !sum.IsOne() {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidDistribution, sum)
	}
	return nil
}
