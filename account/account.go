// Package account provides single-currency accounts over monetary values.
//
// An Account holds exactly one currency's balance and evolves only through
// the operations in this package: deposits, withdrawals, same-currency and
// international transfers, and proportional splits. Every operation is a
// pure transformation that returns a new Account value or an error; no
// operation mutates its inputs or applies partially, so callers never
// observe a half-applied transfer. The package performs no concurrent-access
// control: callers sharing accounts between goroutines must serialize
// access per account.
package account

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/govalues/decimal"

	"github.com/lucaslrolim/financial-system/money"
)

var (
	// ErrUnsupportedCurrency indicates a deposit or withdrawal denominated in
	// a currency other than the account's.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInsufficientFunds indicates a withdrawal exceeding the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a named holder of a single currency's balance.
// The zero value is not usable; accounts are created with [Open].
// Account values are immutable: operations return a new Account and leave
// the receiver untouched.
type Account struct {
	ID      uuid.UUID
	Owner   string
	Balance money.Money
}

// Open creates an account with a zero balance in the currency identified
// by the given code. The id is assigned by the caller.
//
// Open returns [money.ErrInvalidCurrencyCode] if the catalog has no entry
// for the code.
func Open(id uuid.UUID, owner, code string, cat money.Catalog) (Account, error) {
	c, err := money.ParseCurr(code, cat)
	if err != nil {
		return Account{}, fmt.Errorf("opening account for %q: %w", owner, err)
	}
	return Account{ID: id, Owner: owner, Balance: money.Zero(c)}, nil
}

// Currency returns the single currency the account may hold.
func (a Account) Currency() money.Currency {
	return a.Balance.Curr()
}

// Deposit returns a copy of the account with the value added to its balance.
//
// Deposit returns an error if:
//   - the value is negative ([money.ErrInvalidAmount]);
//   - the code differs from the account currency ([ErrUnsupportedCurrency]);
//   - the value is below the atomic unit of the account currency
//     ([money.ErrValueTooLow]).
func (a Account) Deposit(value decimal.Decimal, code string) (Account, error) {
	b, err := a.deposit(value, code)
	if err != nil {
		return Account{}, fmt.Errorf("depositing [%v %v] into account %v: %w", code, value, a.ID, err)
	}
	return b, nil
}

func (a Account) deposit(value decimal.Decimal, code string) (Account, error) {
	m, err := a.incoming(value, code)
	if err != nil {
		return Account{}, err
	}
	bal, err := a.Balance.Add(m)
	if err != nil {
		return Account{}, err
	}
	a.Balance = bal
	return a, nil
}

// Withdraw returns a copy of the account with the value subtracted from
// its balance.
//
// Withdraw has the same preconditions as [Account.Deposit] and additionally
// returns [ErrInsufficientFunds] if the value exceeds the balance.
func (a Account) Withdraw(value decimal.Decimal, code string) (Account, error) {
	b, err := a.withdraw(value, code)
	if err != nil {
		return Account{}, fmt.Errorf("withdrawing [%v %v] from account %v: %w", code, value, a.ID, err)
	}
	return b, nil
}

func (a Account) withdraw(value decimal.Decimal, code string) (Account, error) {
	m, err := a.incoming(value, code)
	if err != nil {
		return Account{}, err
	}
	if a.Balance.Decimal().Cmp(value) < 0 {
		return Account{}, ErrInsufficientFunds
	}
	bal, err := a.Balance.Sub(m)
	if err != nil {
		return Account{}, err
	}
	a.Balance = bal
	return a, nil
}

// incoming validates a value moving into or out of the account and returns
// it as a monetary value in the account currency.
func (a Account) incoming(value decimal.Decimal, code string) (money.Money, error) {
	if value.IsNeg() {
		return money.Money{}, money.ErrInvalidAmount
	}
	if code != a.Currency().Code() {
		return money.Money{}, fmt.Errorf("%w: account holds %v", ErrUnsupportedCurrency, a.Currency())
	}
	if value.Cmp(a.Balance.ULP().Decimal()) < 0 {
		return money.Money{}, money.ErrValueTooLow
	}
	return money.NewFromDecimal(a.Currency(), value)
}

// Transfer moves the value from the sender to the receiver.
// Both accounts must hold the same currency; use [TransferInternational]
// for cross-currency transfers.
// If either step fails, the whole operation fails and neither returned
// account reflects a partial state.
//
// Transfer returns [money.ErrCurrencyMismatch] if the accounts hold
// different currencies, and otherwise any error of [Account.Withdraw] or
// [Account.Deposit].
func Transfer(sender, receiver Account, value decimal.Decimal) (Account, Account, error) {
	if sender.Currency() != receiver.Currency() {
		return Account{}, Account{}, fmt.Errorf("transferring between accounts %v and %v: %w",
			sender.ID, receiver.ID, money.ErrCurrencyMismatch)
	}
	code := sender.Currency().Code()
	s, err := sender.Withdraw(value, code)
	if err != nil {
		return Account{}, Account{}, err
	}
	r, err := receiver.Deposit(value, code)
	if err != nil {
		return Account{}, Account{}, err
	}
	return s, r, nil
}
