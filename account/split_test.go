package account_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaslrolim/financial-system/account"
)

func weights(ws ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ws))
	for i, w := range ws {
		out[i] = decimal.MustParse(w)
	}
	return out
}

func TestSplitTransfer(t *testing.T) {
	t.Run("equal split", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Carol", "BRL")

		s, rs, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("50.00"), weights("0.5", "0.5"))
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "BRL 50.00", s.Balance.String())
		assert.Equal(t, "BRL 25.00", rs[0].Balance.String())
		assert.Equal(t, "BRL 25.00", rs[1].Balance.String())
	})

	t.Run("uneven split floors shares", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Carol", "BRL")

		_, rs, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("0.25"), weights("0.7", "0.3"))
		require.NoError(t, err)
		// 0.7*0.25 = 0.175 -> 0.17, 0.3*0.25 = 0.075 -> 0.07.
		assert.Equal(t, "BRL 0.17", rs[0].Balance.String())
		assert.Equal(t, "BRL 0.07", rs[1].Balance.String())
	})

	t.Run("weights do not sum to 1", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Carol", "BRL")

		_, _, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("50.00"), weights("0.5", "0.4"))
		require.ErrorIs(t, err, account.ErrInvalidDistribution)
	})

	t.Run("negative weight", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Carol", "BRL")

		_, _, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("50.00"), weights("1.5", "-0.5"))
		require.ErrorIs(t, err, account.ErrInvalidDistribution)
	})

	t.Run("weight count mismatch", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")

		_, _, err := account.SplitTransfer(sender, []account.Account{r1},
			decimal.MustParse("50.00"), weights("0.5", "0.5"))
		require.ErrorIs(t, err, account.ErrInvalidDistribution)
	})

	t.Run("receiver in another currency", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "100.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Dave", "USD")

		_, _, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("50.00"), weights("0.5", "0.5"))
		require.ErrorIs(t, err, account.ErrUnsupportedCurrency)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		sender := funded(t, "Alice", "BRL", "10.00")
		r1 := open(t, "Bob", "BRL")
		r2 := open(t, "Carol", "BRL")

		_, _, err := account.SplitTransfer(sender, []account.Account{r1, r2},
			decimal.MustParse("50.00"), weights("0.5", "0.5"))
		require.ErrorIs(t, err, account.ErrInsufficientFunds)
	})
}

func TestSplitValue(t *testing.T) {
	t.Run("deposit operation", func(t *testing.T) {
		a1 := open(t, "Bob", "BRL")
		a2 := open(t, "Carol", "BRL")

		out, err := account.SplitValue([]account.Account{a1, a2},
			decimal.MustParse("90.00"), weights("0.9", "0.1"), account.Account.Deposit)
		require.NoError(t, err)
		assert.Equal(t, "BRL 81.00", out[0].Balance.String())
		assert.Equal(t, "BRL 9.00", out[1].Balance.String())
	})

	t.Run("withdraw operation", func(t *testing.T) {
		a1 := funded(t, "Bob", "BRL", "100.00")
		a2 := funded(t, "Carol", "BRL", "100.00")

		out, err := account.SplitValue([]account.Account{a1, a2},
			decimal.MustParse("10.00"), weights("0.5", "0.5"), account.Account.Withdraw)
		require.NoError(t, err)
		assert.Equal(t, "BRL 95.00", out[0].Balance.String())
		assert.Equal(t, "BRL 95.00", out[1].Balance.String())
	})

	t.Run("uses first account currency", func(t *testing.T) {
		a1 := open(t, "Bob", "BRL")
		a2 := open(t, "Dave", "USD")

		_, err := account.SplitValue([]account.Account{a1, a2},
			decimal.MustParse("10.00"), weights("0.5", "0.5"), account.Account.Deposit)
		require.ErrorIs(t, err, account.ErrUnsupportedCurrency)
	})

	t.Run("no accounts", func(t *testing.T) {
		_, err := account.SplitValue(nil, decimal.MustParse("10.00"), nil, account.Account.Deposit)
		require.ErrorIs(t, err, account.ErrInvalidDistribution)
	})
}
