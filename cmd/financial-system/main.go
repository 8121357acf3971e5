// Command financial-system is a small demonstration of the ledger core:
// it opens a few accounts, moves money between them, and prints the
// resulting balances. Catalog and exchange-rate data are wired here, not
// in the core packages.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/govalues/decimal"

	"github.com/lucaslrolim/financial-system/account"
	"github.com/lucaslrolim/financial-system/exchange"
	"github.com/lucaslrolim/financial-system/money"
)

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL"`
	// RatesURL points at an exchangeratesapi-style endpoint. When empty,
	// the international transfer step is skipped.
	RatesURL string `env:"RATES_URL"`
	RatesKey string `env:"RATES_KEY"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c Config) error {
	cat := money.ISO4217

	alice, err := account.Open(uuid.New(), "Alice", "BRL", cat)
	if err != nil {
		return err
	}
	bob, err := account.Open(uuid.New(), "Bob", "BRL", cat)
	if err != nil {
		return err
	}
	carol, err := account.Open(uuid.New(), "Carol", "BRL", cat)
	if err != nil {
		return err
	}

	alice, err = alice.Deposit(decimal.MustParse("100.00"), "BRL")
	if err != nil {
		return err
	}

	alice, bob, err = account.Transfer(alice, bob, decimal.MustParse("30.00"))
	if err != nil {
		return err
	}
	slog.Info("transferred", "from", alice.Owner, "to", bob.Owner, "amount", "BRL 30.00")

	weights := []decimal.Decimal{decimal.MustParse("0.5"), decimal.MustParse("0.5")}
	alice, rs, err := account.SplitTransfer(alice, []account.Account{bob, carol}, decimal.MustParse("50.00"), weights)
	if err != nil {
		return err
	}
	bob, carol = rs[0], rs[1]
	slog.Info("split", "from", alice.Owner, "receivers", len(rs), "amount", "BRL 50.00")

	if c.RatesURL != "" {
		dave, err := account.Open(uuid.New(), "Dave", "USD", cat)
		if err != nil {
			return err
		}
		conv := exchange.NewExchanger(exchange.NewClient(c.RatesURL, c.RatesKey, slog.Default()), cat)
		bob, dave, err = account.TransferInternational(ctx, conv, bob, dave, "USD", decimal.MustParse("5.00"))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", dave.Owner, dave.Balance.Display())
	}

	for _, a := range []account.Account{alice, bob, carol} {
		fmt.Printf("%s: %s\n", a.Owner, a.Balance.Display())
	}
	return nil
}
