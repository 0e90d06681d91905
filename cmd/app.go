// Package cmd implements the CLI application to track cash and surface
// idle-funds investment suggestions.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&dividendCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&setCashCmd{}, "transactions")

	c.Register(&logCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&idleCmd{}, "analysis")
	c.Register(&suggestCmd{}, "analysis")
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&newsCmd{}, "analysis")
	c.Register(&briefCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var currency = flag.String("currency", "USD", "Accounting currency of the ledger")

// DecodeLedger loads the ledger from the app ledger file. A missing file
// yields an empty ledger.
func DecodeLedger() (*idlefund.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return idlefund.NewLedger(*currency, quoteFunc()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return idlefund.DecodeLedger(f, *currency, quoteFunc())
}

// EncodeTransaction appends a single transaction into the app default ledger file.
func EncodeTransaction(tx idlefund.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := idlefund.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// MarketProvider returns the cached market data provider for the app.
func MarketProvider() (idlefund.MarketDataProvider, error) {
	base, err := idlefund.NewEODHDProvider()
	if err != nil {
		return nil, err
	}
	return idlefund.NewCachedProvider(base)
}

// quoteFunc resolves quotes lazily so commands that never need a market
// price work without an API key.
func quoteFunc() idlefund.QuoteFunc {
	var provider idlefund.MarketDataProvider
	return func(symbol string) (idlefund.Money, error) {
		if provider == nil {
			p, err := MarketProvider()
			if err != nil {
				return idlefund.Money{}, err
			}
			provider = p
		}
		q, err := provider.Quote(context.Background(), symbol)
		if err != nil {
			return idlefund.Money{}, err
		}
		return q.Price, nil
	}
}
