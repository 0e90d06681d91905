package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/date"
	"github.com/idlefund/idlefund/renderer"
)

type suggestCmd struct {
	amount  float64
	growth  bool
	symbols string
	window  int
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "rank investment suggestions for the idle cash" }
func (*suggestCmd) Usage() string {
	return `ifd suggest [-a <amount>] [-growth] [-symbols <s1,s2,...>]

  Screens a universe of global stocks and ranks them for the idle amount.
  Without -a the amount is taken from the idle-funds detection.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount to invest (defaults to the detected idle funds)")
	f.BoolVar(&c.growth, "growth", false, "Include growth stocks in the screening")
	f.StringVar(&c.symbols, "symbols", "", "Comma-separated symbols to screen instead of the default universe")
	f.IntVar(&c.window, "w", 30, "Spending estimation window in days")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	idle := idlefund.M(c.amount, *currency)
	if c.amount == 0 {
		ledger, err := DecodeLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		cfg := idlefund.DefaultConfig(*currency)
		pattern := idlefund.EstimateSpending(ledger.Transactions(), c.window, date.Today())
		if pattern == nil {
			pattern = cfg.FallbackPattern()
		}
		result := idlefund.DetectIdleFunds(ledger.CashBalance(), pattern, cfg)
		if result == nil {
			fmt.Println("No idle funds detected, nothing to invest.")
			return subcommands.ExitSuccess
		}
		idle = cfg.ClampInvestment(result.IdleFunds)
	}

	market, err := MarketProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var symbols []string
	if c.symbols != "" {
		for _, s := range strings.Split(c.symbols, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
	}

	ranker := &idlefund.Ranker{Market: market, News: idlefund.NewGoogleNewsSource()}
	suggestions, err := ranker.Rank(ctx, idle, symbols, c.growth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SuggestionsMarkdown(idle, suggestions))
	return subcommands.ExitSuccess
}
