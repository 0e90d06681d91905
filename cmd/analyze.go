package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/renderer"
)

type analyzeCmd struct {
	amount float64
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "deep-dive technical analysis of one stock" }
func (*analyzeCmd) Usage() string {
	return `ifd analyze [-a <amount>] <symbol>

  Analyzes a single stock over the last 90 trading days: trend, RSI,
  volatility and volume, folded into a risk level and a recommendation.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 1000, "Amount to invest")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	market, err := MarketProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis, err := idlefund.AnalyzeOpportunity(ctx, market, symbol, idlefund.M(c.amount, *currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OpportunityMarkdown(analysis))
	return subcommands.ExitSuccess
}
