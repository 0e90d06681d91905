package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/date"
	"github.com/idlefund/idlefund/renderer"
)

type idleCmd struct {
	window int
}

func (*idleCmd) Name() string     { return "idle" }
func (*idleCmd) Synopsis() string { return "detect idle cash sitting beyond the spending safety net" }
func (*idleCmd) Usage() string {
	return `ifd idle [-w <days>]

  Estimates the spending pattern from the recent transactions and reports
  how much of the cash balance exceeds one month of expenses.
`
}

func (c *idleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.window, "w", 30, "Spending estimation window in days")
}

func (c *idleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.IdleMarkdown(result, pattern))
	return subcommands.ExitSuccess
}
