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

type logCmd struct {
	start string
	end   string
	tail  int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list transactions in the ledger" }
func (*logCmd) Usage() string {
	return `ifd log [-s <start_date>] [-e <end_date>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the range")
	f.StringVar(&c.end, "e", "", "End date of the range (defaults to today)")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var transactions []idlefund.Transaction
	if c.start == "" && c.end == "" {
		transactions = ledger.Transactions()
	} else {
		from := date.Date{}
		if c.start != "" {
			if from, err = date.Parse(c.start); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		to := date.Today()
		if c.end != "" {
			if to, err = date.Parse(c.end); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		transactions = ledger.TransactionsWithin(from, to)
	}

	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.LogMarkdown(transactions))
	fmt.Printf("Cash balance: %s\n", ledger.CashBalance())
	return subcommands.ExitSuccess
}
