package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ifd fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, applies available quick-fixes (like resolving missing
  prices), sorts them by date, and writes them back in a canonical JSONL
  format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.CreateTemp(".", "transactions-*.jsonl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := idlefund.EncodeLedger(out, ledger); err != nil {
		out.Close()
		os.Remove(out.Name())
		fmt.Fprintf(os.Stderr, "Error writing formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(out.Name(), *ledgerFile); err != nil {
		os.Remove(out.Name())
		fmt.Fprintf(os.Stderr, "Error replacing ledger file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully formatted %s.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
