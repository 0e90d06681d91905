// Command ifd tracks a cash ledger, detects idle funds and ranks investment
// suggestions.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must run before
// flag.Parse.
func completion() {
	shareFlags := map[string]complete.Predictor{
		"d": predict.Something, "memo": predict.Something,
		"s": predict.Something, "q": predict.Something, "p": predict.Something,
	}
	amountFlags := map[string]complete.Predictor{
		"d": predict.Something, "memo": predict.Something, "a": predict.Something,
	}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":             predict.Files("*.jsonl"),
			"currency":                predict.Set{"USD", "EUR", "GBP"},
			"eodhd-api-key":           predict.Something,
			"google-api-key":          predict.Something,
			"google-search-engine-id": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"buy":      {Flags: shareFlags},
			"sell":     {Flags: shareFlags},
			"dividend": {Flags: amountFlags},
			"deposit":  {Flags: amountFlags},
			"withdraw": {Flags: amountFlags},
			"set-cash": {Flags: map[string]complete.Predictor{"a": predict.Something}},
			"log":      {Flags: map[string]complete.Predictor{"s": predict.Something, "e": predict.Something, "tail": predict.Something}},
			"fmt":      {},
			"idle":     {Flags: map[string]complete.Predictor{"w": predict.Something}},
			"suggest":  {Flags: map[string]complete.Predictor{"a": predict.Something, "growth": predict.Nothing, "symbols": predict.Something, "w": predict.Something}},
			"analyze":  {Flags: map[string]complete.Predictor{"a": predict.Something}, Args: predict.Something},
			"news":     {Flags: map[string]complete.Predictor{"days": predict.Something}, Args: predict.Something},
			"brief":    {Flags: map[string]complete.Predictor{"growth": predict.Nothing, "w": predict.Something}},
			"topic":    {Args: predict.Something},
		},
	}
	c.Complete("ifd")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
