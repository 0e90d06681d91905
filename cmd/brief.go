package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/agent"
	"github.com/idlefund/idlefund/date"
	"github.com/idlefund/idlefund/renderer"
	"google.golang.org/genai"
)

type briefCmd struct {
	growth bool
	window int
}

func (*briefCmd) Name() string     { return "brief" }
func (*briefCmd) Synopsis() string { return "draft a spoken-style briefing of the idle-funds analysis" }
func (*briefCmd) Usage() string {
	return `ifd brief [-growth]

  Runs the idle-funds detection and suggestion ranking, then asks Gemini to
  draft a short briefing that could be read out loud. Requires the
  GEMINI_API_KEY environment variable.
`
}

func (c *briefCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.growth, "growth", false, "Include growth stocks in the screening")
	f.IntVar(&c.window, "w", 30, "Spending estimation window in days")
}

func (c *briefCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	reports := []string{renderer.IdleMarkdown(result, pattern)}

	if result != nil {
		market, err := MarketProvider()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		invest := cfg.ClampInvestment(result.IdleFunds)
		ranker := &idlefund.Ranker{Market: market, News: idlefund.NewGoogleNewsSource()}
		suggestions, err := ranker.Rank(ctx, invest, nil, c.growth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		reports = append(reports, renderer.SuggestionsMarkdown(invest, suggestions))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}
	drafter := agent.NewScriptDrafter()
	if err := drafter.Start(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	script, err := drafter.Draft(ctx, reports...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(script)
	return subcommands.ExitSuccess
}
