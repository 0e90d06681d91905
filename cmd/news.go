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

type newsCmd struct {
	daysBack int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show news sentiment for a stock or the whole market" }
func (*newsCmd) Usage() string {
	return `ifd news [-days <n>] [<symbol>]

  Without a symbol, polls the regional market news (global, us, eu, asia)
  and reports the aggregate tone. With a symbol, reports the news sentiment
  for that stock. Without Google Search credentials everything is neutral.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.daysBack, "days", 7, "How many days of news to consider")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	news := idlefund.NewGoogleNewsSource()

	if f.NArg() == 0 {
		ranker := &idlefund.Ranker{News: news}
		printMarkdown(renderer.SentimentMarkdown(ranker.MarketSentiment(ctx)))
		return subcommands.ExitSuccess
	}

	symbol := f.Arg(0)
	items, err := news.SearchStock(ctx, symbol, "", c.daysBack)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	analysis := idlefund.AnalyzeSentiment(items)

	fmt.Printf("%s: %s sentiment (score %.2f, %d articles)\n", symbol, analysis.Overall, analysis.AverageScore, analysis.TotalArticles)
	for i, item := range analysis.Items {
		if i == 3 {
			break
		}
		fmt.Printf("  - [%s] %s\n", item.Sentiment, item.Title)
	}
	return subcommands.ExitSuccess
}
