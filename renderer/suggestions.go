package renderer

import (
	"bytes"
	"fmt"

	"github.com/idlefund/idlefund"
	md "github.com/nao1215/markdown"
)

// SuggestionsMarkdown renders ranked investment suggestions, split into
// blue-chip and growth sections.
func SuggestionsMarkdown(idle idlefund.Money, suggestions []idlefund.Suggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Suggestions")
	doc.PlainText(fmt.Sprintf("Screened for %s of idle funds.", idle))

	if len(suggestions) == 0 {
		doc.PlainText("No suggestions available: market data could not be fetched for any symbol.")
		return doc.String()
	}

	blueChip, growth := idlefund.Partition(suggestions)
	if len(blueChip) > 0 {
		doc.H2("Blue Chip")
		doc.Table(suggestionTable(blueChip))
	}
	if len(growth) > 0 {
		doc.H2("Growth")
		doc.Table(suggestionTable(growth))
	}

	for _, s := range suggestions {
		if s.RiskWarning != "" {
			doc.PlainText(fmt.Sprintf("%s %s: %s", md.Bold("Note"), s.Symbol, s.RiskWarning))
		}
	}
	return doc.String()
}

func suggestionTable(suggestions []idlefund.Suggestion) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{
			"Symbol",
			"Company",
			"Price",
			"Region",
			"Risk",
			"Daily Return",
			"Shares",
			"News",
		},
	}
	for _, s := range suggestions {
		news := "-"
		if s.NewsAvailable {
			news = string(s.NewsSentiment)
		}
		table.Rows = append(table.Rows, []string{
			s.Symbol,
			s.CompanyName,
			s.Price.String(),
			s.Region,
			s.RiskLevel.String(),
			s.DailyReturn.SignedString(),
			s.SharesAffordable.String(),
			news,
		})
	}
	return table
}

// SentimentMarkdown renders the market-wide news sentiment.
func SentimentMarkdown(s idlefund.MarketSentiment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Sentiment")
	doc.PlainText(fmt.Sprintf("Overall tone is %s (score %.2f).", md.Bold(string(s.Overall)), s.Score))

	if len(s.Regional) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Region", "Sentiment", "Score", "Articles"},
		}
		for _, region := range []string{"global", "us", "eu", "asia"} {
			r, ok := s.Regional[region]
			if !ok {
				continue
			}
			table.Rows = append(table.Rows, []string{
				region,
				string(r.Sentiment),
				fmt.Sprintf("%.2f", r.Score),
				fmt.Sprint(r.Articles),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}

// OpportunityMarkdown renders a deep-dive analysis of one stock.
func OpportunityMarkdown(a *idlefund.OpportunityAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", a.CompanyName, a.Symbol))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Recommendation"), md.Bold(a.Recommendation)},
		Rows: [][]string{
			{"Current Price", a.CurrentPrice.String()},
			{"Shares Affordable", a.SharesAffordable.String()},
			{"Investment Amount", a.InvestmentAmount.String()},
			{"Risk Level", a.RiskLevel.String()},
		},
	})

	doc.H2("Technical Signals")
	rows := [][]string{
		{"Trend", string(a.Trend)},
		{"RSI (14)", fmt.Sprintf("%.1f", a.RSI)},
		{"Annualized Volatility", fmt.Sprintf("%.1f%%", a.Volatility*100)},
		{"Volume", string(a.VolumeTrend)},
	}
	if a.Beta != nil {
		rows = append(rows, []string{"Beta", fmt.Sprintf("%.2f", *a.Beta)})
	}
	if a.PERatio != nil {
		rows = append(rows, []string{"P/E Ratio", fmt.Sprintf("%.1f", *a.PERatio)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Signal", "Value"},
		Rows:      rows,
	})

	if a.Sector != "" {
		doc.PlainText(fmt.Sprintf("Sector: %s / %s", a.Sector, a.Industry))
	}
	return doc.String()
}

// Transaction renders a one-line description of a transaction.
func Transaction(tx idlefund.Transaction) string {
	switch t := tx.(type) {
	case idlefund.Buy:
		return fmt.Sprintf("%s bought %s %s at %s", t.When(), t.Shares, t.Symbol, t.Price)
	case idlefund.Sell:
		return fmt.Sprintf("%s sold %s %s at %s", t.When(), t.Shares, t.Symbol, t.Price)
	case idlefund.CashDividend:
		return fmt.Sprintf("%s dividend of %s from %s", t.When(), t.Amount, t.Symbol)
	case idlefund.Deposit:
		return fmt.Sprintf("%s deposited %s", t.When(), t.Amount)
	case idlefund.Withdraw:
		return fmt.Sprintf("%s withdrew %s", t.When(), t.Amount)
	default:
		return fmt.Sprintf("%s %s", tx.When(), tx.What())
	}
}

// LogMarkdown renders the transaction log as an ordered list.
func LogMarkdown(txs []idlefund.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction Log")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	var lines []string
	for _, tx := range txs {
		lines = append(lines, Transaction(tx))
	}
	doc.OrderedList(lines...)
	return doc.String()
}
