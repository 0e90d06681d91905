package renderer

import (
	"strings"
	"testing"

	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/date"
)

func TestIdleMarkdown(t *testing.T) {
	r := &idlefund.IdleFundsResult{
		TotalBalance:   idlefund.M(10_000, "USD"),
		MonthlyAverage: idlefund.M(1500, "USD"),
		SafetyNet:      idlefund.M(1500, "USD"),
		IdleFunds:      idlefund.M(8500, "USD"),
		Threshold:      idlefund.M(2250, "USD"),
	}
	got := IdleMarkdown(r, nil)
	for _, want := range []string{"# Idle Funds Report", "$8,500.00", "Safety Net"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestIdleMarkdown_NilResult(t *testing.T) {
	got := IdleMarkdown(nil, nil)
	if !strings.Contains(got, "No idle funds detected") {
		t.Errorf("report missing all-clear message:\n%s", got)
	}
}

func TestSuggestionsMarkdown(t *testing.T) {
	suggestions := []idlefund.Suggestion{
		{
			Symbol:           "AAPL",
			CompanyName:      "Apple Inc",
			Price:            idlefund.M(185.50, "USD"),
			Region:           "US",
			RiskLevel:        idlefund.RiskLow,
			SharesAffordable: idlefund.Q(5),
		},
		{
			Symbol:           "PLTR",
			CompanyName:      "Palantir",
			Price:            idlefund.M(30, "USD"),
			Region:           "US",
			RiskLevel:        idlefund.RiskMedium,
			IsGrowth:         true,
			SharesAffordable: idlefund.Q(33),
			RiskWarning:      "Growth stocks can be volatile and may experience significant price swings.",
		},
	}
	got := SuggestionsMarkdown(idlefund.M(1000, "USD"), suggestions)
	for _, want := range []string{"## Blue Chip", "## Growth", "AAPL", "PLTR", "Growth stocks can be volatile"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestTransaction(t *testing.T) {
	buy := idlefund.NewBuy(date.New(2025, 1, 10), "", "AAPL", idlefund.Q(10), idlefund.M(185.50, "USD"))
	got := Transaction(buy)
	if !strings.Contains(got, "bought 10 AAPL") {
		t.Errorf("Transaction = %q", got)
	}
}

func TestSentimentMarkdown(t *testing.T) {
	s := idlefund.MarketSentiment{
		Overall: idlefund.SentimentPositive,
		Score:   0.3,
		Regional: map[string]idlefund.RegionalSentiment{
			"us": {Sentiment: idlefund.SentimentPositive, Score: 0.3, Articles: 5},
		},
	}
	got := SentimentMarkdown(s)
	for _, want := range []string{"# Market Sentiment", "positive", "us"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
