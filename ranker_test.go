package idlefund

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/idlefund/idlefund/date"
)

// fakeMarket serves canned candles and fundamentals, and fails for symbols
// listed in broken.
type fakeMarket struct {
	closes map[string][]float64
	broken map[string]bool
}

func (f *fakeMarket) Quote(ctx context.Context, symbol string) (Quote, error) {
	closes, ok := f.closes[symbol]
	if !ok || f.broken[symbol] {
		return Quote{}, fmt.Errorf("no data for %s", symbol)
	}
	return Quote{Price: M(closes[len(closes)-1], Classify(symbol).Currency)}, nil
}

func (f *fakeMarket) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	if f.broken[symbol] {
		return nil, fmt.Errorf("upstream error for %s", symbol)
	}
	closes, ok := f.closes[symbol]
	if !ok {
		return nil, fmt.Errorf("no data for %s", symbol)
	}
	day := date.New(2025, 1, 1)
	candles := make([]Candle, len(closes))
	for i, c := range closes {
		candles[i] = Candle{Day: day.Add(i), Close: c, Volume: 1000}
	}
	return candles, nil
}

func (f *fakeMarket) Fundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	if f.broken[symbol] {
		return Fundamentals{}, fmt.Errorf("upstream error for %s", symbol)
	}
	return Fundamentals{CompanyName: symbol + " Inc"}, nil
}

// fakeNews returns one canned article per symbol.
type fakeNews struct {
	headlines map[string]string
}

func (f *fakeNews) SearchStock(ctx context.Context, symbol, companyName string, daysBack int) ([]NewsItem, error) {
	title, ok := f.headlines[symbol]
	if !ok {
		return nil, nil
	}
	return []NewsItem{{Title: title}}, nil
}

func (f *fakeNews) SearchMarket(ctx context.Context, market string, daysBack int) ([]NewsItem, error) {
	return nil, nil
}

// flatSeries returns n closes at a constant price.
func flatSeries(price float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = price
	}
	return s
}

// risingLastDay returns a flat series whose last close gained ret.
func risingLastDay(price float64, n int, ret float64) []float64 {
	s := flatSeries(price, n)
	s[n-1] = price * (1 + ret)
	return s
}

func TestRanker_SortsByReturnRegionRisk(t *testing.T) {
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL":   risingLastDay(100, 30, 0.01),
		"MSFT":   risingLastDay(100, 30, 0.03),
		"ASML":   risingLastDay(100, 30, 0.02),
		"SHEL.L": risingLastDay(100, 30, 0.02),
	}}
	r := &Ranker{Market: market}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "MSFT", "ASML", "SHEL.L"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d suggestions, want 4", len(got))
	}

	// MSFT has the best return, then the 2% tie broken by region
	// (Europe before UK), then AAPL.
	want := []string{"MSFT", "ASML", "SHEL.L", "AAPL"}
	for i, sym := range want {
		if got[i].Symbol != sym {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].Symbol, sym)
		}
	}
}

func TestRanker_SkipsBrokenSymbols(t *testing.T) {
	market := &fakeMarket{
		closes: map[string][]float64{
			"AAPL": risingLastDay(100, 30, 0.01),
			"MSFT": risingLastDay(100, 30, 0.02),
		},
		broken: map[string]bool{"MSFT": true},
	}
	r := &Ranker{Market: market}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "MSFT"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "AAPL" {
		t.Fatalf("got %v, want just AAPL", got)
	}
}

func TestRanker_SkipsZeroPricedSymbol(t *testing.T) {
	// A latest close of zero is malformed upstream data: that symbol is
	// skipped like any other fetch failure, the siblings still rank.
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL": {100, 100, 0},
		"MSFT": flatSeries(100, 30),
	}}
	r := &Ranker{Market: market}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "MSFT"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "MSFT" {
		t.Fatalf("got %v, want just MSFT", got)
	}
}

func TestRanker_RankTwiceIsIdentical(t *testing.T) {
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL":   risingLastDay(100, 30, 0.01),
		"MSFT":   risingLastDay(100, 30, 0.03),
		"ASML":   risingLastDay(100, 30, 0.02),
		"SHEL.L": risingLastDay(100, 30, 0.02),
	}}
	r := &Ranker{Market: market}
	symbols := []string{"AAPL", "MSFT", "ASML", "SHEL.L"}

	first, err := r.Rank(context.Background(), M(1000, "USD"), symbols, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	second, err := r.Rank(context.Background(), M(1000, "USD"), symbols, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two ranks over the same data differ:\n first %v\nsecond %v", first, second)
	}
}

func TestRanker_SharesAffordable(t *testing.T) {
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL": flatSeries(300, 30),
	}}
	r := &Ranker{Market: market}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if !got[0].SharesAffordable.Equal(Q(3)) {
		t.Errorf("shares affordable = %s, want 3", got[0].SharesAffordable)
	}
	if want := M(900, "USD"); !got[0].InvestmentAmount.Equal(want) {
		t.Errorf("investment amount = %s, want %s", got[0].InvestmentAmount, want)
	}
}

func TestRanker_ExcludesGrowthUnlessRequested(t *testing.T) {
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL": flatSeries(100, 30),
		"PLTR": flatSeries(100, 30),
	}}
	r := &Ranker{Market: market}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "PLTR"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "AAPL" {
		t.Fatalf("got %v, want just AAPL", got)
	}

	got, err = r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "PLTR"}, true)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2 with growth included", len(got))
	}
}

func TestRanker_NewsAdjustsRecommendationStrength(t *testing.T) {
	market := &fakeMarket{closes: map[string][]float64{
		"AAPL": flatSeries(100, 30),
		"MSFT": flatSeries(100, 30),
		"NVDA": flatSeries(100, 30),
	}}
	news := &fakeNews{headlines: map[string]string{
		"AAPL": "Profit surge and strong growth rally",
		"MSFT": "Shares crash in broad decline and loss",
	}}
	r := &Ranker{Market: market, News: news}

	got, err := r.Rank(context.Background(), M(1000, "USD"), []string{"AAPL", "MSFT", "NVDA"}, false)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	bysym := make(map[string]Suggestion, len(got))
	for _, s := range got {
		bysym[s.Symbol] = s
	}

	if s := bysym["AAPL"]; s.NewsSentiment != SentimentPositive || !almostEqual(s.RecommendationStrength, 0.6) {
		t.Errorf("AAPL news = %s/%v, want positive/0.6", s.NewsSentiment, s.RecommendationStrength)
	}
	if s := bysym["MSFT"]; s.NewsSentiment != SentimentNegative || !almostEqual(s.RecommendationStrength, 0.4) {
		t.Errorf("MSFT news = %s/%v, want negative/0.4", s.NewsSentiment, s.RecommendationStrength)
	}
	if s := bysym["NVDA"]; s.NewsAvailable || !almostEqual(s.RecommendationStrength, 0.5) {
		t.Errorf("NVDA news = available=%v/%v, want unavailable/0.5", s.NewsAvailable, s.RecommendationStrength)
	}
}

func TestPartition(t *testing.T) {
	suggestions := []Suggestion{
		{Symbol: "AAPL"},
		{Symbol: "PLTR", IsGrowth: true},
		{Symbol: "MSFT"},
	}
	blue, growth := Partition(suggestions)
	if len(blue) != 2 || blue[0].Symbol != "AAPL" || blue[1].Symbol != "MSFT" {
		t.Errorf("blue chips = %v", blue)
	}
	if len(growth) != 1 || growth[0].Symbol != "PLTR" {
		t.Errorf("growth = %v", growth)
	}
}

func TestAnalyzeOpportunity(t *testing.T) {
	// 60 flat days then a steady climb keeps SMA7 above SMA30.
	closes := flatSeries(100, 60)
	for i := 0; i < 30; i++ {
		closes = append(closes, 100+float64(i))
	}
	m := &fakeMarket{closes: map[string][]float64{"AAPL": closes}}
	analysis, err := AnalyzeOpportunity(context.Background(), m, "AAPL", M(1000, "USD"))
	if err != nil {
		t.Fatalf("AnalyzeOpportunity failed: %v", err)
	}
	if analysis.Trend != TrendBullish {
		t.Errorf("trend = %s, want bullish", analysis.Trend)
	}
	if analysis.Recommendation == "" {
		t.Error("missing recommendation")
	}
	if analysis.SharesAffordable.IsZero() {
		t.Error("expected affordable shares for $1000 at ~$129")
	}
}

func TestAnalyzeOpportunity_ZeroPrice(t *testing.T) {
	closes := flatSeries(100, 40)
	closes[len(closes)-1] = 0
	m := &fakeMarket{closes: map[string][]float64{"AAPL": closes}}
	if _, err := AnalyzeOpportunity(context.Background(), m, "AAPL", M(1000, "USD")); err == nil {
		t.Fatal("expected error for a zero closing price")
	}
}
