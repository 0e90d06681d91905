package idlefund

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// Suggestion is one ranked investment candidate for an idle-cash amount.
type Suggestion struct {
	Symbol      string
	CompanyName string
	Price       Money
	Region      string
	Category    string
	Sector      string
	Industry    string

	RiskLevel   RiskLevel
	RiskWarning string
	DailyReturn Percent
	Volatility  float64

	Volume        int64
	MarketCap     float64
	PERatio       *float64
	DividendYield float64
	IsGrowth      bool

	// SharesAffordable is the whole number of shares the idle amount buys.
	SharesAffordable Quantity
	// InvestmentAmount is SharesAffordable at the current price.
	InvestmentAmount Money

	// News enrichment, filled after ranking.
	NewsSentiment          Sentiment
	NewsScore              float64
	NewsAvailable          bool
	RecentHeadlines        []string
	RecommendationStrength float64
}

// Ranker screens a symbol universe against an idle-cash amount and produces
// ranked suggestions.
type Ranker struct {
	Market MarketDataProvider
	News   NewsSource // optional, nil disables news enrichment

	// Parallelism bounds the number of in-flight market data fetches.
	// Zero means 4.
	Parallelism int
	// FetchTimeout bounds each per-symbol fetch. Zero means 30s.
	FetchTimeout time.Duration

	// HistoryDays is the candle window used for volatility and returns.
	// Zero means 30.
	HistoryDays int
}

func (r *Ranker) parallelism() int {
	if r.Parallelism <= 0 {
		return 4
	}
	return r.Parallelism
}

func (r *Ranker) fetchTimeout() time.Duration {
	if r.FetchTimeout <= 0 {
		return 30 * time.Second
	}
	return r.FetchTimeout
}

func (r *Ranker) historyDays() int {
	if r.HistoryDays <= 0 {
		return 30
	}
	return r.HistoryDays
}

// Rank screens the given symbols and returns suggestions ordered by best
// daily return first, ties broken by region then by risk level, both
// ascending. Symbols whose market data cannot be fetched are skipped with a
// log line rather than failing the whole run. When symbols is nil the
// default universe is screened. The result is enriched with news sentiment
// when a news source is configured.
func (r *Ranker) Rank(ctx context.Context, idle Money, symbols []string, includeGrowth bool) ([]Suggestion, error) {
	if symbols == nil {
		symbols = DefaultUniverse(includeGrowth)
	} else if !includeGrowth {
		kept := symbols[:0:0]
		for _, sym := range symbols {
			if !Classify(sym).Growth {
				kept = append(kept, sym)
			}
		}
		symbols = kept
	}

	results := make([]*Suggestion, len(symbols))
	sem := make(chan struct{}, r.parallelism())
	var wg sync.WaitGroup

	for i, sym := range symbols {
		wg.Add(1)
		go func(i int, sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fctx, cancel := context.WithTimeout(ctx, r.fetchTimeout())
			defer cancel()

			s, err := r.screen(fctx, idle, sym)
			if err != nil {
				log.Printf("skipping %s: %v", sym, err)
				return
			}
			results[i] = s
		}(i, sym)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, s := range results {
		if s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	// Best performer first, then diversify by region, then prefer lower risk.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.DailyReturn != b.DailyReturn {
			return a.DailyReturn > b.DailyReturn
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.RiskLevel < b.RiskLevel
	})

	r.enhanceWithNews(ctx, suggestions)
	return suggestions, nil
}

// screen builds one suggestion from market data. Any fetch error disqualifies
// the symbol; missing fields within a successful response degrade silently.
func (r *Ranker) screen(ctx context.Context, idle Money, symbol string) (*Suggestion, error) {
	candles, err := r.Market.History(ctx, symbol, r.historyDays())
	if err != nil {
		return nil, err
	}
	if len(candles) < 2 {
		return nil, errNotEnoughHistory
	}

	fund, err := r.Market.Fundamentals(ctx, symbol)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	last, prev := closes[len(closes)-1], closes[len(closes)-2]
	if last <= 0 {
		return nil, errNoUsablePrice
	}
	var dailyReturn float64
	if prev != 0 {
		dailyReturn = (last - prev) / prev
	}
	volatility := AnnualizedVolatility(DailyReturns(closes))

	info := Classify(symbol)
	level, warning := ClassifyRisk(volatility, info.Growth, info.Region)

	price := M(last, info.Currency)
	shares := idle.DivPrice(price).Floor()
	if shares.IsNegative() {
		shares = Q(0)
	}

	category := "Blue Chip"
	if info.Growth {
		category = "Growth"
	}
	name := fund.CompanyName
	if name == "" {
		name = symbol
	}

	return &Suggestion{
		Symbol:           symbol,
		CompanyName:      name,
		Price:            price,
		Region:           info.Region,
		Category:         category,
		Sector:           fund.Sector,
		Industry:         fund.Industry,
		RiskLevel:        level,
		RiskWarning:      warning,
		DailyReturn:      Percent(dailyReturn),
		Volatility:       volatility,
		Volume:           candles[len(candles)-1].Volume,
		MarketCap:        fund.MarketCap,
		PERatio:          fund.PERatio,
		DividendYield:    fund.DividendYield,
		IsGrowth:         info.Growth,
		SharesAffordable: shares,
		InvestmentAmount: price.Mul(shares),
		NewsSentiment:    SentimentNeutral,
	}, nil
}

// enhanceWithNews annotates each suggestion with the news tone around its
// stock and nudges the recommendation strength by ±0.1 within [0, 1]. A
// failed or unconfigured news lookup leaves the suggestion neutral.
func (r *Ranker) enhanceWithNews(ctx context.Context, suggestions []Suggestion) {
	for i := range suggestions {
		s := &suggestions[i]
		s.RecommendationStrength = 0.5

		if r.News == nil {
			continue
		}
		items, err := r.News.SearchStock(ctx, s.Symbol, s.CompanyName, 7)
		if err != nil {
			log.Printf("could not get news for %s: %v", s.Symbol, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		analysis := AnalyzeSentiment(items)
		s.NewsSentiment = analysis.Overall
		s.NewsScore = analysis.AverageScore
		s.NewsAvailable = true
		for _, item := range items[:min(3, len(items))] {
			s.RecentHeadlines = append(s.RecentHeadlines, item.Title)
		}

		switch analysis.Overall {
		case SentimentPositive:
			s.RecommendationStrength = min(s.RecommendationStrength+0.1, 1.0)
		case SentimentNegative:
			s.RecommendationStrength = max(s.RecommendationStrength-0.1, 0.0)
		}
	}
}

// MarketSentiment polls the regional market news and aggregates the tone.
// Without a news source it returns an all-neutral result.
func (r *Ranker) MarketSentiment(ctx context.Context) MarketSentiment {
	regional := make(map[string]SentimentAnalysis, len(marketRegions))
	for _, region := range marketRegions {
		var items []NewsItem
		if r.News != nil {
			var err error
			items, err = r.News.SearchMarket(ctx, region, 3)
			if err != nil {
				log.Printf("could not get %s market news: %v", region, err)
				items = nil
			}
		}
		regional[region] = AnalyzeSentiment(items)
	}
	return aggregateMarketSentiment(regional)
}

// Partition splits ranked suggestions into blue-chip and growth lists,
// preserving order.
func Partition(suggestions []Suggestion) (blueChip, growth []Suggestion) {
	for _, s := range suggestions {
		if s.IsGrowth {
			growth = append(growth, s)
		} else {
			blueChip = append(blueChip, s)
		}
	}
	return blueChip, growth
}

type rankError string

func (e rankError) Error() string { return string(e) }

const (
	errNotEnoughHistory = rankError("not enough price history")
	errNoUsablePrice    = rankError("no usable closing price")
)
