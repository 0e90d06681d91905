package idlefund

import "strings"

// Sentiment is the tone of a news item or collection of news items.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

var positiveKeywords = []string{
	"growth", "profit", "gain", "rise", "increase", "bullish", "optimistic",
	"strong", "beat", "exceed", "outperform", "upgrade", "buy", "positive",
	"rally", "surge", "boom", "recovery", "expansion",
}

var negativeKeywords = []string{
	"loss", "decline", "fall", "drop", "bearish", "pessimistic", "weak",
	"miss", "underperform", "downgrade", "sell", "negative", "crash",
	"plunge", "recession", "crisis", "concern", "risk", "volatility",
}

// ItemScore is the sentiment of a single news item.
type ItemScore struct {
	Title     string
	Sentiment Sentiment
	Score     float64
	Source    string
}

// SentimentAnalysis is the aggregate sentiment over a set of news items.
type SentimentAnalysis struct {
	Overall       Sentiment
	AverageScore  float64
	Items         []ItemScore
	TotalArticles int
}

// scoreText grades a single text by counting keyword hits. The score is the
// keyword surplus capped at 5, normalized to [-1, 1].
func scoreText(text string) (Sentiment, float64) {
	text = strings.ToLower(text)
	var positives, negatives int
	for _, kw := range positiveKeywords {
		if strings.Contains(text, kw) {
			positives++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(text, kw) {
			negatives++
		}
	}
	switch {
	case positives > negatives:
		return SentimentPositive, float64(min(positives-negatives, 5)) / 5
	case negatives > positives:
		return SentimentNegative, -float64(min(negatives-positives, 5)) / 5
	default:
		return SentimentNeutral, 0
	}
}

// AnalyzeSentiment grades each news item on its title and snippet and
// averages the scores. The overall tone is positive above +0.2, negative
// below -0.2, neutral in between. An empty input yields a neutral analysis
// with zero articles.
func AnalyzeSentiment(items []NewsItem) SentimentAnalysis {
	scores := make([]ItemScore, 0, len(items))
	var total float64
	for _, item := range items {
		sentiment, score := scoreText(item.Title + " " + item.Snippet)
		total += score
		scores = append(scores, ItemScore{
			Title:     item.Title,
			Sentiment: sentiment,
			Score:     score,
			Source:    item.Source,
		})
	}

	analysis := SentimentAnalysis{
		Overall:       SentimentNeutral,
		Items:         scores,
		TotalArticles: len(scores),
	}
	if len(scores) == 0 {
		return analysis
	}
	analysis.AverageScore = total / float64(len(scores))
	switch {
	case analysis.AverageScore > 0.2:
		analysis.Overall = SentimentPositive
	case analysis.AverageScore < -0.2:
		analysis.Overall = SentimentNegative
	}
	return analysis
}

// SymbolSentiment summarizes the news tone around one stock.
type SymbolSentiment struct {
	Symbol          string
	NewsAvailable   bool
	Sentiment       Sentiment
	Score           float64
	TotalArticles   int
	RecentHeadlines []string
	Summary         string
}

// MarketSentiment is the aggregate tone across regional market news.
type MarketSentiment struct {
	Overall  Sentiment
	Score    float64
	Regional map[string]RegionalSentiment
}

// RegionalSentiment is the news tone of one market region.
type RegionalSentiment struct {
	Sentiment Sentiment
	Score     float64
	Articles  int
}

// marketQueries are the canned search queries per market region.
var marketQueries = map[string]string{
	"global": "global stock market news financial markets",
	"us":     "US stock market NYSE NASDAQ S&P 500 Dow Jones",
	"eu":     "European stock market FTSE DAX CAC 40 Euro Stoxx",
	"asia":   "Asian stock market Nikkei Hang Seng Shanghai Composite",
}

// marketRegions lists the regions polled for the market-wide sentiment.
var marketRegions = []string{"global", "us", "eu", "asia"}

// aggregateMarketSentiment folds per-region analyses into a market-wide
// sentiment. Regions without articles are reported neutral and excluded from
// the average. The market-wide cutoffs are tighter than the per-stock ones:
// positive above +0.1, negative below -0.1.
func aggregateMarketSentiment(regional map[string]SentimentAnalysis) MarketSentiment {
	out := MarketSentiment{
		Overall:  SentimentNeutral,
		Regional: make(map[string]RegionalSentiment, len(regional)),
	}
	var total float64
	var counted int
	for region, analysis := range regional {
		out.Regional[region] = RegionalSentiment{
			Sentiment: analysis.Overall,
			Score:     analysis.AverageScore,
			Articles:  analysis.TotalArticles,
		}
		if analysis.TotalArticles > 0 {
			total += analysis.AverageScore
			counted++
		}
	}
	if counted == 0 {
		return out
	}
	out.Score = total / float64(counted)
	switch {
	case out.Score > 0.1:
		out.Overall = SentimentPositive
	case out.Score < -0.1:
		out.Overall = SentimentNegative
	}
	return out
}
