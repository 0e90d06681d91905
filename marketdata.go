package idlefund

import (
	"context"
	"time"

	"github.com/idlefund/idlefund/date"
)

// Quote is the latest known price of a security.
type Quote struct {
	Price Money
	Time  time.Time
}

// Candle is one day of trading for a security.
type Candle struct {
	Day    date.Date
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Fundamentals are the slow-moving facts about a company. Pointer fields are
// nil when the data source does not report them.
type Fundamentals struct {
	CompanyName   string
	Sector        string
	Industry      string
	MarketCap     float64
	PERatio       *float64
	DividendYield float64
	Beta          *float64
}

// MarketDataProvider serves prices, history and company facts for symbols.
// Implementations are expected to be safe for concurrent use.
type MarketDataProvider interface {
	// Quote returns the latest price for the symbol.
	Quote(ctx context.Context, symbol string) (Quote, error)
	// History returns up to days of daily candles ending at the most recent
	// trading day, oldest first.
	History(ctx context.Context, symbol string, days int) ([]Candle, error)
	// Fundamentals returns the company facts for the symbol.
	Fundamentals(ctx context.Context, symbol string) (Fundamentals, error)
}

// NewsItem is a single article returned by a news search.
type NewsItem struct {
	Title   string
	Snippet string
	Link    string
	Source  string
	Date    string
}

// NewsSource finds recent news articles. A source with no credentials
// configured returns empty results rather than an error, so callers degrade
// to neutral sentiment.
type NewsSource interface {
	// SearchStock returns recent articles about one stock.
	SearchStock(ctx context.Context, symbol, companyName string, daysBack int) ([]NewsItem, error)
	// SearchMarket returns recent articles about one market region
	// ("global", "us", "eu" or "asia").
	SearchMarket(ctx context.Context, market string, daysBack int) ([]NewsItem, error)
}
