package idlefund

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// cache TTLs per kind of market data.
const (
	quoteTTL        = 5 * time.Minute
	historyTTL      = time.Hour
	fundamentalsTTL = 24 * time.Hour
)

// CachedProvider keeps recent market data responses in memory so that
// ranking a large universe does not hammer the upstream API. Entries expire
// per kind: quotes quickly, fundamentals slowly.
type CachedProvider struct {
	base  MarketDataProvider
	cache *ristretto.Cache
}

// NewCachedProvider wraps a provider with an in-memory cache.
func NewCachedProvider(base MarketDataProvider) (*CachedProvider, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create market data cache: %w", err)
	}
	return &CachedProvider{base: base, cache: cache}, nil
}

// Quote returns the cached quote for the symbol, fetching on a miss.
func (p *CachedProvider) Quote(ctx context.Context, symbol string) (Quote, error) {
	key := "quote/" + symbol
	if v, ok := p.cache.Get(key); ok {
		return v.(Quote), nil
	}
	quote, err := p.base.Quote(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	p.cache.SetWithTTL(key, quote, 1, quoteTTL)
	return quote, nil
}

// History returns the cached candles for the symbol and window, fetching on
// a miss.
func (p *CachedProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	key := fmt.Sprintf("history/%s/%d", symbol, days)
	if v, ok := p.cache.Get(key); ok {
		return v.([]Candle), nil
	}
	candles, err := p.base.History(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	p.cache.SetWithTTL(key, candles, int64(len(candles)+1), historyTTL)
	return candles, nil
}

// Fundamentals returns the cached company facts, fetching on a miss.
func (p *CachedProvider) Fundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	key := "fundamentals/" + symbol
	if v, ok := p.cache.Get(key); ok {
		return v.(Fundamentals), nil
	}
	fund, err := p.base.Fundamentals(ctx, symbol)
	if err != nil {
		return Fundamentals{}, err
	}
	p.cache.SetWithTTL(key, fund, 1, fundamentalsTTL)
	return fund, nil
}

// Close releases the cache resources.
func (p *CachedProvider) Close() { p.cache.Close() }
