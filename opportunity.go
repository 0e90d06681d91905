package idlefund

import (
	"context"
	"fmt"
)

// OpportunityAnalysis is the deep-dive view of a single stock against an
// amount to invest.
type OpportunityAnalysis struct {
	Symbol           string
	CompanyName      string
	CurrentPrice     Money
	SharesAffordable Quantity
	InvestmentAmount Money

	Trend       Trend
	RSI         float64
	Volatility  float64
	VolumeTrend VolumeDirection

	MarketCap     float64
	PERatio       *float64
	DividendYield float64
	Beta          *float64
	Sector        string
	Industry      string

	RiskLevel      RiskLevel
	Recommendation string
}

// AnalyzeOpportunity runs a deep-dive technical analysis of one symbol over
// the last 90 trading days: moving average trend, RSI, annualized volatility
// and volume direction, folded into a risk level and a recommendation.
func AnalyzeOpportunity(ctx context.Context, market MarketDataProvider, symbol string, amount Money) (*OpportunityAnalysis, error) {
	candles, err := market.History(ctx, symbol, 90)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch history for %s: %w", symbol, err)
	}
	if len(candles) < 31 {
		return nil, fmt.Errorf("not enough price history for %s: got %d days", symbol, len(candles))
	}

	fund, err := market.Fundamentals(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch fundamentals for %s: %w", symbol, err)
	}

	closes := make([]float64, len(candles))
	volumes := make([]int64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
		volumes[i] = c.Volume
	}

	trend := TrendBearish
	if SMA(closes, 7) > SMA(closes, 30) {
		trend = TrendBullish
	}

	volume := VolumeDecreasing
	if VolumeTrend(volumes, 1) > 1 {
		volume = VolumeIncreasing
	}

	rsi := RSI(closes, 14)
	volatility := AnnualizedVolatility(DailyReturns(closes))

	if closes[len(closes)-1] <= 0 {
		return nil, fmt.Errorf("no usable closing price for %s", symbol)
	}

	info := Classify(symbol)
	price := M(closes[len(closes)-1], info.Currency)
	shares := amount.DivPrice(price).Floor()
	if shares.IsNegative() {
		shares = Q(0)
	}

	name := fund.CompanyName
	if name == "" {
		name = symbol
	}

	analysis := &OpportunityAnalysis{
		Symbol:           symbol,
		CompanyName:      name,
		CurrentPrice:     price,
		SharesAffordable: shares,
		InvestmentAmount: price.Mul(shares),
		Trend:            trend,
		RSI:              rsi,
		Volatility:       volatility,
		VolumeTrend:      volume,
		MarketCap:        fund.MarketCap,
		PERatio:          fund.PERatio,
		DividendYield:    fund.DividendYield,
		Beta:             fund.Beta,
		Sector:           fund.Sector,
		Industry:         fund.Industry,
	}
	analysis.RiskLevel = AssessRisk(trend, rsi, volatility, volume, fund.Beta)
	analysis.Recommendation = Recommend(trend, rsi, volatility, volume)
	return analysis, nil
}
