package idlefund

// Config holds the tunable thresholds of the idle-funds analysis. Use
// DefaultConfig to get a ready-to-use instance.
type Config struct {
	// UnusedBalanceThreshold is the extra margin kept on top of one month of
	// spending, as a ratio. 0.5 means idle detection starts at 150% of the
	// monthly average.
	UnusedBalanceThreshold float64

	// MinInvestmentAmount is the smallest idle amount worth reporting.
	MinInvestmentAmount Money

	// MaxInvestmentAmount caps the amount suggested for investment.
	MaxInvestmentAmount Money

	// Fallback spending averages, used when the transaction history is too
	// thin to estimate a pattern.
	FallbackDailySpend   Money
	FallbackWeeklySpend  Money
	FallbackMonthlySpend Money
}

// ClampInvestment caps an investable amount at the configured maximum.
func (c Config) ClampInvestment(m Money) Money {
	if m.GreaterThan(c.MaxInvestmentAmount) {
		return c.MaxInvestmentAmount
	}
	return m
}

// FallbackPattern returns the configured fallback spending averages as a
// pattern, for accounts whose history is too thin to estimate one.
func (c Config) FallbackPattern() *SpendingPattern {
	return &SpendingPattern{
		DailyAverage:   c.FallbackDailySpend,
		WeeklyAverage:  c.FallbackWeeklySpend,
		MonthlyAverage: c.FallbackMonthlySpend,
	}
}

// DefaultConfig returns the standard thresholds in the given currency.
func DefaultConfig(currency string) Config {
	return Config{
		UnusedBalanceThreshold: 0.5,
		MinInvestmentAmount:    M(100, currency),
		MaxInvestmentAmount:    M(10_000, currency),
		FallbackDailySpend:     M(50, currency),
		FallbackWeeklySpend:    M(350, currency),
		FallbackMonthlySpend:   M(1_500, currency),
	}
}
