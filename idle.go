package idlefund

import "github.com/shopspring/decimal"

// IdleFundsResult is the outcome of an idle-funds detection pass.
type IdleFundsResult struct {
	TotalBalance   Money // TotalBalance is the cash balance inspected.
	MonthlyAverage Money // MonthlyAverage is the estimated monthly spending.
	SafetyNet      Money // SafetyNet is one month of spending kept aside.
	IdleFunds      Money // IdleFunds is the full amount above the safety net.
	Threshold      Money // Threshold is the balance at which detection triggers.
}

// DetectIdleFunds compares the cash balance against the spending pattern and
// reports the portion that exceeds a one-month safety net. A nil pattern
// falls back to the configured monthly spend. It returns nil when the
// excess is below the minimum investment amount. The reported idle amount is
// always the full excess; callers cap what they actually invest with
// Config.ClampInvestment.
func DetectIdleFunds(cash Money, pattern *SpendingPattern, cfg Config) *IdleFundsResult {
	monthly := cfg.FallbackMonthlySpend
	if pattern != nil {
		monthly = pattern.MonthlyAverage
	}

	safetyNet := monthly
	threshold := monthly.Scale(decimal.NewFromFloat(1 + cfg.UnusedBalanceThreshold))

	idle := cash.Sub(safetyNet)
	if idle.LessThan(cfg.MinInvestmentAmount) {
		return nil
	}

	return &IdleFundsResult{
		TotalBalance:   cash,
		MonthlyAverage: monthly,
		SafetyNet:      safetyNet,
		IdleFunds:      idle,
		Threshold:      threshold,
	}
}
