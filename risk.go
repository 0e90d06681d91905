package idlefund

// RiskLevel grades an investment from low to extreme. The ordering of the
// constants is meaningful: a higher value is a riskier investment.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskExtreme
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// domesticRegions are markets that carry no foreign-market risk premium.
var domesticRegions = map[string]bool{"US": true, "UK": true}

// ClassifyRisk grades a symbol from its annualized volatility, adjusted by a
// base premium for growth stocks and foreign markets. It returns the level
// and a human-readable warning, empty when there is nothing to warn about.
//
// This is the screening-grade classification used when ranking many symbols
// at once. AssessRisk is the deep-dive counterpart; the two score on
// different inputs and are not interchangeable.
func ClassifyRisk(volatility float64, isGrowth bool, region string) (RiskLevel, string) {
	baseRisk := 0.0
	if isGrowth {
		baseRisk += 1
	}
	foreign := !domesticRegions[region]
	if foreign {
		baseRisk += 0.5
	}

	var level RiskLevel
	switch {
	case volatility < 0.2:
		if baseRisk < 1 {
			level = RiskLow
		} else {
			level = RiskMedium
		}
	case volatility < 0.3:
		if baseRisk < 1.5 {
			level = RiskMedium
		} else {
			level = RiskHigh
		}
	case volatility < 0.5:
		level = RiskHigh
	default:
		level = RiskExtreme
	}

	var warning string
	if isGrowth {
		warning = "Growth stocks can be volatile and may experience significant price swings."
	}
	if foreign {
		if warning != "" {
			warning += " "
		}
		warning += "International investments may involve currency and political risks."
	}
	return level, warning
}

// Trend is the direction of the short moving average relative to the long one.
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
)

// VolumeDirection tells whether the latest trading volume runs above or below
// the period average.
type VolumeDirection string

const (
	VolumeIncreasing VolumeDirection = "increasing"
	VolumeDecreasing VolumeDirection = "decreasing"
)

// AssessRisk grades a single deep-dive analysis by scoring its technical
// signals. Beta only contributes when known. The score buckets are fixed:
// up to 4 is low, up to 7 medium, up to 10 high, beyond that extreme.
func AssessRisk(trend Trend, rsi, volatility float64, volume VolumeDirection, beta *float64) RiskLevel {
	score := 0

	if trend == TrendBullish {
		score += 1
	} else {
		score += 2
	}

	switch {
	case rsi > 70: // overbought
		score += 2
	case rsi < 30: // oversold, potential opportunity
		score += 0
	default:
		score += 1
	}

	switch {
	case volatility > 0.4:
		score += 3
	case volatility > 0.25:
		score += 2
	default:
		score += 1
	}

	if volume == VolumeIncreasing {
		score += 1
	} else {
		score += 2
	}

	if beta != nil {
		if *beta > 1.5 {
			score += 2
		} else if *beta > 1.0 {
			score += 1
		}
	}

	switch {
	case score <= 4:
		return RiskLow
	case score <= 7:
		return RiskMedium
	case score <= 10:
		return RiskHigh
	default:
		return RiskExtreme
	}
}

// Recommend turns a deep-dive analysis into an investment recommendation by
// rewarding bullish trend, favorable RSI, rising volume and low volatility.
func Recommend(trend Trend, rsi, volatility float64, volume VolumeDirection) string {
	score := 0
	if trend == TrendBullish {
		score += 2
	}
	if rsi < 30 {
		score += 2
	} else if rsi <= 70 {
		score += 1
	}
	if volume == VolumeIncreasing {
		score += 1
	}
	if volatility < 0.25 {
		score += 1
	}

	switch {
	case score >= 6:
		return "Strong Buy"
	case score >= 4:
		return "Buy"
	case score >= 2:
		return "Hold"
	default:
		return "Sell"
	}
}
