package idlefund

import "testing"

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name       string
		volatility float64
		growth     bool
		region     string
		want       RiskLevel
		warned     bool
	}{
		{"calm US blue chip", 0.15, false, "US", RiskLow, false},
		{"calm UK blue chip", 0.15, false, "UK", RiskLow, false},
		{"calm foreign blue chip", 0.15, false, "Europe", RiskLow, true},
		{"calm growth stock", 0.15, true, "US", RiskMedium, true},
		{"calm foreign growth stock", 0.15, true, "Europe", RiskMedium, true},
		{"moderate blue chip", 0.25, false, "US", RiskMedium, false},
		{"moderate foreign growth", 0.25, true, "Asia", RiskHigh, true},
		{"volatile anything", 0.45, false, "US", RiskHigh, false},
		{"extreme anything", 0.60, true, "US", RiskExtreme, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, warning := ClassifyRisk(tc.volatility, tc.growth, tc.region)
			if level != tc.want {
				t.Errorf("level = %s, want %s", level, tc.want)
			}
			if (warning != "") != tc.warned {
				t.Errorf("warning = %q, warned want %v", warning, tc.warned)
			}
		})
	}
}

func TestAssessRisk_Buckets(t *testing.T) {
	beta := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		trend  Trend
		rsi    float64
		vol    float64
		volume VolumeDirection
		beta   *float64
		want   RiskLevel
	}{
		// bullish(1) + oversold(0) + low vol(1) + increasing(1) = 3
		{"best case", TrendBullish, 25, 0.1, VolumeIncreasing, nil, RiskLow},
		// bullish(1) + neutral rsi(1) + low vol(1) + increasing(1) = 4, bucket edge
		{"low bucket edge", TrendBullish, 50, 0.1, VolumeIncreasing, nil, RiskLow},
		// bearish(2) + neutral rsi(1) + medium vol(2) + decreasing(2) = 7, bucket edge
		{"medium bucket edge", TrendBearish, 50, 0.3, VolumeDecreasing, nil, RiskMedium},
		// bearish(2) + overbought(2) + high vol(3) + decreasing(2) + beta(1) = 10, bucket edge
		{"high bucket edge", TrendBearish, 75, 0.5, VolumeDecreasing, beta(1.2), RiskHigh},
		// bearish(2) + overbought(2) + high vol(3) + decreasing(2) + beta(2) = 11
		{"extreme", TrendBearish, 75, 0.5, VolumeDecreasing, beta(1.8), RiskExtreme},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AssessRisk(tc.trend, tc.rsi, tc.vol, tc.volume, tc.beta); got != tc.want {
				t.Errorf("AssessRisk = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name   string
		trend  Trend
		rsi    float64
		vol    float64
		volume VolumeDirection
		want   string
	}{
		// bullish(2) + oversold(2) + increasing(1) + low vol(1) = 6
		{"strong buy", TrendBullish, 25, 0.1, VolumeIncreasing, "Strong Buy"},
		// bullish(2) + neutral rsi(1) + increasing(1) = 4
		{"buy", TrendBullish, 50, 0.3, VolumeIncreasing, "Buy"},
		// bearish(0) + neutral rsi(1) + low vol(1) = 2
		{"hold", TrendBearish, 50, 0.1, VolumeDecreasing, "Hold"},
		// bearish(0) + overbought(0) + decreasing(0) + high vol(0) = 0
		{"sell", TrendBearish, 80, 0.5, VolumeDecreasing, "Sell"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Recommend(tc.trend, tc.rsi, tc.vol, tc.volume); got != tc.want {
				t.Errorf("Recommend = %q, want %q", got, tc.want)
			}
		})
	}
}
