package idlefund

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	if got := SMA(values, 3); !almostEqual(got, 4) {
		t.Errorf("SMA(3) = %v, want 4", got)
	}
	if got := SMA(values, 5); !almostEqual(got, 3) {
		t.Errorf("SMA(5) = %v, want 3", got)
	}
	if got := SMA(values, 6); got != 0 {
		t.Errorf("SMA(6) = %v, want 0 for short series", got)
	}
}

func TestDailyReturns(t *testing.T) {
	got := DailyReturns([]float64{100, 110, 99})
	want := []float64{0.10, -0.10}
	if len(got) != len(want) {
		t.Fatalf("got %d returns, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("return[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if DailyReturns([]float64{100}) != nil {
		t.Error("single close should yield no returns")
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Returns +1% and -1%: mean 0, sample stddev 0.01×√2.
	returns := []float64{0.01, -0.01}
	want := 0.01 * math.Sqrt(2) * math.Sqrt(252)
	if got := AnnualizedVolatility(returns); !almostEqual(got, want) {
		t.Errorf("AnnualizedVolatility = %v, want %v", got, want)
	}
	if got := AnnualizedVolatility([]float64{0.01}); got != 0 {
		t.Errorf("AnnualizedVolatility of one return = %v, want 0", got)
	}
}

func TestRSI(t *testing.T) {
	// Fifteen straight gains: no losses, RSI pegs at 100.
	up := make([]float64, 15)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	if got := RSI(up, 14); got != 100 {
		t.Errorf("RSI of steady gains = %v, want 100", got)
	}

	// Alternating ±1 moves: equal gains and losses, RSI 50.
	alt := []float64{100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100}
	if got := RSI(alt, 14); !almostEqual(got, 50) {
		t.Errorf("RSI of alternating moves = %v, want 50", got)
	}

	if got := RSI([]float64{100, 101}, 14); got != 50 {
		t.Errorf("RSI of short series = %v, want the 50 default", got)
	}
}

func TestVolumeTrend(t *testing.T) {
	volumes := []int64{100, 100, 100, 200}
	// Last day 200 against an overall mean of 125.
	if got, want := VolumeTrend(volumes, 1), 200.0/125.0; !almostEqual(got, want) {
		t.Errorf("VolumeTrend = %v, want %v", got, want)
	}
	if got := VolumeTrend(nil, 1); got != 0 {
		t.Errorf("VolumeTrend of empty series = %v, want 0", got)
	}
}
