package idlefund

import (
	"testing"

	"github.com/idlefund/idlefund/date"
)

func TestEstimateSpending_NoSpendingReturnsNil(t *testing.T) {
	asOf := date.New(2025, 6, 30)
	// Deposits and plain dividends are not spending.
	txs := []Transaction{
		NewDeposit(date.New(2025, 6, 1), "", M(1000, "USD")),
		NewCashDividend(date.New(2025, 6, 10), "", "JNJ", M(20, "USD")),
	}
	if got := EstimateSpending(txs, 90, asOf); got != nil {
		t.Errorf("EstimateSpending = %+v, want nil", got)
	}
}

func TestEstimateSpending_SingleBuy(t *testing.T) {
	asOf := date.New(2025, 6, 30)
	txs := []Transaction{
		NewBuy(date.New(2025, 6, 10), "", "AAPL", Q(3), M(100, "USD")),
	}
	pattern := EstimateSpending(txs, 90, asOf)
	if pattern == nil {
		t.Fatal("EstimateSpending = nil, want a pattern")
	}
	// One day bucket and one week bucket, both worth $300.
	if want := M(300, "USD"); !pattern.DailyAverage.Equal(want) {
		t.Errorf("daily = %s, want %s", pattern.DailyAverage, want)
	}
	if want := M(300, "USD"); !pattern.WeeklyAverage.Equal(want) {
		t.Errorf("weekly = %s, want %s", pattern.WeeklyAverage, want)
	}
	if want := M(9000, "USD"); !pattern.MonthlyAverage.Equal(want) {
		t.Errorf("monthly = %s, want %s", pattern.MonthlyAverage, want)
	}
}

func TestEstimateSpending_BucketsByDayAndWeek(t *testing.T) {
	asOf := date.New(2025, 6, 30)
	txs := []Transaction{
		// Two buys on the same Monday land in one day bucket.
		NewBuy(date.New(2025, 6, 2), "", "AAPL", Q(1), M(100, "USD")),
		NewBuy(date.New(2025, 6, 2), "", "MSFT", Q(1), M(200, "USD")),
		// One buy the next week.
		NewBuy(date.New(2025, 6, 9), "", "NVDA", Q(1), M(100, "USD")),
	}
	pattern := EstimateSpending(txs, 90, asOf)
	if pattern == nil {
		t.Fatal("EstimateSpending = nil, want a pattern")
	}
	// Day buckets: 300 and 100, average 200.
	if want := M(200, "USD"); !pattern.DailyAverage.Equal(want) {
		t.Errorf("daily = %s, want %s", pattern.DailyAverage, want)
	}
	// Week buckets: 300 and 100, average 200.
	if want := M(200, "USD"); !pattern.WeeklyAverage.Equal(want) {
		t.Errorf("weekly = %s, want %s", pattern.WeeklyAverage, want)
	}
	if want := M(6000, "USD"); !pattern.MonthlyAverage.Equal(want) {
		t.Errorf("monthly = %s, want %s", pattern.MonthlyAverage, want)
	}
}

func TestEstimateSpending_ReinvestedDividendCounts(t *testing.T) {
	asOf := date.New(2025, 6, 30)
	reinvested := NewCashDividend(date.New(2025, 6, 10), "", "JNJ", M(90, "USD"))
	reinvested.Reinvested = true
	txs := []Transaction{reinvested}

	pattern := EstimateSpending(txs, 90, asOf)
	if pattern == nil {
		t.Fatal("EstimateSpending = nil, want a pattern")
	}
	if want := M(90, "USD"); !pattern.DailyAverage.Equal(want) {
		t.Errorf("daily = %s, want %s", pattern.DailyAverage, want)
	}
}

func TestEstimateSpending_IgnoresOutsideWindow(t *testing.T) {
	asOf := date.New(2025, 6, 30)
	txs := []Transaction{
		NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(1), M(500, "USD")), // too old
		NewBuy(date.New(2025, 6, 20), "", "MSFT", Q(1), M(100, "USD")),
	}
	pattern := EstimateSpending(txs, 30, asOf)
	if pattern == nil {
		t.Fatal("EstimateSpending = nil, want a pattern")
	}
	if want := M(100, "USD"); !pattern.DailyAverage.Equal(want) {
		t.Errorf("daily = %s, want %s", pattern.DailyAverage, want)
	}
}
