package idlefund

import "math"

// tradingDaysPerYear is the factor used to annualize daily volatility.
const tradingDaysPerYear = 252

// SMA returns the simple moving average of the last period values.
// It returns 0 when there are fewer values than the period.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}
	var sum float64
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period)
}

// DailyReturns converts a close-price series into day-over-day relative
// returns. The result has one fewer element than the input.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, closes[i]/prev-1)
	}
	return returns
}

// AnnualizedVolatility returns the sample standard deviation of the daily
// returns scaled to a yearly horizon. It returns 0 when there are fewer
// than two returns.
func AnnualizedVolatility(returns []float64) float64 {
	n := len(returns)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)

	var sq float64
	for _, r := range returns {
		d := r - mean
		sq += d * d
	}
	// Sample variance, n-1 in the denominator.
	std := math.Sqrt(sq / float64(n-1))
	return std * math.Sqrt(tradingDaysPerYear)
}

// RSI computes the relative strength index over the last period price moves
// using simple averages of gains and losses. It returns 50 when there is not
// enough history, and 100 when there were no losses at all.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50
	}
	var gains, losses float64
	window := closes[len(closes)-period-1:]
	for i := 1; i < len(window); i++ {
		delta := window[i] - window[i-1]
		if delta > 0 {
			gains += delta
		} else {
			losses -= delta
		}
	}
	if losses == 0 {
		return 100
	}
	rs := (gains / float64(period)) / (losses / float64(period))
	return 100 - 100/(1+rs)
}

// VolumeTrend compares the average volume of the last recent days against
// the average over the whole series. It returns the ratio recent/overall,
// or 0 when the series is empty or has zero overall volume.
func VolumeTrend(volumes []int64, recent int) float64 {
	if len(volumes) == 0 || recent <= 0 {
		return 0
	}
	if recent > len(volumes) {
		recent = len(volumes)
	}
	var total float64
	for _, v := range volumes {
		total += float64(v)
	}
	overall := total / float64(len(volumes))
	if overall == 0 {
		return 0
	}
	var sum float64
	for _, v := range volumes[len(volumes)-recent:] {
		sum += float64(v)
	}
	return (sum / float64(recent)) / overall
}
