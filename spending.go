package idlefund

import (
	"github.com/idlefund/idlefund/date"
	"github.com/shopspring/decimal"
)

// SpendingPattern summarizes how much cash the account deploys over time.
type SpendingPattern struct {
	DailyAverage   Money
	WeeklyAverage  Money
	MonthlyAverage Money
}

// isSpending reports whether a transaction deploys cash for the purpose of
// the spending estimate. Buys count; dividends only when reinvested.
func isSpending(tx Transaction) bool {
	switch t := tx.(type) {
	case Buy:
		return true
	case CashDividend:
		return t.Reinvested
	default:
		return false
	}
}

type isoWeek struct {
	year, week int
}

// EstimateSpending derives a spending pattern from the transactions of the
// last windowDays before asOf, both inclusive. Spending is bucketed per
// calendar day and per ISO week, averaged over the buckets that actually saw
// spending. The monthly average is the daily average scaled to 30 days, not
// an independent calendar-month bucket. It returns nil when the window holds
// no spending at all.
func EstimateSpending(txs []Transaction, windowDays int, asOf date.Date) *SpendingPattern {
	from := asOf.Add(-windowDays)

	days := make(map[date.Date]Money)
	weeks := make(map[isoWeek]Money)
	var currency string

	for _, tx := range txs {
		if !isSpending(tx) {
			continue
		}
		d := tx.When()
		if d.Before(from) || d.After(asOf) {
			continue
		}
		v := tx.TotalValue()
		if currency == "" {
			currency = v.Currency()
		}
		days[d] = days[d].Add(v)
		y, w := d.ISOWeek()
		wk := isoWeek{year: y, week: w}
		weeks[wk] = weeks[wk].Add(v)
	}

	if len(days) == 0 {
		return nil
	}

	daily := average(days, currency)
	weekly := average(weeks, currency)
	monthly := daily.Scale(decimal.NewFromInt(30))

	return &SpendingPattern{
		DailyAverage:   daily,
		WeeklyAverage:  weekly,
		MonthlyAverage: monthly,
	}
}

func average[K comparable](buckets map[K]Money, currency string) Money {
	total := M(0, currency)
	for _, v := range buckets {
		total = total.Add(v)
	}
	return total.Div(Q(len(buckets)))
}
