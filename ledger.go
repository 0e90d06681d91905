package idlefund

import (
	"fmt"
	"sort"
	"sync"

	"github.com/idlefund/idlefund/date"
)

// QuoteFunc resolves the current market price for a symbol. It is used to
// fill in the price of buy and sell transactions recorded without one.
type QuoteFunc func(symbol string) (Money, error)

// Ledger is the transaction-derived state of a single account: a cash
// balance and per-symbol holdings, both reproducible from the transaction
// log. All methods are safe for concurrent use.
type Ledger struct {
	mu           sync.Mutex
	currency     string
	cash         Money
	holdings     map[string]Quantity
	transactions []Transaction
	quote        QuoteFunc
}

// NewLedger creates an empty ledger in the given currency. The quote function
// is optional; without one, transactions recorded without a price are
// rejected.
func NewLedger(currency string, quote QuoteFunc) *Ledger {
	if quote == nil {
		quote = func(symbol string) (Money, error) {
			return Money{}, fmt.Errorf("no market quote source configured")
		}
	}
	return &Ledger{
		currency: currency,
		cash:     M(0, currency),
		holdings: make(map[string]Quantity),
		quote:    quote,
	}
}

// Currency returns the ledger's accounting currency.
func (l *Ledger) Currency() string { return l.currency }

// Apply validates the transaction, applies its cash and holding effects, and
// appends it to the log. The whole operation is atomic: a failed validation
// leaves the ledger untouched. It returns the transaction as recorded, with
// id, date and price filled in.
func (l *Ledger) Apply(tx Transaction) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := tx.Validate(l)
	if err != nil {
		return tx, err
	}

	switch t := tx.(type) {
	case Buy:
		// Overdraft is allowed: the balance simply goes negative.
		l.cash = l.cash.Sub(t.TotalValue())
		l.holdings[t.Symbol] = l.holdings[t.Symbol].Add(t.Shares)
	case Sell:
		// Proceeds always use the requested share count, but the holding
		// is clamped at zero when selling more than held.
		l.cash = l.cash.Add(t.TotalValue())
		remaining := l.holdings[t.Symbol].Sub(t.Shares)
		if remaining.IsNegative() {
			remaining = Q(0)
		}
		if remaining.IsZero() {
			delete(l.holdings, t.Symbol)
		} else {
			l.holdings[t.Symbol] = remaining
		}
	case CashDividend:
		l.cash = l.cash.Add(t.Amount)
	case Deposit:
		l.cash = l.cash.Add(t.Amount)
	case Withdraw:
		l.cash = l.cash.Sub(t.Amount)
	default:
		return tx, fmt.Errorf("unsupported transaction action %q", tx.What())
	}

	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// SetCashBalance brings the cash balance to the given target by recording a
// deposit or withdrawal for the difference, so the balance stays derivable
// from the log. It returns the adjustment transaction, or nil when the
// balance already matches.
func (l *Ledger) SetCashBalance(target Money) (Transaction, error) {
	l.mu.Lock()
	delta := target.Sub(l.cash)
	l.mu.Unlock()

	if delta.IsZero() {
		return nil, nil
	}

	const memo = "external balance adjustment"
	var tx Transaction
	if delta.IsPositive() {
		tx = NewDeposit(date.Today(), memo, delta)
	} else {
		tx = NewWithdraw(date.Today(), memo, delta.Neg())
	}
	return l.Apply(tx)
}

// CashBalance returns the current cash balance.
func (l *Ledger) CashBalance() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// Position returns the number of shares held for a symbol.
func (l *Ledger) Position(symbol string) Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holdings[symbol]
}

// Holdings returns a copy of the per-symbol share counts.
func (l *Ledger) Holdings() map[string]Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]Quantity, len(l.holdings))
	for sym, q := range l.holdings {
		out[sym] = q
	}
	return out
}

// Symbols returns the held symbols in ascending order.
func (l *Ledger) Symbols() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.holdings))
	for sym := range l.holdings {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Transactions returns a copy of the transaction log in insertion order.
func (l *Ledger) Transactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// TransactionsWithin returns the transactions dated in [from, to], both
// inclusive, in insertion order.
func (l *Ledger) TransactionsWithin(from, to date.Date) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Transaction
	for _, tx := range l.transactions {
		d := tx.When()
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Valuation returns the total account value: cash plus each holding valued
// at the price returned by the lookup.
func (l *Ledger) Valuation(price QuoteFunc) (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := l.cash
	for _, sym := range sortedKeys(l.holdings) {
		p, err := price(sym)
		if err != nil {
			return Money{}, fmt.Errorf("cannot value %s: %w", sym, err)
		}
		total = total.Add(p.Mul(l.holdings[sym]))
	}
	return total, nil
}

func sortedKeys(m map[string]Quantity) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
