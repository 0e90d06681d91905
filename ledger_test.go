package idlefund

import (
	"testing"

	"github.com/idlefund/idlefund/date"
)

func quoteAt(price float64) QuoteFunc {
	return func(symbol string) (Money, error) { return M(price, "USD"), nil }
}

func TestLedger_BuyMovesCashAndHoldings(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewDeposit(date.New(2025, 1, 1), "", M(1000, "USD"))); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(3), M(100, "USD"))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	if got, want := l.CashBalance(), M(700, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}
	if got := l.Position("AAPL"); !got.Equal(Q(3)) {
		t.Errorf("holding = %s, want 3", got)
	}
}

func TestLedger_BuyAllowsOverdraft(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(2), M(150, "USD"))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if got, want := l.CashBalance(), M(-300, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}
}

func TestLedger_SellClampsHoldingButCreditsFullProceeds(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(2), M(100, "USD"))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	// Sell 5 while holding only 2.
	if _, err := l.Apply(NewSell(date.New(2025, 1, 3), "", "AAPL", Q(5), M(100, "USD"))); err != nil {
		t.Fatalf("sell failed: %v", err)
	}

	// Proceeds use the requested 5 shares: -200 + 500 = 300.
	if got, want := l.CashBalance(), M(300, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}
	if got := l.Position("AAPL"); !got.IsZero() {
		t.Errorf("holding = %s, want 0", got)
	}
}

func TestLedger_DividendAddsCashOnly(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewCashDividend(date.New(2025, 1, 5), "", "JNJ", M(42, "USD"))); err != nil {
		t.Fatalf("dividend failed: %v", err)
	}
	if got, want := l.CashBalance(), M(42, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}
	if got := l.Position("JNJ"); !got.IsZero() {
		t.Errorf("holding = %s, want 0", got)
	}
}

func TestLedger_ApplyRejectsInvalidWithoutMutating(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(-1), M(100, "USD"))); err == nil {
		t.Fatal("expected error for negative share count")
	}
	if got := l.CashBalance(); !got.IsZero() {
		t.Errorf("cash = %s, want 0 after rejected transaction", got)
	}
	if got := len(l.Transactions()); got != 0 {
		t.Errorf("transaction log has %d entries, want 0", got)
	}
}

func TestLedger_ApplyRejectsCurrencyMismatch(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "SAP", Q(2), M(100, "EUR"))); err == nil {
		t.Fatal("expected error for a EUR-priced buy on a USD ledger")
	}
	if _, err := l.Apply(NewDeposit(date.New(2025, 1, 3), "", M(100, "EUR"))); err == nil {
		t.Fatal("expected error for a EUR deposit on a USD ledger")
	}
	if got := l.CashBalance(); !got.IsZero() {
		t.Errorf("cash = %s, want 0 after rejected transactions", got)
	}
	if got := len(l.Transactions()); got != 0 {
		t.Errorf("transaction log has %d entries, want 0", got)
	}
}

func TestLedger_BuyResolvesMissingPrice(t *testing.T) {
	l := NewLedger("USD", quoteAt(50))
	tx, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(2), Money{}))
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	buy := tx.(Buy)
	if !buy.Price.Equal(M(50, "USD")) {
		t.Errorf("price = %s, want $50.00", buy.Price)
	}
	if got, want := l.CashBalance(), M(-100, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}
}

func TestLedger_SetCashBalanceRecordsAdjustment(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewDeposit(date.New(2025, 1, 1), "", M(100, "USD"))); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	tx, err := l.SetCashBalance(M(250, "USD"))
	if err != nil {
		t.Fatalf("SetCashBalance failed: %v", err)
	}
	if _, ok := tx.(Deposit); !ok {
		t.Fatalf("adjustment is %T, want Deposit", tx)
	}
	if got, want := l.CashBalance(), M(250, "USD"); !got.Equal(want) {
		t.Errorf("cash = %s, want %s", got, want)
	}

	tx, err = l.SetCashBalance(M(200, "USD"))
	if err != nil {
		t.Fatalf("SetCashBalance failed: %v", err)
	}
	if _, ok := tx.(Withdraw); !ok {
		t.Fatalf("adjustment is %T, want Withdraw", tx)
	}

	tx, err = l.SetCashBalance(M(200, "USD"))
	if err != nil {
		t.Fatalf("SetCashBalance failed: %v", err)
	}
	if tx != nil {
		t.Errorf("no-op adjustment recorded %T, want nil", tx)
	}

	// Two adjustments plus the initial deposit.
	if got := len(l.Transactions()); got != 3 {
		t.Errorf("transaction log has %d entries, want 3", got)
	}
}

func TestLedger_TransactionsWithin(t *testing.T) {
	l := NewLedger("USD", nil)
	days := []date.Date{
		date.New(2025, 1, 1),
		date.New(2025, 1, 15),
		date.New(2025, 2, 1),
	}
	for _, d := range days {
		if _, err := l.Apply(NewDeposit(d, "", M(10, "USD"))); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}
	}

	got := l.TransactionsWithin(date.New(2025, 1, 10), date.New(2025, 2, 1))
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if !got[0].When().Equal(date.New(2025, 1, 15)) || !got[1].When().Equal(date.New(2025, 2, 1)) {
		t.Errorf("wrong window: %v, %v", got[0].When(), got[1].When())
	}
}

func TestLedger_Valuation(t *testing.T) {
	l := NewLedger("USD", nil)
	if _, err := l.Apply(NewDeposit(date.New(2025, 1, 1), "", M(1000, "USD"))); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if _, err := l.Apply(NewBuy(date.New(2025, 1, 2), "", "AAPL", Q(4), M(100, "USD"))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	total, err := l.Valuation(quoteAt(110))
	if err != nil {
		t.Fatalf("Valuation failed: %v", err)
	}
	// 600 cash + 4 × 110.
	if want := M(1040, "USD"); !total.Equal(want) {
		t.Errorf("valuation = %s, want %s", total, want)
	}
}
