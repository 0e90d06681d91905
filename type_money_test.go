package idlefund

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := M(100, "USD")
	b := M(40, "USD")

	if got, want := a.Add(b), M(140, "USD"); !got.Equal(want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := a.Sub(b), M(60, "USD"); !got.Equal(want) {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if got, want := a.Mul(Q(3)), M(300, "USD"); !got.Equal(want) {
		t.Errorf("Mul = %s, want %s", got, want)
	}
	if got, want := a.Scale(decimal.NewFromFloat(1.5)), M(150, "USD"); !got.Equal(want) {
		t.Errorf("Scale = %s, want %s", got, want)
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	a := M(100, "USD")
	weak := M(50, "")
	if got := a.Add(weak); got.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", got.Currency())
	}
}

func TestMoney_DivPriceFloor(t *testing.T) {
	idle := M(1000, "USD")
	price := M(300, "USD")
	if got := idle.DivPrice(price).Floor(); !got.Equal(Q(3)) {
		t.Errorf("whole shares = %s, want 3", got)
	}
}

func TestMoney_String(t *testing.T) {
	if got, want := M(8500, "USD").String(), "$8,500.00"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if got, want := M(-12.5, "USD").SignedString(), "-$12.50"; got != want {
		t.Errorf("SignedString = %q, want %q", got, want)
	}
	if got, want := M(0, "USD").SignedString(), "-"; got != want {
		t.Errorf("SignedString = %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	if info := Classify("AAPL"); info.Region != "US" || info.Growth {
		t.Errorf("AAPL = %+v", info)
	}
	if info := Classify("PLTR"); !info.Growth {
		t.Errorf("PLTR = %+v, want growth", info)
	}
	if info := Classify("SHEL.L"); info.Region != "UK" || info.Currency != "GBP" {
		t.Errorf("SHEL.L = %+v", info)
	}
	// Unknown symbols default to US blue chips.
	if info := Classify("ZZZZ"); info.Region != "US" || info.Currency != "USD" || info.Growth {
		t.Errorf("ZZZZ = %+v", info)
	}
}

func TestDefaultUniverse(t *testing.T) {
	base := DefaultUniverse(false)
	if len(base) != 21 {
		t.Errorf("base universe has %d symbols, want 21", len(base))
	}
	for _, sym := range base {
		if Classify(sym).Growth {
			t.Errorf("base universe contains growth stock %s", sym)
		}
	}

	withGrowth := DefaultUniverse(true)
	if len(withGrowth) != 36 {
		t.Errorf("growth universe has %d symbols, want 36", len(withGrowth))
	}
}
