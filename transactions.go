package idlefund

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/idlefund/idlefund/date"
	"github.com/shopspring/decimal"
)

// Action is a typed string for identifying transaction kinds.
type Action string

// Actions used for identifying transactions.
const (
	ActionBuy      Action = "buy"
	ActionSell     Action = "sell"
	ActionDividend Action = "dividend"
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
)

// Transaction defines the common interface for all types of financial events
// that can be recorded in the ledger.
type Transaction interface {
	ID() string      // ID returns the unique identifier of the transaction.
	What() Action    // What returns the action of the transaction (e.g. "buy", "sell").
	When() date.Date // When returns the date on which the transaction occurred.
	// TotalValue returns the gross cash amount moved by the transaction.
	// For a buy or sell this is shares×price; for cash events it is the amount.
	TotalValue() Money
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

type baseTx struct {
	Ref    string    `json:"id"`             // Ref is the unique transaction identifier.
	Action Action    `json:"action"`         // Action specifies the kind of transaction.
	Date   date.Date `json:"date"`           // Date is the date when the transaction took place.
	Memo   string    `json:"memo,omitempty"` // Memo provides an optional note for the transaction.
}

func (t baseTx) ID() string      { return t.Ref }
func (t baseTx) What() Action    { return t.Action }
func (t baseTx) When() date.Date { return t.Date }

// MarshalJSON implements the json.Marshaler interface for baseTx.
func (t baseTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.Ref)
	w.Append("action", t.Action)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base fields. It sets the date to today and assigns a
// fresh id when they are zero. It's meant to be embedded in other transaction
// validation methods.
func (t *baseTx) Validate() {
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if t.Ref == "" {
		t.Ref = uuid.NewString()
	}
}

// secTx is a component for security-based transactions (buy, sell, dividend).
type secTx struct {
	baseTx
	Symbol string `json:"symbol"` // Symbol is the ticker of the security involved.
}

// Validate checks the security fields on top of the base ones.
func (t *secTx) Validate() error {
	t.baseTx.Validate()
	if t.Symbol == "" {
		return errors.New("transaction symbol is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for secTx.
func (t secTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Append("symbol", t.Symbol)
	return w.MarshalJSON()
}

// --- Buy ---

// Buy represents a transaction where a quantity of a security is purchased at
// a price per share.
type Buy struct {
	secTx
	Shares Quantity // Shares is the number of shares bought.
	Price  Money    // Price is the price per share.
}

// NewBuy creates a new Buy transaction. A zero price means "use the current
// market quote", resolved during validation.
func NewBuy(day date.Date, memo, symbol string, shares Quantity, price Money) Buy {
	return Buy{
		secTx:  secTx{baseTx: baseTx{Action: ActionBuy, Date: day, Memo: memo}, Symbol: symbol},
		Shares: shares,
		Price:  price,
	}
}

func (t Buy) TotalValue() Money { return t.Price.Mul(t.Shares) }

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secTx == o.secTx && t.Shares.Equal(o.Shares) && t.Price.Equal(o.Price)
}

// Validate checks the Buy transaction's fields. It ensures the share count is
// positive and resolves a missing price from the ledger's quote source.
// It deliberately does not check the cash balance: overdrafts are allowed.
func (t Buy) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.secTx.Validate(); err != nil {
		return t, err
	}
	if !t.Shares.IsPositive() {
		return t, fmt.Errorf("buy transaction shares must be positive, got %s", t.Shares)
	}
	if t.Price.IsNegative() {
		return t, fmt.Errorf("buy transaction price must not be negative, got %s", t.Price)
	}
	if t.Price.IsZero() {
		price, err := ledger.quote(t.Symbol)
		if err != nil {
			return t, fmt.Errorf("cannot resolve market price for %s: %w", t.Symbol, err)
		}
		t.Price = price
	}
	if t.Price.Currency() == "" {
		t.Price = M(t.Price.value, ledger.Currency())
	}
	if t.Price.Currency() != ledger.Currency() {
		return t, fmt.Errorf("transaction price in %s but the ledger accounts in %s", t.Price.Currency(), ledger.Currency())
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secTx)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
// It handles the custom structure where price and currency are separate fields.
func (t *Buy) UnmarshalJSON(data []byte) error {
	var temp struct {
		secTx
		priceTx
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.secTx = temp.secTx
	t.Shares = temp.Shares
	t.Price = temp.Money()
	return nil
}

// --- Sell ---

// Sell represents a transaction where a quantity of a security is sold at a
// price per share.
type Sell struct {
	secTx
	Shares Quantity // Shares is the number of shares requested to sell.
	Price  Money    // Price is the price per share.
}

// NewSell creates a new Sell transaction. A zero price means "use the current
// market quote", resolved during validation.
func NewSell(day date.Date, memo, symbol string, shares Quantity, price Money) Sell {
	return Sell{
		secTx:  secTx{baseTx: baseTx{Action: ActionSell, Date: day, Memo: memo}, Symbol: symbol},
		Shares: shares,
		Price:  price,
	}
}

func (t Sell) TotalValue() Money { return t.Price.Mul(t.Shares) }

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secTx == o.secTx && t.Shares.Equal(o.Shares) && t.Price.Equal(o.Price)
}

// Validate checks the Sell transaction's fields. Selling more shares than held
// is legal: the holding is clamped at zero while the cash proceeds still use
// the requested share count. That quirk is applied in Ledger.Apply, not here.
func (t Sell) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.secTx.Validate(); err != nil {
		return t, err
	}
	if !t.Shares.IsPositive() {
		return t, fmt.Errorf("sell transaction shares must be positive, got %s", t.Shares)
	}
	if t.Price.IsNegative() {
		return t, fmt.Errorf("sell transaction price must not be negative, got %s", t.Price)
	}
	if t.Price.IsZero() {
		price, err := ledger.quote(t.Symbol)
		if err != nil {
			return t, fmt.Errorf("cannot resolve market price for %s: %w", t.Symbol, err)
		}
		t.Price = price
	}
	if t.Price.Currency() == "" {
		t.Price = M(t.Price.value, ledger.Currency())
	}
	if t.Price.Currency() != ledger.Currency() {
		return t, fmt.Errorf("transaction price in %s but the ledger accounts in %s", t.Price.Currency(), ledger.Currency())
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secTx)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
func (t *Sell) UnmarshalJSON(data []byte) error {
	var temp struct {
		secTx
		priceTx
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.secTx = temp.secTx
	t.Shares = temp.Shares
	t.Price = temp.Money()
	return nil
}

// --- CashDividend ---

// CashDividend represents a dividend payment credited to the cash balance.
//
// The legacy record format reused the share count field to carry a cash
// amount for dividends. The tagged variant keeps the observable behavior
// (cash grows by the amount, holdings are untouched) with an unambiguous
// representation.
type CashDividend struct {
	secTx
	Amount     Money // Amount is the total cash credited.
	Reinvested bool  // Reinvested marks a dividend that was immediately reinvested.
}

// NewCashDividend creates a new CashDividend transaction.
func NewCashDividend(day date.Date, memo, symbol string, amount Money) CashDividend {
	return CashDividend{
		secTx:  secTx{baseTx: baseTx{Action: ActionDividend, Date: day, Memo: memo}, Symbol: symbol},
		Amount: amount,
	}
}

func (t CashDividend) TotalValue() Money { return t.Amount }

func (t CashDividend) Equal(other Transaction) bool {
	o, ok := other.(CashDividend)
	return ok && t.secTx == o.secTx && t.Amount.Equal(o.Amount) && t.Reinvested == o.Reinvested
}

// Validate checks the CashDividend transaction's fields.
func (t CashDividend) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.secTx.Validate(); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, errors.New("dividend must have a positive amount")
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.value, ledger.Currency())
	}
	if t.Amount.Currency() != ledger.Currency() {
		return t, fmt.Errorf("transaction amount in %s but the ledger accounts in %s", t.Amount.Currency(), ledger.Currency())
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for CashDividend.
func (t CashDividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secTx)
	w.EmbedFrom(t.Amount)
	w.Optional("reinvested", t.Reinvested)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for CashDividend.
func (t *CashDividend) UnmarshalJSON(data []byte) error {
	var temp struct {
		secTx
		amountTx
		Reinvested bool `json:"reinvested,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.secTx = temp.secTx
	t.Amount = temp.Money()
	t.Reinvested = temp.Reinvested
	return nil
}

// --- Deposit ---

// Deposit represents cash added to the account from outside.
//
// External balance adjustments are recorded as deposits or withdrawals rather
// than overwriting the balance, so the cash balance stays transaction-derived
// and auditable.
type Deposit struct {
	baseTx
	Amount Money // Amount is the quantity of cash deposited.
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(day date.Date, memo string, amount Money) Deposit {
	return Deposit{
		baseTx: baseTx{Action: ActionDeposit, Date: day, Memo: memo},
		Amount: amount,
	}
}

func (t Deposit) TotalValue() Money { return t.Amount }

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the Deposit transaction's fields.
func (t Deposit) Validate(ledger *Ledger) (Transaction, error) {
	t.baseTx.Validate()
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("deposit amount must be positive, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.value, ledger.Currency())
	}
	if t.Amount.Currency() != ledger.Currency() {
		return t, fmt.Errorf("transaction amount in %s but the ledger accounts in %s", t.Amount.Currency(), ledger.Currency())
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Deposit.
func (t *Deposit) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		amountTx
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Amount = temp.Money()
	return nil
}

// --- Withdraw ---

// Withdraw represents cash removed from the account.
type Withdraw struct {
	baseTx
	Amount Money // Amount is the quantity of cash withdrawn.
}

// NewWithdraw creates a new Withdraw transaction.
func NewWithdraw(day date.Date, memo string, amount Money) Withdraw {
	return Withdraw{
		baseTx: baseTx{Action: ActionWithdraw, Date: day, Memo: memo},
		Amount: amount,
	}
}

func (t Withdraw) TotalValue() Money { return t.Amount }

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the Withdraw transaction's fields. Withdrawing more than
// the current balance is legal and leaves the account overdrawn.
func (t Withdraw) Validate(ledger *Ledger) (Transaction, error) {
	t.baseTx.Validate()
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("withdraw amount must be positive, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.value, ledger.Currency())
	}
	if t.Amount.Currency() != ledger.Currency() {
		return t, fmt.Errorf("transaction amount in %s but the ledger accounts in %s", t.Amount.Currency(), ledger.Currency())
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Withdraw.
func (t *Withdraw) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		amountTx
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Amount = temp.Money()
	return nil
}

// priceTx is a specialized struct to read share-priced transactions where
// price and currency are flat fields.
type priceTx struct {
	Shares   Quantity        `json:"shares"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (p priceTx) Money() Money { return M(p.Price, p.Currency) }

// amountTx is a specialized struct to read cash transactions where amount and
// currency are flat fields.
type amountTx struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountTx) Money() Money { return M(a.Amount, a.Currency) }
