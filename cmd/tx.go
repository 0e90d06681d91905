package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/idlefund/idlefund"
	"github.com/idlefund/idlefund/date"
)

// txFlags holds the flags shared by all transaction subcommands.
type txFlags struct {
	date string
	memo string
}

func (c *txFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.memo, "memo", "", "Optional note for the transaction")
}

func (c *txFlags) day() (date.Date, error) {
	if c.date == "" {
		return date.Today(), nil
	}
	return date.Parse(c.date)
}

// record validates the transaction against the current ledger and appends it
// to the ledger file.
func record(tx idlefund.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	recorded, err := ledger.Apply(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return EncodeTransaction(recorded)
}

// --- buy ---

type buyCmd struct {
	txFlags
	symbol string
	shares float64
	price  float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a security purchase" }
func (*buyCmd) Usage() string {
	return `ifd buy -s <symbol> -q <shares> [-p <price>] [-d <date>]

  Records a buy. Without -p the current market price is used.
  The purchase is recorded even if it overdraws the cash balance.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.setFlags(f)
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share (defaults to the market price)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var price idlefund.Money
	if c.price != 0 {
		price = idlefund.M(c.price, *currency)
	}
	return record(idlefund.NewBuy(day, c.memo, c.symbol, idlefund.Q(c.shares), price))
}

// --- sell ---

type sellCmd struct {
	txFlags
	symbol string
	shares float64
	price  float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a security sale" }
func (*sellCmd) Usage() string {
	return `ifd sell -s <symbol> -q <shares> [-p <price>] [-d <date>]

  Records a sale. Without -p the current market price is used.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.setFlags(f)
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share (defaults to the market price)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var price idlefund.Money
	if c.price != 0 {
		price = idlefund.M(c.price, *currency)
	}
	return record(idlefund.NewSell(day, c.memo, c.symbol, idlefund.Q(c.shares), price))
}

// --- dividend ---

type dividendCmd struct {
	txFlags
	symbol     string
	amount     float64
	reinvested bool
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a cash dividend" }
func (*dividendCmd) Usage() string {
	return `ifd dividend -s <symbol> -a <amount> [-reinvested] [-d <date>]

  Records a dividend payment credited to the cash balance.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.setFlags(f)
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.Float64Var(&c.amount, "a", 0, "Dividend amount")
	f.BoolVar(&c.reinvested, "reinvested", false, "Mark the dividend as immediately reinvested")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := idlefund.NewCashDividend(day, c.memo, c.symbol, idlefund.M(c.amount, *currency))
	tx.Reinvested = c.reinvested
	return record(tx)
}

// --- deposit ---

type depositCmd struct {
	txFlags
	amount float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit" }
func (*depositCmd) Usage() string {
	return `ifd deposit -a <amount> [-d <date>]

  Records cash added to the account.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.setFlags(f)
	f.Float64Var(&c.amount, "a", 0, "Deposit amount")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(idlefund.NewDeposit(day, c.memo, idlefund.M(c.amount, *currency)))
}

// --- withdraw ---

type withdrawCmd struct {
	txFlags
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal" }
func (*withdrawCmd) Usage() string {
	return `ifd withdraw -a <amount> [-d <date>]

  Records cash removed from the account.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.setFlags(f)
	f.Float64Var(&c.amount, "a", 0, "Withdrawal amount")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(idlefund.NewWithdraw(day, c.memo, idlefund.M(c.amount, *currency)))
}

// --- set-cash ---

type setCashCmd struct {
	amount float64
}

func (*setCashCmd) Name() string     { return "set-cash" }
func (*setCashCmd) Synopsis() string { return "set the cash balance to a known external value" }
func (*setCashCmd) Usage() string {
	return `ifd set-cash -a <amount>

  Brings the cash balance to the given value by recording a deposit or a
  withdrawal for the difference, keeping the balance derivable from the log.
`
}

func (c *setCashCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Target cash balance")
}

func (c *setCashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tx, err := ledger.SetCashBalance(idlefund.M(c.amount, *currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if tx == nil {
		fmt.Println("Cash balance already matches, nothing recorded.")
		return subcommands.ExitSuccess
	}
	return EncodeTransaction(tx)
}
