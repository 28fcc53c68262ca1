package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

// Deposit and withdraw are conveniences over the settings: trades never touch
// the cash figures, these two commands are the only way they move besides an
// explicit settings patch.

// --- Deposit Command ---

type depositCmd struct {
	amount float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into the book" }
func (*depositCmd) Usage() string {
	return `deposit -a <amount>

  Adds to the deposit total and the cash balance.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount of cash deposited")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	s := b.Settings()
	amount := playerfolio.M(c.amount, b.Currency())
	deposits := s.DepositTotal.Add(amount)
	cash := s.CashBalance.Add(amount)
	b.UpdateSettings(playerfolio.SettingsPatch{DepositTotal: &deposits, CashBalance: &cash})

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s, cash balance %s\n", amount, cash)
	return subcommands.ExitSuccess
}

// --- Withdraw Command ---

type withdrawCmd struct {
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from the book" }
func (*withdrawCmd) Usage() string {
	return `withdraw -a <amount>

  Adds to the withdrawn total and subtracts from the cash balance.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount of cash withdrawn")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	s := b.Settings()
	amount := playerfolio.M(c.amount, b.Currency())
	withdrawn := s.WithdrawnTotal.Add(amount)
	cash := s.CashBalance.Sub(amount)
	b.UpdateSettings(playerfolio.SettingsPatch{WithdrawnTotal: &withdrawn, CashBalance: &cash})

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s, cash balance %s\n", amount, cash)
	return subcommands.ExitSuccess
}

// --- Settings Command ---

type settingsCmd struct {
	cash     float64
	fees     float64
	currency string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or patch the book settings" }
func (*settingsCmd) Usage() string {
	return `settings [-cash <amount>] [-fees <amount>] [-currency <code>]

  Without flags, prints the current settings. With flags, patches only the
  named fields; the others keep their value.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cash, "cash", -1, "Set the cash balance")
	f.Float64Var(&c.fees, "fees", -1, "Set the fees paid total")
	f.StringVar(&c.currency, "currency", "", "Set the base currency code")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var patch playerfolio.SettingsPatch
	patched := false
	if c.cash >= 0 {
		cash := playerfolio.M(c.cash, b.Currency())
		patch.CashBalance = &cash
		patched = true
	}
	if c.fees >= 0 {
		fees := playerfolio.M(c.fees, b.Currency())
		patch.FeesPaid = &fees
		patched = true
	}
	if c.currency != "" {
		patch.BaseCurrency = &c.currency
		patched = true
	}

	if patched {
		b.UpdateSettings(patch)
		if err := SaveBook(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s := b.Settings()
	fmt.Printf("Base currency:   %s\n", s.BaseCurrency)
	fmt.Printf("Cash balance:    %s\n", s.CashBalance)
	fmt.Printf("Deposit total:   %s\n", s.DepositTotal)
	fmt.Printf("Withdrawn total: %s\n", s.WithdrawnTotal)
	fmt.Printf("Fees paid:       %s\n", s.FeesPaid)
	return subcommands.ExitSuccess
}
