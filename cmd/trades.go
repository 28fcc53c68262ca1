package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

// recordTrade loads the book, records one trade, and saves.
func recordTrade(date, player string, side playerfolio.Side, shares, price, fees float64, notes string) subcommands.ExitStatus {
	day, err := playerfolio.ParseDate(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	cur := b.Currency()

	t, err := b.RecordTrade(day, player, side, playerfolio.Q(shares), playerfolio.M(price, cur), playerfolio.M(fees, cur), notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording trade: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s x %s at %s, net %s\n", t.Side, t.Player, t.Shares, t.Price, t.Net.SignedString())
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	date   string
	player string
	shares float64
	price  float64
	fees   float64
	notes  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -p <player> -q <shares> -v <price> [-d <date>] [-f <fees>] [-n <notes>]

  Purchases player shares. The position's average cost becomes the
  share-weighted mean of the old basis and this purchase.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", playerfolio.Today().String(), "Trade date (YYYY-MM-DD)")
	f.StringVar(&c.player, "p", "", "Player name")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "v", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Fees paid on the trade")
	f.StringVar(&c.notes, "n", "", "An optional note for the trade")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.player == "" || c.shares <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTrade(c.date, c.player, playerfolio.Buy, c.shares, c.price, c.fees, c.notes)
}

// --- Sell Command ---

type sellCmd struct {
	date   string
	player string
	shares float64
	price  float64
	fees   float64
	notes  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -p <player> -q <shares> -v <price> [-d <date>] [-f <fees>] [-n <notes>]

  Sells player shares. Realised P&L accrues against the average cost before
  the sell; the basis of the remaining shares is unchanged. Selling more
  shares than held is rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", playerfolio.Today().String(), "Trade date (YYYY-MM-DD)")
	f.StringVar(&c.player, "p", "", "Player name")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "v", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Fees paid on the trade")
	f.StringVar(&c.notes, "n", "", "An optional note for the trade")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.player == "" || c.shares <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTrade(c.date, c.player, playerfolio.Sell, c.shares, c.price, c.fees, c.notes)
}
