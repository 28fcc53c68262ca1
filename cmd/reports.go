package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
	"github.com/rosterfun/playerfolio/renderer"
)

// --- Holding Command ---

type holdingCmd struct {
	all    bool
	tag    string
	batch  string
	search string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the current positions and totals" }
func (*holdingCmd) Usage() string {
	return `holding [-all] [-t <tag>] [-b <batch>] [-s <query>]

  Displays the position table with the portfolio totals. By default only held
  positions are shown; -all includes exited ones.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include positions with no shares held")
	f.StringVar(&c.tag, "t", "", "Only positions carrying this tag")
	f.StringVar(&c.batch, "b", "", "Only positions in this batch")
	f.StringVar(&c.search, "s", "", "Only players whose name contains this text")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	preds := []func(playerfolio.Position) bool{}
	if !c.all {
		preds = append(preds, playerfolio.Held)
	}
	if c.tag != "" {
		tag, err := playerfolio.ParseTag(c.tag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		preds = append(preds, playerfolio.ByTag(tag))
	}
	if c.batch != "" {
		preds = append(preds, playerfolio.ByBatch(c.batch))
	}
	if c.search != "" {
		preds = append(preds, playerfolio.BySearch(c.search))
	}

	var positions []playerfolio.Position
	for p := range b.Ledger().Filtered(playerfolio.And(preds...)) {
		positions = append(positions, p)
	}

	printMarkdown(renderer.HoldingsMarkdown(b.Name(), positions, b.Totals()))
	return subcommands.ExitSuccess
}

// --- Tx Command ---

type txCmd struct {
	player string
	side   string
	period string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "display the trade log" }
func (*txCmd) Usage() string {
	return `tx [-p <player>] [-side buy|sell] [-period day|week|month|quarter|year] [-head <n>] [-tail <n>]

  Displays the journal in recorded order, optionally filtered.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.player, "p", "", "Only trades for this player")
	f.StringVar(&c.side, "side", "", "Only buys or only sells")
	f.StringVar(&c.period, "period", "", "Only trades within the current period")
	f.IntVar(&c.head, "head", 0, "Only the first n trades")
	f.IntVar(&c.tail, "tail", 0, "Only the last n trades")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	accept := func(playerfolio.Trade) bool { return true }
	// Narrowing filters stack with AND semantics.
	if c.player != "" {
		byPlayer := playerfolio.ByPlayer(c.player)
		prev := accept
		accept = func(t playerfolio.Trade) bool { return prev(t) && byPlayer(t) }
	}
	if c.side != "" {
		side, err := playerfolio.ParseSide(c.side)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		bySide := playerfolio.BySide(side)
		prev := accept
		accept = func(t playerfolio.Trade) bool { return prev(t) && bySide(t) }
	}
	if c.period != "" {
		period, err := playerfolio.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		byRange := playerfolio.ByRange(period.Range(playerfolio.Today()))
		prev := accept
		accept = func(t playerfolio.Trade) bool { return prev(t) && byRange(t) }
	}

	var trades []playerfolio.Trade
	for _, t := range b.Journal().Trades(accept) {
		trades = append(trades, t)
	}
	if c.head > 0 && len(trades) > c.head {
		trades = trades[:c.head]
	}
	if c.tail > 0 && len(trades) > c.tail {
		trades = trades[len(trades)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(b.Name(), trades))
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals and cash figures" }
func (*summaryCmd) Usage() string {
	return `summary [-d <date>]

  Displays the aggregate view: market value, cost basis, unrealised and
  realised P&L, ROI, and the cash figures from the settings.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", playerfolio.Today().String(), "Report date (YYYY-MM-DD)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := playerfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(b.Name(), on, b.Totals(), b.Settings()))
	return subcommands.ExitSuccess
}

// --- Snapshot Command ---

type snapshotCmd struct {
	date string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record a point-in-time snapshot of the totals" }
func (*snapshotCmd) Usage() string {
	return `snapshot [-d <date>]

  Records the current totals and cash figures into the history. Taking a
  second snapshot on the same day replaces the first.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", playerfolio.Today().String(), "Snapshot date (YYYY-MM-DD)")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := playerfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	s := b.TakeSnapshot(on)
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Snapshot on %s: value %s, cash %s\n", s.Date, s.Value, s.Cash)
	return subcommands.ExitSuccess
}

// --- History Command ---

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the snapshot history" }
func (*historyCmd) Usage() string {
	return `history

  Displays all recorded snapshots in date order.
`
}

func (*historyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var snapshots []playerfolio.Snapshot
	for s := range b.History().Snapshots() {
		snapshots = append(snapshots, s)
	}
	printMarkdown(renderer.HistoryMarkdown(b.Name(), snapshots))
	return subcommands.ExitSuccess
}
