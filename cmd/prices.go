package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

// --- Price Command ---

type priceCmd struct {
	player string
	price  float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "record the latest market price for a player" }
func (*priceCmd) Usage() string {
	return `price -p <player> -v <price>

  Records the latest market price. It never changes shares, cost basis or
  realised P&L. Quotes for unknown players create an empty position.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.player, "p", "", "Player name")
	f.Float64Var(&c.price, "v", 0, "Price per share")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.player == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := b.SetPrice(c.player, playerfolio.M(c.price, b.Currency())); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting price: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Priced %s at %s\n", c.player, playerfolio.M(c.price, b.Currency()))
	return subcommands.ExitSuccess
}

// --- Feed Command ---

type feedCmd struct {
	file      string
	itemsPath string
	namePath  string
	pricePath string
}

func (*feedCmd) Name() string     { return "feed" }
func (*feedCmd) Synopsis() string { return "update prices from an exported JSON price feed" }
func (*feedCmd) Usage() string {
	return `feed -f <file> [-items <jsonpath>] [-name <jsonpath>] [-price <jsonpath>]

  Extracts player prices from a JSON export and records them all. The paths
  default to the game's roster export layout ($.players / $.name / $.priceUSD).
`
}

func (c *feedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the JSON feed file")
	f.StringVar(&c.itemsPath, "items", playerfolio.DefaultFeedItemsPath, "jsonpath selecting the list of items")
	f.StringVar(&c.namePath, "name", playerfolio.DefaultFeedNamePath, "jsonpath to the player name within an item")
	f.StringVar(&c.pricePath, "price", playerfolio.DefaultFeedPricePath, "jsonpath to the price within an item")
}

func (c *feedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening feed file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	quotes, err := playerfolio.DecodePriceFeed(r, c.itemsPath, c.namePath, c.pricePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading feed: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	n, err := b.ApplyPriceFeed(quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error applying feed: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %d prices from %s\n", n, c.file)
	return subcommands.ExitSuccess
}
