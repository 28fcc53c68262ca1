// Package cmd implements the CLI application to manage a player-share book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")

	c.Register(&priceCmd{}, "prices")
	c.Register(&feedCmd{}, "prices")

	c.Register(&tagCmd{}, "labels")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&snapshotCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&depositCmd{}, "cash")
	c.Register(&withdrawCmd{}, "cash")
	c.Register(&settingsCmd{}, "cash")

	c.Register(&importCmd{}, "data")
	c.Register(&fmtCmd{}, "data")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var bookDir = flag.String("book", "book", "Path to the book directory")

// DecodeBook loads the book from the app book directory. A missing directory
// is a valid empty book.
func DecodeBook() (*playerfolio.Book, error) {
	return playerfolio.LoadBook(*bookDir)
}

// SaveBook persists the book back into the app book directory.
func SaveBook(b *playerfolio.Book) error {
	return playerfolio.SaveBook(*bookDir, b)
}

// printMarkdown renders markdown to the terminal. On rendering errors the raw
// markdown is printed instead, the report is always shown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
