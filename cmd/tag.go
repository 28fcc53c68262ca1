package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

type tagCmd struct {
	player string
	tag    string
	batch  string
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "label a position with a tag or a batch" }
func (*tagCmd) Usage() string {
	return `tag -p <player> [-t keep|watch|sell] [-b <batch>]

  Sets informational labels on a position. Labels never enter a calculation.
`
}

func (c *tagCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.player, "p", "", "Player name")
	f.StringVar(&c.tag, "t", "", "Tag: keep, watch or sell")
	f.StringVar(&c.batch, "b", "", "Batch label, e.g. the acquisition wave")
}

func (c *tagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.player == "" || (c.tag == "" && c.batch == "") {
		f.Usage()
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.tag != "" {
		tag, err := playerfolio.ParseTag(c.tag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := b.SetTag(c.player, tag); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting tag: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.batch != "" {
		if err := b.SetBatch(c.player, c.batch); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting batch: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Labeled %s\n", c.player)
	return subcommands.ExitSuccess
}
