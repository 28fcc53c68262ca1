package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rosterfun/playerfolio"
)

// --- Import Command ---

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a positions export into the book" }
func (*importCmd) Usage() string {
	return `import -f <file>

  Merges a JSONL positions file, one object per line. Entries for existing
  players update only the fields they carry; new players need at least
  shares, avgCost and price, incomplete ones are skipped with a warning.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the JSONL positions file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	patches, err := playerfolio.DecodePositionPatches(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import file: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	applied, skipped := b.ImportPositions(patches)
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d positions (%d skipped) from %s\n", applied, skipped, c.file)
	return subcommands.ExitSuccess
}

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rebuild the ledger from the journal and rewrite the book in canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Refolds the whole journal to recompute every position's shares, cost basis
  and realised P&L, then rewrites all data files in canonical form. Prices,
  tags and batches are carried over.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := b.Rebuild(); err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Rebuilt %d positions from %d trades.\n", b.Ledger().Len(), b.Journal().Len())
	return subcommands.ExitSuccess
}
