package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rosterfun/playerfolio/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for pfs. When invoked by the shell
// (COMP_LINE set) it prints the candidates and exits, otherwise it is a no-op.
func completion() {
	trade := &complete.Command{Flags: map[string]complete.Predictor{
		"d": predict.Something,
		"p": predict.Something,
		"q": predict.Something,
		"v": predict.Something,
		"f": predict.Something,
		"n": predict.Something,
	}}
	dated := &complete.Command{Flags: map[string]complete.Predictor{
		"d": predict.Something,
	}}
	pfs := &complete.Command{
		Flags: map[string]complete.Predictor{
			"book": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"buy":  trade,
			"sell": trade,
			"price": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
				"v": predict.Something,
			}},
			"feed": {Flags: map[string]complete.Predictor{
				"f":     predict.Files("*.json"),
				"items": predict.Something,
				"name":  predict.Something,
				"price": predict.Something,
			}},
			"tag": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
				"t": predict.Set{"keep", "watch", "sell"},
				"b": predict.Something,
			}},
			"holding": {Flags: map[string]complete.Predictor{
				"all": predict.Nothing,
				"t":   predict.Set{"keep", "watch", "sell"},
				"b":   predict.Something,
				"s":   predict.Something,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"p":      predict.Something,
				"side":   predict.Set{"buy", "sell"},
				"period": predict.Set{"day", "week", "month", "quarter", "year"},
				"head":   predict.Something,
				"tail":   predict.Something,
			}},
			"summary":  dated,
			"snapshot": dated,
			"history":  {},
			"deposit": {Flags: map[string]complete.Predictor{
				"a": predict.Something,
			}},
			"withdraw": {Flags: map[string]complete.Predictor{
				"a": predict.Something,
			}},
			"settings": {Flags: map[string]complete.Predictor{
				"cash":     predict.Something,
				"fees":     predict.Something,
				"currency": predict.Something,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.jsonl"),
			}},
			"fmt":    {},
			"assist": {},
			"topic":  {Args: predict.Set{"readme", "accounting", "cash", "dates", "import", "snapshots", "*"}},
		},
	}
	pfs.Complete("pfs")
}
