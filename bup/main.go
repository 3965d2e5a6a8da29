package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/budgetup/budgetup/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it only acts (and exits) when the
// shell invokes the binary through the completion protocol.
func completion() {
	flags := map[string]complete.Predictor{
		"config":     predict.Files("*.json"),
		"ynab-token": predict.Nothing,
		"plain":      predict.Nothing,
	}
	c := &complete.Command{
		Flags: flags,
		Sub: map[string]*complete.Command{
			"budgets":   {Flags: map[string]complete.Predictor{"select": predict.Nothing}},
			"accounts":  {Flags: map[string]complete.Predictor{"select": predict.Nothing, "deselect": predict.Nothing}},
			"balances":  {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
			"networth":  {Flags: map[string]complete.Predictor{"breakdown": predict.Nothing}},
			"set":       {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
			"reconcile": {Flags: map[string]complete.Predictor{"set": predict.Something, "yes": predict.Nothing}},
			"config":    {Flags: map[string]complete.Predictor{"memo": predict.Something, "cleared": predict.Set{"cleared", "uncleared", "reconciled"}, "store-token": predict.Something}},
		},
	}
	c.Complete("bup")
}
