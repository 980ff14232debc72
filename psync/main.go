package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pricesync/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op unless the shell is asking.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"accounts": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"sync":     {},
			"last":     {},
			"accounts": {},
			"topic":    {},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
