package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricesync"
	"github.com/google/subcommands"
)

type lastCmd struct{}

func (*lastCmd) Name() string     { return "last" }
func (*lastCmd) Synopsis() string { return "print each account's last recorded date" }
func (*lastCmd) Usage() string {
	return `psync last

  Prints, for every account of the registry, the date of the most recent
  record in its ledger. Useful to see what the next sync would fetch.

`
}
func (c *lastCmd) SetFlags(f *flag.FlagSet) {}
func (c *lastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := LoadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, a := range accounts {
		last, err := pricesync.LastRecordedDate(a.Ledger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", a.Ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s %s\n", a.Ticker, last)
	}
	return status
}
