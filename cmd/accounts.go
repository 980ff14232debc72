package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of the registry" }
func (*accountsCmd) Usage() string {
	return `psync accounts

  Lists the registry: one line per account, ticker then ledger path, in
  sync order.

`
}
func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}
func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := LoadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, a := range accounts {
		fmt.Printf("%s %s\n", a.Ticker, a.Ledger)
	}
	return subcommands.ExitSuccess
}
