package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricesync"
	"github.com/etnz/pricesync/yahoo"
	"github.com/google/subcommands"
)

type syncCmd struct{}

func (*syncCmd) Name() string { return "sync" }
func (*syncCmd) Synopsis() string {
	return "append newly available daily prices to every account's ledger"
}
func (*syncCmd) Usage() string {
	return `psync sync

  Reads each ledger's last recorded date, fetches the days after it from
  the provider, and appends the new records. Accounts are processed one at
  a time; a failing account is reported and the run moves on to the next.

`
}
func (c *syncCmd) SetFlags(f *flag.FlagSet) {}
func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	accounts, err := LoadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	syncer := &pricesync.Syncer{Client: yahoo.NewClient()}
	if err := syncer.Sync(accounts); err != nil {
		// Per-account failures were already reported; attempting every
		// account and moving on is this command's normal outcome.
		fmt.Fprintf(os.Stderr, "some accounts failed to sync:\n%v\n", err)
	}
	return subcommands.ExitSuccess
}
