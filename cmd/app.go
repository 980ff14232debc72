// Package cmd implements the CLI application to keep price ledgers in sync.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pricesync"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the psync tool.
// A main package registers each of them and executes the user-selected one.
var Commands = []subcommands.Command{
	&syncCmd{},
	&lastCmd{},
	&accountsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts", "accounts.yaml", "Path to the account registry file (YAML)")

// LoadRegistry reads the account registry from the app accounts file.
func LoadRegistry() ([]pricesync.Account, error) {
	return pricesync.LoadAccounts(*accountsFile)
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
