package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jbertovic/costbasis/renderer"
)

// detailsCmd holds the flags for the 'details' subcommand.
type detailsCmd struct {
	logFlags
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "lot-level realized matches report" }
func (*detailsCmd) Usage() string {
	return `cbt details [-l <log_file>] [-c <currency>] [-policy <policy>]

  Replays the transaction log through the FIFO matching engine and displays
  every realized match, one row per consumed lot.
`
}

func (c *detailsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, matches, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.DetailsMarkdown(c.logFile, matches, c.currency)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
