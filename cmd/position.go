package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jbertovic/costbasis/renderer"
)

// positionCmd holds the flags for the 'position' subcommand.
type positionCmd struct {
	logFlags
}

func (*positionCmd) Name() string     { return "position" }
func (*positionCmd) Synopsis() string { return "open position and remaining lots" }
func (*positionCmd) Usage() string {
	return `cbt position [-l <log_file>] [-c <currency>] [-policy <policy>]

  Replays the transaction log through the FIFO matching engine and displays
  the open position with its remaining lots, oldest first.
`
}

func (c *positionCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *positionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, _, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.PositionMarkdown(c.logFile, h, c.currency)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
