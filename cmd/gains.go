package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jbertovic/costbasis/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	logFlags
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains report, one row per closing event" }
func (*gainsCmd) Usage() string {
	return `cbt gains [-l <log_file>] [-c <currency>] [-policy <policy>]

  Replays the transaction log through the FIFO matching engine and displays
  the realized gains, compacted to one row per closing event.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, matches, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.GainsMarkdown(c.logFile, matches, c.currency)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
