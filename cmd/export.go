package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/jbertovic/costbasis"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	logFlags
	outputFile string
	what       string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export realized matches or open lots as JSONL" }
func (*exportCmd) Usage() string {
	return `cbt export [-l <log_file>] [-what realized|lots] [-o <output_file>]

  Replays the transaction log through the FIFO matching engine and writes
  the realized matches (or the remaining open lots) as JSONL, one record
  per line. The lots output can seed a later run via the -open flag.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.what, "what", "realized", "What to export: realized or lots.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, matches, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.outputFile != "" {
		of, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer of.Close()
		out = of
	}

	switch c.what {
	case "realized":
		err = costbasis.EncodeRealized(out, matches)
	case "lots":
		err = costbasis.EncodeLots(out, h.Inventory())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export target %q, want realized or lots\n", c.what)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
