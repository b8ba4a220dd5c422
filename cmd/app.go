// Package cmd implements the CLI application to report cost basis and
// realized gains from a transaction log.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jbertovic/costbasis"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainsCmd{}, "reports")
	c.Register(&detailsCmd{}, "reports")
	c.Register(&positionCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
}

// logFlags are the flags shared by every command that replays a
// transaction log into a holding.
type logFlags struct {
	logFile   string
	lotsFile  string
	policy    string
	currency  string
	quoteURL  string
	quotePath string
}

func (c *logFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.logFile, "l", "transactions.csv", "Transaction log to replay (CSV: date,kind,quantity,price).")
	f.StringVar(&c.lotsFile, "open", "", "Optional JSONL file of open lots to seed the holding with.")
	f.StringVar(&c.policy, "policy", costbasis.RemovalNeutral.String(), "Removal valuation policy (neutral, at-cost, at-market, at-zero).")
	f.StringVar(&c.currency, "c", "USD", "Currency code for report amounts.")
	f.StringVar(&c.quoteURL, "quote-url", "", "JSON quote endpoint used to value removals under -policy at-market.")
	f.StringVar(&c.quotePath, "quote-path", "$.price", "jsonpath expression locating the quote in the endpoint response.")
}

// load replays the transaction log into a holding and returns it together
// with the realized matches the replay produced.
func (c *logFlags) load() (*costbasis.Holding, []costbasis.Realized, error) {
	policy, err := costbasis.ParseRemovalPolicy(c.policy)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(c.logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open transaction log %q: %w", c.logFile, err)
	}
	defer f.Close()
	txs, err := costbasis.DecodeTransactions(f)
	if err != nil {
		return nil, nil, err
	}

	if policy == costbasis.RemovalAtMarket && c.quoteURL != "" {
		src := costbasis.QuoteSource{URL: c.quoteURL, Path: c.quotePath}
		txs, err = costbasis.PriceRemovals(txs, src)
		if err != nil {
			return nil, nil, err
		}
	}

	h := costbasis.NewHolding()
	if c.lotsFile != "" {
		lf, err := os.Open(c.lotsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open open-lots file %q: %w", c.lotsFile, err)
		}
		lots, lerr := costbasis.DecodeLots(lf)
		lf.Close()
		if lerr != nil {
			return nil, nil, lerr
		}
		h = costbasis.NewHoldingFromLots(lots)
	}
	h.SetRemovalPolicy(policy)

	matches, err := h.Extend(costbasis.Changes(txs)...)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot replay transaction log %q: %w", c.logFile, err)
	}
	return h, matches, nil
}
