package costbasis

import "fmt"

// RemovalPolicy defines how a Remove change is valued when it matches open
// inventory. It only affects Remove changes; sales are always returned as
// computed.
type RemovalPolicy int

const (
	// RemovalNeutral moves cost basis out without realizing anything: the
	// matches computed for a removal are discarded. This is the default.
	RemovalNeutral RemovalPolicy = iota
	// RemovalAtCost reports the removal as a cost-basis transfer: matches
	// are kept but rewritten to zero gain.
	RemovalAtCost
	// RemovalAtMarket keeps matches as computed. The removal record is
	// expected to carry a market-derived basis.
	RemovalAtMarket
	// RemovalAtZero values the removed inventory at zero proceeds, taking
	// the full cost basis as a loss.
	RemovalAtZero
)

func (p RemovalPolicy) String() string {
	switch p {
	case RemovalNeutral:
		return "neutral"
	case RemovalAtCost:
		return "at-cost"
	case RemovalAtMarket:
		return "at-market"
	case RemovalAtZero:
		return "at-zero"
	default:
		return "unknown"
	}
}

// ParseRemovalPolicy parses a string into a RemovalPolicy. Both the short
// names and the configuration tokens of older ledger tooling are accepted;
// anything else is an error rather than a silent fall-through.
func ParseRemovalPolicy(s string) (RemovalPolicy, error) {
	switch s {
	case "neutral", "":
		return RemovalNeutral, nil
	case "at-cost", "REALIZED_REMOVED_VALUE_AT_COST", "ADD_REALIZED_FOR_REMOVED":
		return RemovalAtCost, nil
	case "at-market", "REMOVED_VALUE_AT_MARKET":
		return RemovalAtMarket, nil
	case "at-zero", "REMOVED_VALUE_AT_ZERO":
		return RemovalAtZero, nil
	default:
		return 0, fmt.Errorf("unknown removal policy: %q", s)
	}
}
