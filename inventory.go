package costbasis

import (
	"fmt"
	"strings"
)

// Kind is the semantic category of an inventory change.
//
// Long and Short are trading changes: a purchase (or cover) and a sale (or
// short). Add and Remove are non-trading transfers: inventory received into
// the position with its basis, and inventory sent out of it. Remove is the
// only kind subject to a holding's RemovalPolicy.
type Kind int

const (
	Long Kind = iota
	Short
	Add
	Remove
)

func (k Kind) String() string {
	switch k {
	case Long:
		return "long"
	case Short:
		return "short"
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// ParseKind maps a ledger token onto one of the four kinds. Tokens are
// case-insensitive and the usual broker aliases are accepted: buy/b/l for
// Long, sell/s for Short, receive/transfer_in for Add, send/transfer_out
// for Remove.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "buy", "b", "l":
		return Long, nil
	case "short", "sell", "s":
		return Short, nil
	case "add", "receive", "transfer_in":
		return Add, nil
	case "remove", "send", "transfer_out":
		return Remove, nil
	default:
		return 0, fmt.Errorf("%q is not a valid inventory kind", s)
	}
}

// sign returns the multiplier turning an unsigned record quantity into a
// signed inventory change.
func (k Kind) sign() float64 {
	if k == Short || k == Remove {
		return -1
	}
	return 1
}

// Inventory identifies an inventory change. Any record type implementing it
// (together with the split half of Change) can be fed to a Holding.
//
// Basis is the signed total cost or proceeds of the change, never a unit
// price: a cost paid is negative, proceeds received are positive. Quantity
// is signed the other way around: positive grows a long position.
type Inventory interface {
	Basis() float64
	Quantity() float64
	Date() Date
	Kind() Kind
}

// DirectionOf derives the direction of a change from the sign of its
// quantity: Long when positive, Short otherwise. This is distinct from the
// change's Kind, which distinguishes trades from transfers.
func DirectionOf(inv Inventory) Kind {
	if inv.Quantity() > 0 {
		return Long
	}
	return Short
}

// Change is the full capability a record needs to participate in matching:
// it identifies an inventory change and can be divided in two.
//
// Split divides the record at the given unsigned quantity. The part keeps
// the record's sign with magnitude at, the rest carries the remainder, and
// basis is prorated linearly so that part and rest sum back to the
// original. Splitting a zero-quantity record fails with ErrZeroSplit.
type Change interface {
	Inventory
	Split(at float64) (part, rest Change, err error)
}
