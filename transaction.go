package costbasis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transaction is the ready-made inventory-change record: date, kind, the
// unsigned quantity as recorded, and the unit price. It implements Change,
// deriving the signed quantity and basis from the kind, so it can be fed
// straight into a Holding. Callers with their own record types can
// implement Change themselves instead.
type Transaction struct {
	date     Date
	kind     Kind
	quantity float64 // unsigned magnitude as recorded
	price    float64 // unit price
}

// NewTransaction builds a transaction from its four record fields. Quantity
// and price are unsigned; the sign convention is carried by the kind.
func NewTransaction(day Date, kind Kind, quantity, price float64) Transaction {
	return Transaction{date: day, kind: kind, quantity: quantity, price: price}
}

// ParseTransaction parses the 4-field record "date,kind,quantity,price",
// e.g. "2020-01-01,long,100.0,25.0".
func ParseTransaction(s string) (Transaction, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Transaction{}, fmt.Errorf("transaction record %q: want 4 fields, got %d", s, len(fields))
	}
	day, err := ParseDate(strings.TrimSpace(fields[0]))
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction record %q: %w", s, err)
	}
	kind, err := ParseKind(fields[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction record %q: %w", s, err)
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction record %q: invalid quantity: %w", s, err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction record %q: invalid price: %w", s, err)
	}
	return Transaction{date: day, kind: kind, quantity: quantity, price: price}, nil
}

func (t Transaction) Date() Date { return t.date }
func (t Transaction) Kind() Kind { return t.kind }

// Price returns the unit price as recorded.
func (t Transaction) Price() float64 { return t.price }

// Quantity returns the signed quantity of the change: the recorded
// magnitude, negated for Short and Remove kinds.
func (t Transaction) Quantity() float64 { return t.quantity * t.kind.sign() }

// Basis returns the signed total value of the change: cost paid is
// negative, proceeds received are positive.
func (t Transaction) Basis() float64 { return -t.price * t.quantity * t.kind.sign() }

// WithPrice returns a copy of the transaction valued at the given unit
// price. Used to stamp a market quote onto a removal before it is applied
// under the at-market policy.
func (t Transaction) WithPrice(price float64) Transaction {
	t.price = price
	return t
}

// split divides the transaction at the given unsigned quantity, keeping the
// unit price on both halves.
func (t Transaction) split(at float64) (part, rest Transaction, err error) {
	if math.Abs(t.quantity) < quantityEpsilon {
		return Transaction{}, Transaction{}, ErrZeroSplit
	}
	part = Transaction{date: t.date, kind: t.kind, quantity: at, price: t.price}
	rest = Transaction{date: t.date, kind: t.kind, quantity: t.quantity - at, price: t.price}
	return part, rest, nil
}

// Split implements Change.
func (t Transaction) Split(at float64) (Change, Change, error) {
	part, rest, err := t.split(at)
	if err != nil {
		return nil, nil, err
	}
	return part, rest, nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %.4f @%.4f", t.date, t.kind, t.quantity, t.price)
}

// Changes widens a transaction slice to the Change capability for
// Holding.Extend.
func Changes(ts []Transaction) []Change {
	chgs := make([]Change, len(ts))
	for i, t := range ts {
		chgs[i] = t
	}
	return chgs
}

var _ Change = Transaction{}
