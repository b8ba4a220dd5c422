package costbasis

import (
	"fmt"
	"math"
)

// OpenLot is one still-unmatched slice of inventory held by a Holding.
//
// Quantity is positive for a long position and negative for a short one.
// Basis carries the opposite sign: a long lot's cost is a negative basis,
// a short lot's proceeds are positive.
type OpenLot struct {
	date     Date
	quantity float64
	basis    float64
}

// NewOpenLot returns an open lot for the given acquisition date, signed
// quantity and signed total basis.
func NewOpenLot(day Date, quantity, basis float64) OpenLot {
	return OpenLot{date: day, quantity: quantity, basis: basis}
}

func (l OpenLot) Date() Date        { return l.date }
func (l OpenLot) Quantity() float64 { return l.quantity }
func (l OpenLot) Basis() float64    { return l.basis }

// Kind of an open lot is its direction; lots never represent transfers.
func (l OpenLot) Kind() Kind { return DirectionOf(l) }

// Price returns the average unit price of the lot.
func (l OpenLot) Price() float64 { return -l.basis / l.quantity }

// split divides the lot at the given unsigned quantity. The part takes the
// lot's sign, the rest carries what is left, and basis is prorated by the
// quantity ratio so both halves sum back to the original.
func (l OpenLot) split(at float64) (part, rest OpenLot, err error) {
	if math.Abs(l.quantity) < quantityEpsilon {
		return OpenLot{}, OpenLot{}, ErrZeroSplit
	}
	if l.quantity < 0 {
		at = -at
	}
	part = OpenLot{date: l.date, quantity: at, basis: l.basis * at / l.quantity}
	rest = OpenLot{date: l.date, quantity: l.quantity - at, basis: l.basis * (l.quantity - at) / l.quantity}
	return part, rest, nil
}

// Split implements Change.
func (l OpenLot) Split(at float64) (Change, Change, error) {
	part, rest, err := l.split(at)
	if err != nil {
		return nil, nil, err
	}
	return part, rest, nil
}

// lotOf converts any inventory change into the open lot that represents it.
func lotOf(inv Inventory) OpenLot {
	return OpenLot{date: inv.Date(), quantity: inv.Quantity(), basis: inv.Basis()}
}

func (l OpenLot) String() string {
	return fmt.Sprintf("open: %s, quantity: %.4f, price: %.4f, basis: %.4f",
		l.date, l.quantity, l.Price(), l.basis)
}

var _ Change = OpenLot{}
