package costbasis

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// quantityEpsilon is the tolerance for all zero and equality comparisons on
// quantities and bases. Repeated prorated splits accumulate floating error;
// comparing against this margin instead of exact zero keeps the matching
// loop terminating and the zero reset firing.
const quantityEpsilon = 1e-10

var (
	// ErrZeroQuantity is returned when a change with (effectively) zero
	// quantity is applied to a holding.
	ErrZeroQuantity = errors.New("costbasis: cannot apply a change with zero quantity")
	// ErrZeroSplit is returned when splitting a record whose quantity is
	// zero, which would otherwise divide by zero in the basis proration.
	ErrZeroSplit = errors.New("costbasis: cannot split a record with zero quantity")
	// ErrNoInventory signals a front-lot access on an empty lot queue. The
	// direction check makes this unreachable through the public API; it is
	// kept as a defensive invariant guard.
	ErrNoInventory = errors.New("costbasis: no open lot to match against")
)

// Holding maintains the open inventory of a single position as a FIFO queue
// of lots, oldest first.
//
// A change applied in the direction of the holding (or to an empty holding)
// is appended as a new open lot. A change in the opposite direction is
// matched against the front lot, splitting the lot or the change when sizes
// differ, and each consumed lot is paired with the closing portion into a
// Realized gain. Whenever the net quantity returns to zero the holding
// resets to the empty, direction-less state.
//
// Adding inventory (a deposit or transfer in) must carry its basis and is
// treated like a purchase. Removing inventory (a withdrawal or transfer
// out) matches like a sale, but what it realizes is governed by the
// holding's RemovalPolicy; by default it realizes nothing.
//
// Changes must be applied in date order; the holding does not sort. Each
// position needs its own Holding, and a Holding must not be shared between
// goroutines without external synchronization.
type Holding struct {
	lots         []OpenLot
	direction    Kind
	hasDirection bool
	policy       RemovalPolicy
}

// NewHolding returns an empty holding with the neutral removal policy.
func NewHolding() *Holding { return &Holding{} }

// NewHoldingFromLots returns a holding seeded with existing open inventory.
// The direction is derived from the net sign of the seed quantities; a seed
// netting to zero leaves the holding empty and direction-less.
func NewHoldingFromLots(lots []OpenLot) *Holding {
	h := &Holding{lots: slices.Clone(lots)}
	var quantity float64
	for _, l := range h.lots {
		quantity += l.quantity
	}
	if quantity > 0 {
		h.direction = Long
	} else {
		h.direction = Short
	}
	h.hasDirection = true
	h.zeroReset()
	return h
}

// SetRemovalPolicy configures how Remove changes are valued.
func (h *Holding) SetRemovalPolicy(p RemovalPolicy) { h.policy = p }

// RemovalPolicy returns the configured removal valuation policy.
func (h *Holding) RemovalPolicy() RemovalPolicy { return h.policy }

// Add applies a single inventory change and returns the realized matches it
// produced, in the order the lots were consumed. A same-direction change
// produces none. Changes must arrive in date order.
func (h *Holding) Add(chg Change) ([]Realized, error) {
	if math.Abs(chg.Quantity()) < quantityEpsilon {
		return nil, ErrZeroQuantity
	}
	var matches []Realized
	rest := chg
	for rest != nil {
		if h.matchDirection(rest) {
			h.push(lotOf(rest))
			break
		}
		part, remainder, err := h.splitFront(rest)
		if err != nil {
			return nil, err
		}
		m, err := h.closeFront(part)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
		rest = remainder
	}
	if chg.Kind() == Remove {
		matches = h.modRemoved(matches)
	}
	return matches, nil
}

// Extend applies an ordered series of changes one by one, concatenating the
// realized matches each produced. The series must be sorted by date.
func (h *Holding) Extend(chgs ...Change) ([]Realized, error) {
	var matches []Realized
	for _, chg := range chgs {
		ms, err := h.Add(chg)
		if err != nil {
			return matches, err
		}
		matches = append(matches, ms...)
	}
	return matches, nil
}

// matchDirection reports whether the change adds to the holding rather than
// closing against it.
func (h *Holding) matchDirection(inv Inventory) bool {
	return !h.hasDirection || h.direction == DirectionOf(inv)
}

// push appends a lot at the tail, establishing the direction if unset.
func (h *Holding) push(l OpenLot) {
	if !h.hasDirection {
		h.direction = DirectionOf(l)
		h.hasDirection = true
	}
	h.lots = append(h.lots, l)
}

// splitFront aligns an opposing change with the front lot so both sides
// have equal magnitude. Three cases: equal within epsilon, nothing to do;
// front lot larger, the lot is split in place (its closing part becomes the
// new front); change larger, the change is split and the remainder is
// returned to carry forward. rest is nil when the change is fully consumed
// by the front lot.
func (h *Holding) splitFront(chg Change) (part, rest Change, err error) {
	if len(h.lots) == 0 {
		return nil, nil, ErrNoInventory
	}
	cq := math.Abs(chg.Quantity())
	fq := math.Abs(h.lots[0].quantity)
	switch {
	case math.Abs(cq-fq) < quantityEpsilon:
		return chg, nil, nil
	case fq > cq:
		closing, kept, err := h.lots[0].split(cq)
		if err != nil {
			return nil, nil, err
		}
		h.lots[0] = kept
		h.lots = slices.Insert(h.lots, 0, closing)
		return chg, nil, nil
	default:
		return chg.Split(fq)
	}
}

// closeFront removes the front lot, pairs it with the size-matched closing
// change, and applies the zero reset.
func (h *Holding) closeFront(chg Inventory) (Realized, error) {
	if len(h.lots) == 0 {
		return Realized{}, ErrNoInventory
	}
	open := h.lots[0]
	h.lots = h.lots[1:]
	h.zeroReset()
	return matchClose(chg, open), nil
}

// modRemoved applies the removal valuation policy to the matches produced
// by one Remove change.
func (h *Holding) modRemoved(matches []Realized) []Realized {
	switch h.policy {
	case RemovalAtCost:
		for i := range matches {
			matches[i].zeroProfit()
		}
		return matches
	case RemovalAtMarket:
		return matches
	case RemovalAtZero:
		for i := range matches {
			matches[i].zeroValue()
		}
		return matches
	default:
		return nil
	}
}

// zeroReset clears the holding back to the empty, direction-less state when
// no lots remain or the net quantity is within epsilon of zero.
func (h *Holding) zeroReset() {
	if len(h.lots) == 0 || math.Abs(h.Position().Quantity) < quantityEpsilon {
		h.lots = nil
		h.hasDirection = false
	}
}

// Direction reports the current direction of the holding; ok is false when
// the holding is flat.
func (h *Holding) Direction() (direction Kind, ok bool) {
	return h.direction, h.hasDirection
}

// Inventory returns a copy of the current open lots, oldest first.
func (h *Holding) Inventory() []OpenLot {
	return slices.Clone(h.lots)
}

// Position is the aggregate view over the open lots.
type Position struct {
	Quantity float64
	Price    float64 // average unit price, rounded to 4 decimal places
	Basis    float64
}

// Position sums the open lots into quantity, average unit price, and total
// basis. The price is zero for a flat holding.
func (h *Holding) Position() Position {
	var p Position
	for _, l := range h.lots {
		p.Quantity += l.quantity
		p.Basis += l.basis
	}
	if math.Abs(p.Quantity) > quantityEpsilon {
		p.Price = math.Round(-p.Basis/p.Quantity*10000) / 10000
	}
	return p
}

func (h *Holding) String() string {
	p := h.Position()
	return fmt.Sprintf("position; quantity:%.4f, price:%.4f, basis:%.4f, inventory_count:%d",
		p.Quantity, p.Price, p.Basis, len(h.lots))
}
