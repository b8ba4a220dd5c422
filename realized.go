package costbasis

import (
	"fmt"
	"math"
	"strings"
)

// Realized records one completed pairing of a closing inventory change
// against exactly one open lot (or lot fragment). Quantity and CloseBasis
// are the close side's signed values; OpenDate and OpenBasis come from the
// consumed lot. Gain is always CloseBasis + OpenBasis.
type Realized struct {
	CloseDate  Date
	Quantity   float64
	CloseBasis float64
	OpenDate   Date
	OpenBasis  float64
	Gain       float64
}

// NewRealized builds a realized match, computing the gain from both bases.
func NewRealized(closeDate Date, quantity, closeBasis float64, openDate Date, openBasis float64) Realized {
	return Realized{
		CloseDate:  closeDate,
		Quantity:   quantity,
		CloseBasis: closeBasis,
		OpenDate:   openDate,
		OpenBasis:  openBasis,
		Gain:       closeBasis + openBasis,
	}
}

// matchClose pairs a closing change with the open lot it consumed. The two
// sides are assumed size-matched by the holding's split step.
func matchClose(close Inventory, open OpenLot) Realized {
	return NewRealized(close.Date(), close.Quantity(), close.Basis(), open.Date(), open.Basis())
}

// zeroProfit rewrites the match as a pure cost-basis transfer: the close
// side is set to the opposite of the open basis and the gain becomes zero.
func (r *Realized) zeroProfit() {
	r.CloseBasis = -r.OpenBasis
	r.Gain = 0
}

// zeroValue forfeits the close-side value: proceeds become zero and the
// whole open basis is realized as the gain (a loss for a long position).
func (r *Realized) zeroValue() {
	r.CloseBasis = 0
	r.Gain = r.OpenBasis
}

func (r Realized) String() string {
	return fmt.Sprintf("close_date: %s quantity:%.4f, proceeds:%.2f, open_date: %s, cost_basis:%.2f, gain_loss:%.2f",
		r.CloseDate, r.Quantity, r.CloseBasis, r.OpenDate, r.OpenBasis, r.Gain)
}

// TotalRealized sums the gain over a slice of realized matches.
func TotalRealized(rs []Realized) float64 {
	var total float64
	for _, r := range rs {
		total += r.Gain
	}
	return total
}

// RealizedCompact summarizes the realized matches sharing one close date:
// one sale closing several buys becomes a single row. Quantity is reported
// as an unsigned magnitude; Gain is Proceeds + Cost.
type RealizedCompact struct {
	CloseDate Date
	Quantity  float64
	Proceeds  float64
	OpenDates string // distinct open dates, oldest first, ";"-joined
	Cost      float64
	Gain      float64
}

func (c RealizedCompact) String() string {
	return fmt.Sprintf("close_date: %s quantity:%.4f, proceeds:%.2f, cost_basis:%.2f, gain_loss:%.2f",
		c.CloseDate, c.Quantity, c.Proceeds, c.Cost, c.Gain)
}

// Compact groups realized matches into one compact row per contiguous run
// of equal close dates. Holdings emit matches already grouped this way, so
// no sorting is performed; if a close date reappears later in the slice it
// yields a separate row rather than being merged into the earlier one.
func Compact(rs []Realized) []RealizedCompact {
	var out []RealizedCompact
	for start := 0; start < len(rs); {
		end := start + 1
		for end < len(rs) && rs[end].CloseDate == rs[start].CloseDate {
			end++
		}
		out = append(out, compactRun(rs[start:end]))
		start = end
	}
	return out
}

// compactRun folds matches known to share a close date into one row.
func compactRun(rs []Realized) RealizedCompact {
	c := RealizedCompact{CloseDate: rs[0].CloseDate}
	var dates []string
	seen := make(map[Date]bool)
	for _, r := range rs {
		c.Quantity += r.Quantity
		c.Proceeds += r.CloseBasis
		c.Cost += r.OpenBasis
		if !seen[r.OpenDate] {
			seen[r.OpenDate] = true
			dates = append(dates, r.OpenDate.String())
		}
	}
	c.Quantity = math.Abs(c.Quantity)
	c.OpenDates = strings.Join(dates, ";")
	c.Gain = c.Proceeds + c.Cost
	return c
}
