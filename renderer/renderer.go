// Package renderer turns realized gains and open positions into markdown
// reports. Rendering is kept out of the matching engine so the engine stays
// a pure data structure; the command layer decides what to render and where
// it goes.
package renderer

import (
	"fmt"
	"strings"

	"github.com/jbertovic/costbasis"
)

// GainsMarkdown renders the compacted realized-gains report: one row per
// closing event, with the open dates it consumed and the aggregate cost,
// proceeds and gain.
func GainsMarkdown(title string, rs []costbasis.Realized, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains: %s\n\n", title)

	fmt.Fprintln(&b, "| Close Date | Quantity | Proceeds | Open Dates | Cost | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|---:|---:|")
	for _, c := range costbasis.Compact(rs) {
		fmt.Fprintf(&b, "| %s | %.4f | %s | %s | %s | %s |\n",
			c.CloseDate,
			c.Quantity,
			costbasis.M(c.Proceeds, currency).String(),
			c.OpenDates,
			costbasis.M(c.Cost, currency).String(),
			costbasis.M(c.Gain, currency).SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | **%s** |\n",
		"Total",
		costbasis.M(costbasis.TotalRealized(rs), currency).SignedString(),
	)

	return b.String()
}

// DetailsMarkdown renders the full lot-level report: one row per matched
// pair of opening lot and closing change, in matching order.
func DetailsMarkdown(title string, rs []costbasis.Realized, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Matches: %s\n\n", title)

	fmt.Fprintln(&b, "| Close Date | Quantity | Close Basis | Open Date | Open Basis | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|---:|---:|")
	for _, r := range rs {
		fmt.Fprintf(&b, "| %s | %.4f | %s | %s | %s | %s |\n",
			r.CloseDate,
			r.Quantity,
			costbasis.M(r.CloseBasis, currency).String(),
			r.OpenDate,
			costbasis.M(r.OpenBasis, currency).String(),
			costbasis.M(r.Gain, currency).SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | **%s** |\n",
		"Total",
		costbasis.M(costbasis.TotalRealized(rs), currency).SignedString(),
	)

	return b.String()
}

// PositionMarkdown renders the open side of a holding: the aggregate
// position followed by the remaining open lots, oldest first.
func PositionMarkdown(title string, h *costbasis.Holding, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Open Position: %s\n\n", title)

	p := h.Position()
	if direction, ok := h.Direction(); ok {
		fmt.Fprintf(&b, "Direction: %s\n\n", direction)
	} else {
		fmt.Fprint(&b, "Direction: flat\n\n")
	}
	fmt.Fprintf(&b, "Quantity: %.4f at average price %s, basis %s\n\n",
		p.Quantity,
		costbasis.M(p.Price, currency).String(),
		costbasis.M(p.Basis, currency).String(),
	)

	lots := h.Inventory()
	if len(lots) == 0 {
		return b.String()
	}

	fmt.Fprint(&b, "## Open Lots\n\n")
	fmt.Fprintln(&b, "| Open Date | Quantity | Price | Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, l := range lots {
		fmt.Fprintf(&b, "| %s | %.4f | %s | %s |\n",
			l.Date(),
			l.Quantity(),
			costbasis.M(l.Price(), currency).String(),
			costbasis.M(l.Basis(), currency).String(),
		)
	}

	return b.String()
}
