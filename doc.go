// Package costbasis maintains the unrealized inventory of a single fungible
// position and realizes gains as opposing inventory changes are applied.
//
// The core types:
//   - Holding: the stateful FIFO queue of open lots. Feeding it an ordered
//     sequence of inventory changes either grows the inventory (same
//     direction) or matches the oldest lots and emits realized gains
//     (opposite direction).
//   - OpenLot: one still-open slice of inventory (date, quantity, basis).
//   - Realized: one completed open/close pairing with its gain or loss.
//   - Transaction: a ready-made inventory-change record parsed from the
//     4-field ledger format. Callers may instead feed any type implementing
//     the Change interface.
//
// Matching is strictly FIFO. Non-trading removals (transfers out, spending)
// are valued according to the holding's RemovalPolicy; by default they move
// cost basis out silently and realize nothing.
//
// This package is the foundation of the `cbt` command-line tool, which loads
// a CSV transaction log and prints gain reports.
package costbasis
