package costbasis

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// this file contains the persistence formats: the CSV transaction log fed
// to a holding, and JSONL import/export of open lots and realized matches.
// The formats are human readable and diff-friendly.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTransactions reads a transaction log in the 4-field CSV record
// format "date,kind,quantity,price", one record per line. Lines starting
// with '#' and blank lines are skipped. A malformed record is fatal to the
// whole load: the engine must never see a partially parsed change.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var txs []Transaction
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("transaction log line %d: %w", line, err)
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("transaction log line %d: want 4 fields, got %d", line, len(rec))
		}
		day, err := ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("transaction log line %d: %w", line, err)
		}
		kind, err := ParseKind(rec[1])
		if err != nil {
			return nil, fmt.Errorf("transaction log line %d: %w", line, err)
		}
		quantity, err := decimal.NewFromString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("transaction log line %d: invalid quantity %q: %w", line, rec[2], err)
		}
		price, err := decimal.NewFromString(rec[3])
		if err != nil {
			return nil, fmt.Errorf("transaction log line %d: invalid price %q: %w", line, rec[3], err)
		}
		txs = append(txs, NewTransaction(day, kind, quantity.InexactFloat64(), price.InexactFloat64()))
	}
	return txs, nil
}

// MarshalJSON encodes the lot as a flat object with a stable key order.
func (l OpenLot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", l.date)
	w.Append("quantity", decimal.NewFromFloat(l.quantity))
	w.Append("basis", decimal.NewFromFloat(l.basis))
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a lot written by MarshalJSON.
func (l *OpenLot) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date     Date            `json:"date"`
		Quantity decimal.Decimal `json:"quantity"`
		Basis    decimal.Decimal `json:"basis"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.date = temp.Date
	l.quantity = temp.Quantity.InexactFloat64()
	l.basis = temp.Basis.InexactFloat64()
	return nil
}

// MarshalJSON encodes the match as a flat object with a stable key order.
func (r Realized) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("closeDate", r.CloseDate)
	w.Append("quantity", decimal.NewFromFloat(r.Quantity))
	w.Append("closeBasis", decimal.NewFromFloat(r.CloseBasis))
	w.Append("openDate", r.OpenDate)
	w.Append("openBasis", decimal.NewFromFloat(r.OpenBasis))
	w.Append("gain", decimal.NewFromFloat(r.Gain))
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a match written by MarshalJSON.
func (r *Realized) UnmarshalJSON(data []byte) error {
	var temp struct {
		CloseDate  Date            `json:"closeDate"`
		Quantity   decimal.Decimal `json:"quantity"`
		CloseBasis decimal.Decimal `json:"closeBasis"`
		OpenDate   Date            `json:"openDate"`
		OpenBasis  decimal.Decimal `json:"openBasis"`
		Gain       decimal.Decimal `json:"gain"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	r.CloseDate = temp.CloseDate
	r.Quantity = temp.Quantity.InexactFloat64()
	r.CloseBasis = temp.CloseBasis.InexactFloat64()
	r.OpenDate = temp.OpenDate
	r.OpenBasis = temp.OpenBasis.InexactFloat64()
	r.Gain = temp.Gain.InexactFloat64()
	return nil
}

// EncodeLots writes open lots to w in JSONL format, one lot per line,
// oldest first. Suitable for seeding a later run via DecodeLots and
// NewHoldingFromLots.
func EncodeLots(w io.Writer, lots []OpenLot) error {
	for _, l := range lots {
		if err := encodeLine(w, l); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLots reads a JSONL stream of open lots written by EncodeLots.
func DecodeLots(r io.Reader) ([]OpenLot, error) {
	var lots []OpenLot
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var l OpenLot
		if err := json.Unmarshal(line, &l); err != nil {
			return nil, fmt.Errorf("cannot parse open lot line %q: %w", string(line), err)
		}
		lots = append(lots, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading open lots: %w", err)
	}
	return lots, nil
}

// EncodeRealized writes realized matches to w in JSONL format, one match
// per line, in the order they were produced.
func EncodeRealized(w io.Writer, rs []Realized) error {
	for _, r := range rs {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRealized reads a JSONL stream of matches written by EncodeRealized.
func DecodeRealized(r io.Reader) ([]Realized, error) {
	var rs []Realized
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var m Realized
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("cannot parse realized line %q: %w", string(line), err)
		}
		rs = append(rs, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading realized matches: %w", err)
	}
	return rs, nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal %T: %w", v, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write %T: %w", v, err)
	}
	return nil
}
