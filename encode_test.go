package costbasis

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOpenLotJSON(t *testing.T) {
	l := NewOpenLot(MustParseDate("2020-01-01"), 100, -2500)
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"date":"2020-01-01","quantity":100,"basis":-2500}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back OpenLot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != l {
		t.Errorf("round trip = %v, want %v", back, l)
	}
}

func TestLotsRoundTrip(t *testing.T) {
	lots := []OpenLot{
		NewOpenLot(MustParseDate("2020-01-01"), 100, -2500),
		NewOpenLot(MustParseDate("2020-02-01"), 50.5, -1515),
	}

	var buf bytes.Buffer
	if err := EncodeLots(&buf, lots); err != nil {
		t.Fatalf("EncodeLots() error = %v", err)
	}
	back, err := DecodeLots(&buf)
	if err != nil {
		t.Fatalf("DecodeLots() error = %v", err)
	}
	if len(back) != len(lots) {
		t.Fatalf("DecodeLots() returned %d lots, want %d", len(back), len(lots))
	}
	for i := range lots {
		if back[i] != lots[i] {
			t.Errorf("lot %d = %v, want %v", i, back[i], lots[i])
		}
	}
}

func TestRealizedRoundTrip(t *testing.T) {
	rs := []Realized{
		NewRealized(MustParseDate("2020-03-01"), -100, 4000, MustParseDate("2020-01-01"), -2500),
		NewRealized(MustParseDate("2020-04-01"), -50, 2000, MustParseDate("2020-02-01"), -1500),
	}

	var buf bytes.Buffer
	if err := EncodeRealized(&buf, rs); err != nil {
		t.Fatalf("EncodeRealized() error = %v", err)
	}
	back, err := DecodeRealized(&buf)
	if err != nil {
		t.Fatalf("DecodeRealized() error = %v", err)
	}
	if len(back) != len(rs) {
		t.Fatalf("DecodeRealized() returned %d matches, want %d", len(back), len(rs))
	}
	for i := range rs {
		if back[i] != rs[i] {
			t.Errorf("match %d = %v, want %v", i, back[i], rs[i])
		}
	}
}

func TestDecodeTransactions(t *testing.T) {
	in := `# a comment line
2020-01-01, buy, 100, 25

2020-02-01,sell,40,30
`
	txs, err := DecodeTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("DecodeTransactions() returned %d records, want 2", len(txs))
	}
	if txs[0].Kind() != Long || !almost(txs[0].Quantity(), 100) {
		t.Errorf("record 0 = %v, want long 100", txs[0])
	}
	if txs[1].Kind() != Short || !almost(txs[1].Quantity(), -40) {
		t.Errorf("record 1 = %v, want short -40", txs[1])
	}
}

func TestDecodeTransactionsErrors(t *testing.T) {
	for _, in := range []string{
		"2020-01-01,buy,100\n",           // too few fields
		"2020-01-01,dividend,100,25\n",   // unknown kind
		"someday,buy,100,25\n",           // bad date
		"2020-01-01,buy,a hundred,25\n",  // bad quantity
		"2020-01-01,buy,100,twenty-five", // bad price
	} {
		if _, err := DecodeTransactions(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeTransactions(%q) expected an error, got nil", in)
		}
	}
}
