package costbasis

import "testing"

func TestParseTransaction(t *testing.T) {
	tx := mustTx(t, "2020-01-01,long,100.0,25.0")
	if tx.Date() != MustParseDate("2020-01-01") {
		t.Errorf("Date() = %s, want 2020-01-01", tx.Date())
	}
	if tx.Kind() != Long {
		t.Errorf("Kind() = %s, want long", tx.Kind())
	}
	if !almost(tx.Quantity(), 100) {
		t.Errorf("Quantity() = %v, want 100", tx.Quantity())
	}
	if !almost(tx.Price(), 25) {
		t.Errorf("Price() = %v, want 25", tx.Price())
	}
}

func TestParseTransactionErrors(t *testing.T) {
	for _, s := range []string{
		"2020-01-01,long,100.0",          // too few fields
		"2020-01-01,long,100.0,25.0,x",   // too many fields
		"someday,long,100.0,25.0",        // bad date
		"2020-01-01,dividend,100.0,25.0", // bad kind
		"2020-01-01,long,many,25.0",      // bad quantity
		"2020-01-01,long,100.0,cheap",    // bad price
	} {
		if _, err := ParseTransaction(s); err == nil {
			t.Errorf("ParseTransaction(%q) expected an error, got nil", s)
		}
	}
}

func TestTransactionSigns(t *testing.T) {
	tests := []struct {
		record       string
		wantQuantity float64
		wantBasis    float64
	}{
		{"2020-01-01,long,100,25", 100, -2500},
		{"2020-01-01,short,200,10", -200, 2000},
		{"2020-01-01,add,50,30", 50, -1500},
		{"2020-01-01,remove,50,30", -50, 1500},
	}
	for _, tt := range tests {
		tx := mustTx(t, tt.record)
		if !almost(tx.Quantity(), tt.wantQuantity) {
			t.Errorf("%q Quantity() = %v, want %v", tt.record, tx.Quantity(), tt.wantQuantity)
		}
		if !almost(tx.Basis(), tt.wantBasis) {
			t.Errorf("%q Basis() = %v, want %v", tt.record, tx.Basis(), tt.wantBasis)
		}
	}
}

func TestTransactionSplit(t *testing.T) {
	tx := mustTx(t, "2020-01-01,long,100,25")
	part, rest, err := tx.split(40)
	if err != nil {
		t.Fatalf("split(40) error = %v", err)
	}
	if !almost(part.Quantity(), 40) || !almost(part.Basis(), -1000) {
		t.Errorf("part = (%v, %v), want (40, -1000)", part.Quantity(), part.Basis())
	}
	if !almost(rest.Quantity(), 60) || !almost(rest.Basis(), -1500) {
		t.Errorf("rest = (%v, %v), want (60, -1500)", rest.Quantity(), rest.Basis())
	}
	// the unit price survives the split
	if !almost(part.Price(), 25) || !almost(rest.Price(), 25) {
		t.Errorf("prices = (%v, %v), want (25, 25)", part.Price(), rest.Price())
	}
}

func TestTransactionWithPrice(t *testing.T) {
	tx := mustTx(t, "2020-01-01,remove,100,0")
	priced := tx.WithPrice(35)
	if !almost(priced.Basis(), 3500) {
		t.Errorf("Basis() after WithPrice(35) = %v, want 3500", priced.Basis())
	}
	if !almost(tx.Basis(), 0) {
		t.Errorf("original Basis() mutated to %v, want 0", tx.Basis())
	}
}
