package costbasis

import (
	"math"
	"testing"
)

// almost reports whether two amounts are equal up to floating noise.
func almost(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// mustTx parses a transaction record or fails the test.
func mustTx(t *testing.T, s string) Transaction {
	t.Helper()
	tx, err := ParseTransaction(s)
	if err != nil {
		t.Fatalf("ParseTransaction(%q) error = %v", s, err)
	}
	return tx
}

// checkRealized compares one realized match field by field.
func checkRealized(t *testing.T, got Realized, want Realized) {
	t.Helper()
	if got.CloseDate != want.CloseDate {
		t.Errorf("CloseDate = %s, want %s", got.CloseDate, want.CloseDate)
	}
	if !almost(got.Quantity, want.Quantity) {
		t.Errorf("Quantity = %v, want %v", got.Quantity, want.Quantity)
	}
	if !almost(got.CloseBasis, want.CloseBasis) {
		t.Errorf("CloseBasis = %v, want %v", got.CloseBasis, want.CloseBasis)
	}
	if got.OpenDate != want.OpenDate {
		t.Errorf("OpenDate = %s, want %s", got.OpenDate, want.OpenDate)
	}
	if !almost(got.OpenBasis, want.OpenBasis) {
		t.Errorf("OpenBasis = %v, want %v", got.OpenBasis, want.OpenBasis)
	}
	if !almost(got.Gain, want.Gain) {
		t.Errorf("Gain = %v, want %v", got.Gain, want.Gain)
	}
}
