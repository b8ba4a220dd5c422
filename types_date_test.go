package costbasis

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2020-01-01", NewDate(2020, time.January, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{"1999-12-31", NewDate(1999, time.December, 31)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate(\"not-a-date\") expected an error, got nil")
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2020, time.March, 5)
	if got := d.String(); got != "2020-03-05" {
		t.Errorf("String() = %q, want %q", got, "2020-03-05")
	}
}

func TestDateAdd(t *testing.T) {
	d := NewDate(2020, time.February, 28)
	if got := d.Add(1); got != NewDate(2020, time.February, 29) {
		t.Errorf("Add(1) = %s, want 2020-02-29", got)
	}
	if got := d.Add(2); got != NewDate(2020, time.March, 1) {
		t.Errorf("Add(2) = %s, want 2020-03-01", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2020, time.January, 1)
	b := NewDate(2020, time.January, 2)
	if !a.Before(b) {
		t.Errorf("%s.Before(%s) = false, want true", a, b)
	}
	if !b.After(a) {
		t.Errorf("%s.After(%s) = false, want true", b, a)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2021, time.June, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2021-06-15"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2021-06-15"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
