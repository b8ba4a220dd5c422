package costbasis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuoteSourceLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quote":{"latestPrice":42.5}}`))
	}))
	defer server.Close()

	src := QuoteSource{URL: server.URL, Path: "$.quote.latestPrice", Client: server.Client()}
	got, err := src.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if !almost(got, 42.5) {
		t.Errorf("Latest() = %v, want 42.5", got)
	}
}

func TestQuoteSourceLatestHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src := QuoteSource{URL: server.URL, Path: "$.price", Client: server.Client()}
	if _, err := src.Latest(); err == nil {
		t.Error("Latest() expected an error on HTTP 503, got nil")
	}
}

func TestExtractQuoteUnwrapsList(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"prices":[40.0,41.5,42.5]}`), &jobj); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	got, err := extractQuote(jobj, "$.prices[-1:]")
	if err != nil {
		t.Fatalf("extractQuote() error = %v", err)
	}
	if !almost(got, 42.5) {
		t.Errorf("extractQuote() = %v, want 42.5", got)
	}
}

func TestExtractQuoteNotAFloat(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"price":"n/a"}`), &jobj); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, err := extractQuote(jobj, "$.price"); err == nil {
		t.Error("extractQuote() expected an error for a string value, got nil")
	}
}

func TestPriceRemovals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"price":35.0}`))
	}))
	defer server.Close()
	src := QuoteSource{URL: server.URL, Path: "$.price", Client: server.Client()}

	txs := []Transaction{
		mustTx(t, "2020-01-01,buy,100,25"),
		mustTx(t, "2020-02-01,remove,50,0"),
		mustTx(t, "2020-03-01,remove,10,0"),
	}
	priced, err := PriceRemovals(txs, src)
	if err != nil {
		t.Fatalf("PriceRemovals() error = %v", err)
	}
	if !almost(priced[0].Price(), 25) {
		t.Errorf("buy price = %v, want 25 unchanged", priced[0].Price())
	}
	if !almost(priced[1].Price(), 35) || !almost(priced[2].Price(), 35) {
		t.Errorf("removal prices = (%v, %v), want (35, 35)", priced[1].Price(), priced[2].Price())
	}
	// the original slice is left untouched
	if !almost(txs[1].Price(), 0) {
		t.Errorf("original removal price mutated to %v, want 0", txs[1].Price())
	}
}

func TestPriceRemovalsNoRemovals(t *testing.T) {
	// no fetch happens when the log holds no removals
	src := QuoteSource{URL: "http://127.0.0.1:0/unreachable", Path: "$.price"}
	txs := []Transaction{mustTx(t, "2020-01-01,buy,100,25")}
	priced, err := PriceRemovals(txs, src)
	if err != nil {
		t.Fatalf("PriceRemovals() error = %v", err)
	}
	if len(priced) != 1 || !almost(priced[0].Price(), 25) {
		t.Errorf("priced = %v, want the buy unchanged", priced)
	}
}
