package costbasis

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// QuoteSource fetches the latest market quote for a position from a JSON
// HTTP endpoint. The value is located inside the response with a jsonpath
// expression, so any provider returning JSON can be plugged in without
// writing provider code.
//
// Quotes matter only to the at-market removal policy: a removal carries no
// proceeds of its own, so the market value has to be stamped onto the
// record before it is applied.
type QuoteSource struct {
	// URL of the JSON quote endpoint.
	URL string
	// Path is the jsonpath expression locating the quote in the response,
	// e.g. "$.quote.latestPrice" or "$.data[-1:][1]".
	Path string
	// Client used for fetches. Nil means Daily(), the day-cached client.
	Client *http.Client
}

// Latest fetches the endpoint and extracts the quote.
func (q QuoteSource) Latest() (float64, error) {
	client := q.Client
	if client == nil {
		client = Daily()
	}
	var jobj any
	if err := jwget(client, q.URL, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", q.URL, err)
	}
	return extractQuote(jobj, q.Path)
}

// extractQuote evaluates a jsonpath expression against a decoded JSON value
// and coerces the result to a float.
func extractQuote(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error evaluating %q: not a float: %v", path, jval)
	}
	return val, nil
}

// PriceRemovals stamps the source's latest quote onto every Remove
// transaction in the series, leaving the other records untouched. A single
// quote is fetched lazily, on the first removal found. Meant to run before
// feeding the series to a holding under the at-market policy.
func PriceRemovals(txs []Transaction, src QuoteSource) ([]Transaction, error) {
	out := make([]Transaction, len(txs))
	quote := math.NaN()
	for i, t := range txs {
		if t.Kind() == Remove {
			if math.IsNaN(quote) {
				v, err := src.Latest()
				if err != nil {
					return nil, fmt.Errorf("cannot price removal %s: %w", t, err)
				}
				quote = v
			}
			t = t.WithPrice(quote)
		}
		out[i] = t
	}
	return out, nil
}
