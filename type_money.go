package costbasis

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value for report amounts: a decimal amount with its
// currency. The matching engine itself is currency-free; Money only exists
// at the reporting boundary, where amounts are formatted with the
// currency's symbol and fraction.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps an amount in a currency for display.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// currency returns a never-nil currency, going through the money.Money
// constructor to resolve unknown codes to a default.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
