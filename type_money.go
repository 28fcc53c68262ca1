package playerfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, kept as a major-unit decimal.
//
// Player share prices are quoted with four or more fractional digits, so
// values are persisted with all their digits; rounding only happens when
// formatting for display.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is a shorthand for M(value, "USD"), the game's quote currency.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, money.USD)
}

// currency returns the money's full currency, falling back to USD when unset.
func (m Money) currency() *money.Currency {
	cur := m.cur
	if cur == "" {
		cur = money.USD
	}
	// the Money constructor guarantees a non nil currency.
	return money.New(0, cur).Currency()
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// String formats the value with its currency symbol, rounded for display.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction) + 2).Shift(int32(cur.Fraction) + 2)
	// Two extra fractional digits: share prices are sub-cent values.
	f := *cur
	f.Fraction += 2
	return f.Formatter().Format(dec.IntPart())
}

// SignedString formats the value with an explicit sign; zero is "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Equal reports whether two values are equal. The "" currency is weak and
// matches any currency, so freshly decoded amounts compare well.
func (m Money) Equal(n Money) bool {
	if m.cur != "" && n.cur != "" && m.cur != n.cur {
		return false
	}
	return m.value.Equal(n.value)
}

func (m Money) IsZero() bool                   { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// withCurrency stamps a currency on a value decoded from a data file, where
// amounts are stored as bare numbers in the book's base currency.
func (m Money) withCurrency(currency string) Money {
	m.cur = currency
	return m
}

// MarshalJSON persists the value as a bare decimal number with all its
// digits; the currency is the book's base currency and is not repeated on
// every amount.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
