package playerfolio

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a ratio expressed in percent (12.5 means 12.5%).
type Percent struct {
	value decimal.Decimal
}

// PercentOf returns part/whole expressed in percent. When whole is zero the
// result is zero: a return on nothing invested is not meaningful.
func PercentOf(part, whole Money) Percent {
	if whole.value.IsZero() {
		return Percent{}
	}
	return Percent{value: part.value.Div(whole.value).Mul(hundred)}
}

func (p Percent) IsZero() bool     { return p.value.IsZero() }
func (p Percent) IsNegative() bool { return p.value.IsNegative() }

// String formats the percent with an explicit sign and two decimals.
func (p Percent) String() string {
	if p.value.IsPositive() {
		return "+" + p.value.StringFixed(2) + "%"
	}
	return p.value.StringFixed(2) + "%"
}

// MarshalJSON persists the percent as a bare number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(bytes []byte) error {
	return p.value.UnmarshalJSON(bytes)
}
