package playerfolio

import "encoding/json"

// DefaultCurrency is the game's quote currency.
const DefaultCurrency = "USD"

// Settings holds the book-wide cash figures and configuration. They are not
// ledger entities: trades never touch them, only UpdateSettings does.
type Settings struct {
	DepositTotal   Money  `json:"deposit_total"`
	CashBalance    Money  `json:"cash_balance"`
	WithdrawnTotal Money  `json:"withdrawn_total"`
	BaseCurrency   string `json:"base_currency"`
	FeesPaid       Money  `json:"fees_paid"`
}

// DefaultSettings returns the settings of a fresh book.
func DefaultSettings() Settings {
	return Settings{BaseCurrency: DefaultCurrency}
}

// SettingsPatch is a partial settings update; nil fields retain the prior
// value.
type SettingsPatch struct {
	DepositTotal   *Money  `json:"deposit_total,omitempty"`
	CashBalance    *Money  `json:"cash_balance,omitempty"`
	WithdrawnTotal *Money  `json:"withdrawn_total,omitempty"`
	BaseCurrency   *string `json:"base_currency,omitempty"`
	FeesPaid       *Money  `json:"fees_paid,omitempty"`
}

// apply merges the patch into the settings, field by field.
func (s *Settings) apply(p SettingsPatch) {
	if p.DepositTotal != nil {
		s.DepositTotal = *p.DepositTotal
	}
	if p.CashBalance != nil {
		s.CashBalance = *p.CashBalance
	}
	if p.WithdrawnTotal != nil {
		s.WithdrawnTotal = *p.WithdrawnTotal
	}
	if p.BaseCurrency != nil {
		s.BaseCurrency = *p.BaseCurrency
	}
	if p.FeesPaid != nil {
		s.FeesPaid = *p.FeesPaid
	}
}

// normalize stamps the base currency on every amount, and defaults the
// currency itself. Decoded amounts are bare numbers.
func (s *Settings) normalize() {
	if s.BaseCurrency == "" {
		s.BaseCurrency = DefaultCurrency
	}
	s.DepositTotal = s.DepositTotal.withCurrency(s.BaseCurrency)
	s.CashBalance = s.CashBalance.withCurrency(s.BaseCurrency)
	s.WithdrawnTotal = s.WithdrawnTotal.withCurrency(s.BaseCurrency)
	s.FeesPaid = s.FeesPaid.withCurrency(s.BaseCurrency)
}

// MarshalJSON implements the json.Marshaler interface for Settings.
func (s Settings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("deposit_total", s.DepositTotal)
	w.Append("cash_balance", s.CashBalance)
	w.Append("withdrawn_total", s.WithdrawnTotal)
	w.Append("base_currency", s.BaseCurrency)
	w.Append("fees_paid", s.FeesPaid)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Settings.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*s = Settings(temp)
	s.normalize()
	return nil
}
