package playerfolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side. It is case-insensitive, import
// files capitalize ("Buy"/"Sell").
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Trade is one buy or sell, recorded once and never edited. Corrections are
// new offsetting trades.
//
// Gross, Net and Realised are derived when the trade is recorded and stored
// with it, so the journal is a self-contained record. Net follows the
// cash-flow sign convention: a buy consumes cash (negative), a sell produces
// cash (positive), fees always cost.
type Trade struct {
	Date   Date
	Player string
	Side   Side
	Shares Quantity
	Price  Money
	Fees   Money

	Gross    Money
	Net      Money
	Realised Money // sells only: (price - avgCost before the sell) * shares

	Notes string
}

// When returns the execution date of the trade.
func (t Trade) When() Date { return t.Date }

func (t Trade) Equal(o Trade) bool {
	return t.Date == o.Date &&
		t.Player == o.Player &&
		t.Side == o.Side &&
		t.Shares.Equal(o.Shares) &&
		t.Price.Equal(o.Price) &&
		t.Fees.Equal(o.Fees) &&
		t.Gross.Equal(o.Gross) &&
		t.Net.Equal(o.Net) &&
		t.Realised.Equal(o.Realised) &&
		t.Notes == o.Notes
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("player", t.Player)
	w.Append("side", t.Side)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price)
	if !t.Fees.IsZero() {
		w.Append("fees", t.Fees)
	}
	w.Append("gross", t.Gross)
	w.Append("net", t.Net)
	if t.Side == Sell {
		w.Append("realised", t.Realised)
	}
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date     Date     `json:"date"`
		Player   string   `json:"player"`
		Side     string   `json:"side"`
		Shares   Quantity `json:"shares"`
		Price    Money    `json:"price"`
		Fees     Money    `json:"fees"`
		Gross    Money    `json:"gross"`
		Net      Money    `json:"net"`
		Realised Money    `json:"realised"`
		Notes    string   `json:"notes"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	side, err := ParseSide(temp.Side)
	if err != nil {
		return err
	}
	*t = Trade{
		Date:     temp.Date,
		Player:   temp.Player,
		Side:     side,
		Shares:   temp.Shares,
		Price:    temp.Price,
		Fees:     temp.Fees,
		Gross:    temp.Gross,
		Net:      temp.Net,
		Realised: temp.Realised,
		Notes:    temp.Notes,
	}
	return nil
}
