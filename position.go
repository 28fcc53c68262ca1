package playerfolio

import "encoding/json"

// Position is the authoritative current state of one player's holding:
// the share count, the weighted average cost of those shares, the latest
// known market price, and the realised profit accumulated by past sells.
//
// Tag and Batch are informational labels; they never enter a calculation.
type Position struct {
	Player   string
	Shares   Quantity
	AvgCost  Money
	Price    Money
	Realised Money
	Tag      Tag
	Batch    string
}

// CostBasis returns the total cost of the currently held shares.
func (p Position) CostBasis() Money { return p.AvgCost.Mul(p.Shares) }

// MarketValue returns the value of the held shares at the latest price.
func (p Position) MarketValue() Money { return p.Price.Mul(p.Shares) }

// Unrealised returns the paper profit or loss on the held shares.
func (p Position) Unrealised() Money { return p.MarketValue().Sub(p.CostBasis()) }

// IsHeld reports whether any shares are currently held.
func (p Position) IsHeld() bool { return p.Shares.IsPositive() }

func (p Position) Equal(o Position) bool {
	return p.Player == o.Player &&
		p.Shares.Equal(o.Shares) &&
		p.AvgCost.Equal(o.AvgCost) &&
		p.Price.Equal(o.Price) &&
		p.Realised.Equal(o.Realised) &&
		p.Tag == o.Tag &&
		p.Batch == o.Batch
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("player", p.Player)
	w.Append("shares", p.Shares)
	w.Append("avgCost", p.AvgCost)
	w.Append("price", p.Price)
	w.Append("realised", p.Realised)
	if p.Tag != TagKeep {
		w.Append("tag", p.Tag)
	}
	w.Optional("batch", p.Batch)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position.
func (p *Position) UnmarshalJSON(data []byte) error {
	var temp struct {
		Player   string   `json:"player"`
		Shares   Quantity `json:"shares"`
		AvgCost  Money    `json:"avgCost"`
		Price    Money    `json:"price"`
		Realised Money    `json:"realised"`
		Tag      Tag      `json:"tag"`
		Batch    string   `json:"batch"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = Position(temp)
	return nil
}
