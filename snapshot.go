package playerfolio

import (
	"encoding/json"
	"iter"
	"sort"
)

// Snapshot is an immutable point-in-time record of the portfolio totals,
// used for historical charting. The field names are the historical export
// format of the dashboard this book descends from.
type Snapshot struct {
	Date        Date  `json:"date"`
	Value       Money `json:"portfolioValueUSD"`
	Cash        Money `json:"cashUSD"`
	Realised    Money `json:"realisedUSD"`
	Unrealised  Money `json:"unrealisedUSD"`
	Deposits    Money `json:"depositsUSD"`
	Withdrawals Money `json:"withdrawalsUSD"`
}

func (s Snapshot) Equal(o Snapshot) bool {
	return s.Date == o.Date &&
		s.Value.Equal(o.Value) &&
		s.Cash.Equal(o.Cash) &&
		s.Realised.Equal(o.Realised) &&
		s.Unrealised.Equal(o.Unrealised) &&
		s.Deposits.Equal(o.Deposits) &&
		s.Withdrawals.Equal(o.Withdrawals)
}

// MarshalJSON implements the json.Marshaler interface for Snapshot.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", s.Date)
	w.Append("portfolioValueUSD", s.Value)
	w.Append("cashUSD", s.Cash)
	w.Append("realisedUSD", s.Realised)
	w.Append("unrealisedUSD", s.Unrealised)
	w.Append("depositsUSD", s.Deposits)
	w.Append("withdrawalsUSD", s.Withdrawals)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Snapshot.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	type plain Snapshot
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*s = Snapshot(temp)
	return nil
}

// History is the ordered sequence of snapshots. Append keeps the sequence
// sorted by date; a snapshot taken again on the same day replaces the
// earlier one.
type History struct {
	snapshots []Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{snapshots: make([]Snapshot, 0)}
}

// Len returns the number of snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Append adds a snapshot, replacing any existing snapshot on the same day,
// and maintains date order. The sort is stable so same-day replacement
// never reorders neighbors.
func (h *History) Append(s Snapshot) {
	for i, existing := range h.snapshots {
		if existing.Date == s.Date {
			h.snapshots[i] = s
			return
		}
	}
	h.snapshots = append(h.snapshots, s)
	sort.SliceStable(h.snapshots, func(i, j int) bool {
		return h.snapshots[i].Date.Before(h.snapshots[j].Date)
	})
}

// Last returns the most recent snapshot.
func (h *History) Last() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

// Snapshots returns an iterator over snapshots in date order.
func (h *History) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range h.snapshots {
			if !yield(s) {
				return
			}
		}
	}
}

// On returns the snapshot taken on the given date.
func (h *History) On(date Date) (Snapshot, bool) {
	for _, s := range h.snapshots {
		if s.Date == date {
			return s, true
		}
	}
	return Snapshot{}, false
}
