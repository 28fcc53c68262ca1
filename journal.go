package playerfolio

import "iter"

// Journal is the append-only record of every trade, in the order they were
// recorded. Entries are never edited or removed; insertion order is the only
// ordering guarantee, and it is what Rebuild folds over.
type Journal struct {
	trades []Trade
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{trades: make([]Trade, 0)}
}

// Len returns the number of recorded trades.
func (j *Journal) Len() int { return len(j.trades) }

// append records a fully-populated trade. Only the Book calls it, after the
// ledger update succeeded.
func (j *Journal) append(t Trade) {
	j.trades = append(j.trades, t)
}

// Last returns the most recently recorded trade.
func (j *Journal) Last() (Trade, bool) {
	if len(j.trades) == 0 {
		return Trade{}, false
	}
	return j.trades[len(j.trades)-1], true
}

// Trades returns an iterator that yields each trade in insertion order.
// A trade is yielded when any of the filters accepts it.
func (j *Journal) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range j.trades {
			accept := false
			for _, filter := range filters {
				if filter(t) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// AcceptAll accepts every trade.
func AcceptAll(Trade) bool { return true }

// ByPlayer returns a filter that accepts trades for the player.
func ByPlayer(player string) func(Trade) bool {
	return func(t Trade) bool { return t.Player == player }
}

// BySide returns a filter that accepts trades on the given side.
func BySide(side Side) func(Trade) bool {
	return func(t Trade) bool { return t.Side == side }
}

// ByRange returns a filter that accepts trades dated within the range.
func ByRange(r Range) func(Trade) bool {
	return func(t Trade) bool { return r.Contains(t.Date) }
}

// RealisedTotal sums the realised P&L recorded on sell entries.
func (j *Journal) RealisedTotal() Money {
	var total Money
	for _, t := range j.trades {
		if t.Side == Sell {
			total = total.Add(t.Realised)
		}
	}
	return total
}

// FeesTotal sums the fees paid across all entries.
func (j *Journal) FeesTotal() Money {
	var total Money
	for _, t := range j.trades {
		total = total.Add(t.Fees)
	}
	return total
}
