package playerfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Ledger holds the authoritative current state of every player position.
//
// All mutation goes through the Book; the ledger itself only knows the
// average-cost update rules. Shares never go negative: a sell that would is
// rejected before anything changes.
type Ledger struct {
	positions map[string]Position
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{positions: make(map[string]Position)}
}

// Len returns the number of positions, held or not.
func (l *Ledger) Len() int { return len(l.positions) }

// Position returns the current position for a player.
func (l *Ledger) Position(player string) (Position, bool) {
	p, ok := l.positions[player]
	return p, ok
}

// Shares returns the number of shares currently held for a player, zero when
// the player is unknown.
func (l *Ledger) Shares(player string) Quantity {
	return l.positions[player].Shares
}

// applyBuy folds a buy into the position: the new average cost is the
// share-weighted mean of the existing basis and the new purchase. The
// position is created on first buy.
//
// The caller is responsible for validation; see Book.RecordTrade.
func (l *Ledger) applyBuy(player string, shares Quantity, price Money) {
	p := l.positions[player]
	p.Player = player

	total := p.Shares.Add(shares)
	if total.IsZero() {
		// Unreachable with shares > 0, kept to pin avgCost = 0 rather
		// than divide by zero.
		p.AvgCost = M(0, price.Currency())
	} else {
		cost := p.AvgCost.Mul(p.Shares).Add(price.Mul(shares))
		p.AvgCost = cost.Div(total)
	}
	p.Shares = total
	l.positions[player] = p
}

// applySell folds a sell into the position. The average cost of the
// remaining shares is unchanged: a partial sell does not alter the cost
// basis of what remains. Realised P&L accrues by (price - avgCost) * shares.
//
// When the sell is a full exit the average cost resets to zero: AvgCost is
// the cost of currently held shares, and nothing is held anymore.
func (l *Ledger) applySell(player string, shares Quantity, price Money) error {
	p, ok := l.positions[player]
	if !ok || shares.GreaterThan(p.Shares) {
		return fmt.Errorf("%w: sell %s shares of %q but only %s held",
			ErrInsufficientShares, shares, player, p.Shares)
	}
	gain := price.Sub(p.AvgCost).Mul(shares)
	p.Realised = p.Realised.Add(gain)
	p.Shares = p.Shares.Sub(shares)
	if p.Shares.IsZero() {
		p.AvgCost = M(0, price.Currency())
	}
	l.positions[player] = p
	return nil
}

// SetPrice records the latest market price for a player. It never touches
// shares, average cost, or realised P&L. An unknown player gets an empty
// position so that quotes can arrive before the first trade.
func (l *Ledger) SetPrice(player string, price Money) error {
	if player == "" {
		return fmt.Errorf("%w: player name is missing", ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative, got %s", ErrValidation, price)
	}
	p := l.positions[player]
	p.Player = player
	p.Price = price
	l.positions[player] = p
	return nil
}

// SetTag sets the informational tag on an existing position.
func (l *Ledger) SetTag(player string, tag Tag) error {
	p, ok := l.positions[player]
	if !ok {
		return fmt.Errorf("%w: unknown player %q", ErrValidation, player)
	}
	p.Tag = tag
	l.positions[player] = p
	return nil
}

// SetBatch sets the informational batch label on an existing position.
func (l *Ledger) SetBatch(player string, batch string) error {
	p, ok := l.positions[player]
	if !ok {
		return fmt.Errorf("%w: unknown player %q", ErrValidation, player)
	}
	p.Batch = batch
	l.positions[player] = p
	return nil
}

// insert stores a complete position, replacing any previous one. Used by the
// bulk import merge.
func (l *Ledger) insert(p Position) {
	l.positions[p.Player] = p
}

// Positions returns an iterator over all positions in player order.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		players := slices.Collect(maps.Keys(l.positions))
		slices.Sort(players)
		for _, player := range players {
			if !yield(l.positions[player]) {
				return
			}
		}
	}
}

// Filtered returns an iterator over the positions matching the predicate,
// in player order. The predicate never mutates.
func (l *Ledger) Filtered(accept func(Position) bool) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for p := range l.Positions() {
			if !accept(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Held accepts positions with shares currently held.
func Held(p Position) bool { return p.IsHeld() }

// ByTag returns a predicate that accepts positions carrying the tag.
func ByTag(tag Tag) func(Position) bool {
	return func(p Position) bool { return p.Tag == tag }
}

// ByBatch returns a predicate that accepts positions in the batch.
func ByBatch(batch string) func(Position) bool {
	return func(p Position) bool { return p.Batch == batch }
}

// BySearch returns a predicate that accepts positions whose player name
// contains the query, case-insensitively.
func BySearch(query string) func(Position) bool {
	query = strings.ToLower(query)
	return func(p Position) bool {
		return strings.Contains(strings.ToLower(p.Player), query)
	}
}

// And combines predicates; the result accepts a position only if all do.
func And(preds ...func(Position) bool) func(Position) bool {
	return func(p Position) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
