package playerfolio

import "fmt"

// Book owns the whole state of one portfolio: the position ledger, the trade
// journal, the snapshot history and the settings. It is the single logical
// owner required by the accounting rules: every mutation goes through its
// narrow API, and each mutation is atomic, fully applied or not at all.
//
// A Book is not safe for concurrent mutation; callers serialize, there is no
// internal locking.
type Book struct {
	name     string
	ledger   *Ledger
	journal  *Journal
	history  *History
	settings Settings
}

// NewBook creates an empty book with default settings.
func NewBook() *Book {
	return &Book{
		ledger:   NewLedger(),
		journal:  NewJournal(),
		history:  NewHistory(),
		settings: DefaultSettings(),
	}
}

// Name returns the book's name, set when it is loaded from disk.
func (b *Book) Name() string { return b.name }

// Ledger returns the position ledger.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Journal returns the trade journal.
func (b *Book) Journal() *Journal { return b.journal }

// History returns the snapshot history.
func (b *Book) History() *History { return b.history }

// Settings returns a copy of the current settings.
func (b *Book) Settings() Settings { return b.settings }

// Currency returns the book's base currency.
func (b *Book) Currency() string { return b.settings.BaseCurrency }

// UpdateSettings merges the patch into the settings. This is the only way
// settings change; trades never touch them.
func (b *Book) UpdateSettings(p SettingsPatch) {
	b.settings.apply(p)
	b.settings.normalize()
}

// RecordTrade validates, derives and records one buy or sell:
// the derived amounts (gross, net, realised) are computed against the
// ledger state before the trade, the ledger is updated, and the immutable
// trade record is appended to the journal. On any error nothing changes.
func (b *Book) RecordTrade(on Date, player string, side Side, shares Quantity, price, fees Money, notes string) (Trade, error) {
	if on.IsZero() {
		on = Today()
	}
	if player == "" {
		return Trade{}, fmt.Errorf("%w: player name is missing", ErrValidation)
	}
	if side != Buy && side != Sell {
		return Trade{}, fmt.Errorf("%w: unknown trade side %q", ErrValidation, side)
	}
	if !shares.IsPositive() {
		return Trade{}, fmt.Errorf("%w: trade shares must be positive, got %s", ErrValidation, shares)
	}
	if price.IsNegative() {
		return Trade{}, fmt.Errorf("%w: trade price must not be negative, got %s", ErrValidation, price)
	}
	if fees.IsNegative() {
		return Trade{}, fmt.Errorf("%w: trade fees must not be negative, got %s", ErrValidation, fees)
	}
	price = price.withCurrency(cur(price, M(0, b.settings.BaseCurrency)))
	fees = fees.withCurrency(price.Currency())

	t := Trade{
		Date:   on,
		Player: player,
		Side:   side,
		Shares: shares,
		Price:  price,
		Fees:   fees,
		Gross:  price.Mul(shares),
		Notes:  notes,
	}

	switch side {
	case Buy:
		t.Net = t.Gross.Add(fees).Neg()
		b.ledger.applyBuy(player, shares, price)
	case Sell:
		t.Net = t.Gross.Sub(fees)
		// Capture the cost basis before the ledger mutates.
		avgBefore := b.ledger.positions[player].AvgCost
		t.Realised = price.Sub(avgBefore).Mul(shares)
		if err := b.ledger.applySell(player, shares, price); err != nil {
			return Trade{}, err
		}
	}

	b.journal.append(t)
	return t, nil
}

// SetPrice records the latest market price for a player.
func (b *Book) SetPrice(player string, price Money) error {
	price = price.withCurrency(cur(price, M(0, b.settings.BaseCurrency)))
	return b.ledger.SetPrice(player, price)
}

// SetTag sets the informational tag on a position.
func (b *Book) SetTag(player string, tag Tag) error {
	return b.ledger.SetTag(player, tag)
}

// SetBatch sets the informational batch label on a position.
func (b *Book) SetBatch(player string, batch string) error {
	return b.ledger.SetBatch(player, batch)
}

// TakeSnapshot packages the current totals and the settings' cash figures
// into a snapshot and appends it to the history.
func (b *Book) TakeSnapshot(on Date) Snapshot {
	if on.IsZero() {
		on = Today()
	}
	s := b.Snapshot(on, b.settings.CashBalance, b.settings.DepositTotal, b.settings.WithdrawnTotal)
	b.history.Append(s)
	return s
}

// Rebuild refolds the journal from scratch and replaces the ledger's share
// counts, cost bases and realised totals. Prices, tags and batches are
// carried over: they are not part of the trade record.
//
// After a rebuild the ledger equals the deterministic fold of the journal in
// insertion order, which is the state the incremental updates maintain.
//
// An error means the journal is corrupt, an oversell that could never have
// been recorded; the ledger is left untouched.
func (b *Book) Rebuild() error {
	rebuilt := NewLedger()
	for i, t := range b.journal.Trades(AcceptAll) {
		switch t.Side {
		case Buy:
			rebuilt.applyBuy(t.Player, t.Shares, t.Price)
		case Sell:
			if err := rebuilt.applySell(t.Player, t.Shares, t.Price); err != nil {
				return fmt.Errorf("corrupt journal at trade %d: %w", i, err)
			}
		}
	}
	for p := range b.ledger.Positions() {
		r := rebuilt.positions[p.Player]
		r.Player = p.Player
		r.Price = p.Price
		r.Tag = p.Tag
		r.Batch = p.Batch
		rebuilt.positions[p.Player] = r
	}
	b.ledger = rebuilt
	return nil
}
