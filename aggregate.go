package playerfolio

// Totals is the derived portfolio-level aggregate. It is a pure projection of
// the ledger: computed on demand, never stored, so it cannot drift from the
// positions it summarizes.
type Totals struct {
	CostBasis   Money
	MarketValue Money
	Unrealised  Money
	Realised    Money
	TotalPnL    Money
	ROI         Percent
}

// Totals computes the portfolio aggregate. Cost basis, market value and
// unrealised P&L sum over held positions only; realised P&L sums over all
// positions, exited ones keep their history.
//
// ROI is total P&L over cost basis. A portfolio with no held shares has no
// basis to earn a return on, so ROI is zero, not an error.
func (b *Book) Totals() Totals {
	var t Totals
	for p := range b.ledger.Positions() {
		t.Realised = t.Realised.Add(p.Realised)
		if !p.IsHeld() {
			continue
		}
		t.CostBasis = t.CostBasis.Add(p.CostBasis())
		t.MarketValue = t.MarketValue.Add(p.MarketValue())
		t.Unrealised = t.Unrealised.Add(p.Unrealised())
	}
	t.TotalPnL = t.Unrealised.Add(t.Realised)
	t.ROI = PercentOf(t.TotalPnL, t.CostBasis)
	return t
}

// Snapshot derives a snapshot of the book on a date, with the given cash
// figures. It does not record it; see TakeSnapshot.
func (b *Book) Snapshot(on Date, cash, deposits, withdrawals Money) Snapshot {
	t := b.Totals()
	return Snapshot{
		Date:        on,
		Value:       t.MarketValue,
		Cash:        cash,
		Realised:    t.Realised,
		Unrealised:  t.Unrealised,
		Deposits:    deposits,
		Withdrawals: withdrawals,
	}
}
