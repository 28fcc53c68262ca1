package playerfolio

import "testing"

func TestBook_Totals(t *testing.T) {
	b := NewBook()
	must := func(_ Trade, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	// Held: 1000 @ 0.01, priced 0.02.
	must(b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, ""))
	if err := b.SetPrice("Josh Allen", USD(0.02)); err != nil {
		t.Fatal(err)
	}
	// Held: 500 @ 0.04, priced 0.03.
	must(b.RecordTrade(MustParse("2026-08-02"), "CMC", Buy, Q(500), USD(0.04), Money{}, ""))
	if err := b.SetPrice("CMC", USD(0.03)); err != nil {
		t.Fatal(err)
	}
	// Fully exited with a 2.00 gain: excluded from basis and value, kept in realised.
	must(b.RecordTrade(MustParse("2026-08-03"), "Puka Nacua", Buy, Q(100), USD(0.10), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-04"), "Puka Nacua", Sell, Q(100), USD(0.12), Money{}, ""))

	totals := b.Totals()

	if !totals.CostBasis.Equal(USD(30)) { // 10 + 20
		t.Errorf("CostBasis = %s, want 30.00", totals.CostBasis)
	}
	if !totals.MarketValue.Equal(USD(35)) { // 20 + 15
		t.Errorf("MarketValue = %s, want 35.00", totals.MarketValue)
	}
	if !totals.Unrealised.Equal(USD(5)) { // +10 - 5
		t.Errorf("Unrealised = %s, want 5.00", totals.Unrealised)
	}
	if !totals.Realised.Equal(USD(2)) {
		t.Errorf("Realised = %s, want 2.00", totals.Realised)
	}
	if !totals.TotalPnL.Equal(USD(7)) {
		t.Errorf("TotalPnL = %s, want 7.00", totals.TotalPnL)
	}
	// 7 / 30 = 23.33%
	if got := totals.ROI.String(); got != "+23.33%" {
		t.Errorf("ROI = %s, want +23.33%%", got)
	}
}

func TestBook_Totals_Empty(t *testing.T) {
	b := NewBook()
	totals := b.Totals()
	if !totals.CostBasis.IsZero() || !totals.TotalPnL.IsZero() {
		t.Errorf("empty book totals = %+v, want all zero", totals)
	}
	if !totals.ROI.IsZero() {
		t.Errorf("ROI = %s on empty book, want 0", totals.ROI)
	}
}

// A fully exited portfolio still has realised P&L but no basis; ROI stays
// zero rather than dividing by zero.
func TestBook_Totals_NoBasis(t *testing.T) {
	b := NewBook()
	if _, err := b.RecordTrade(MustParse("2026-08-01"), "CMC", Buy, Q(100), USD(0.10), Money{}, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordTrade(MustParse("2026-08-02"), "CMC", Sell, Q(100), USD(0.15), Money{}, ""); err != nil {
		t.Fatal(err)
	}

	totals := b.Totals()
	if !totals.Realised.Equal(USD(5)) {
		t.Errorf("Realised = %s, want 5.00", totals.Realised)
	}
	if !totals.ROI.IsZero() {
		t.Errorf("ROI = %s with zero basis, want 0", totals.ROI)
	}
}
