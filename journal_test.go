package playerfolio

import "testing"

// The journal's own totals must agree with the ledger fold: realised P&L
// stored on sell entries sums to the ledger's realised, and the fees add up
// across every entry.
func TestJournal_TotalsMatchLedger(t *testing.T) {
	b := NewBook()
	must := func(_ Trade, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), USD(0.05), ""))
	must(b.RecordTrade(MustParse("2026-08-02"), "Josh Allen", Buy, Q(1000), USD(0.02), USD(0.05), ""))
	must(b.RecordTrade(MustParse("2026-08-03"), "Josh Allen", Sell, Q(500), USD(0.03), USD(0.10), ""))
	must(b.RecordTrade(MustParse("2026-08-04"), "CMC", Buy, Q(200), USD(0.05), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-05"), "CMC", Sell, Q(200), USD(0.04), Money{}, ""))

	if got := b.Journal().RealisedTotal(); !got.Equal(b.Totals().Realised) {
		t.Errorf("RealisedTotal = %s, ledger realised %s", got, b.Totals().Realised)
	}
	// (0.03 - 0.015)*500 + (0.04 - 0.05)*200 = 7.50 - 2.00
	if got := b.Journal().RealisedTotal(); !got.Equal(USD(5.5)) {
		t.Errorf("RealisedTotal = %s, want 5.50", got)
	}
	if got := b.Journal().FeesTotal(); !got.Equal(USD(0.20)) {
		t.Errorf("FeesTotal = %s, want 0.20", got)
	}
}

func TestJournal_Totals_Empty(t *testing.T) {
	j := NewJournal()
	if !j.RealisedTotal().IsZero() || !j.FeesTotal().IsZero() {
		t.Error("empty journal reported non-zero totals")
	}
}
