package playerfolio

import (
	"errors"
	"testing"
)

func TestBook_RecordTrade_Buy(t *testing.T) {
	b := NewBook()
	tr, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), USD(0.05), "opening lot")
	if err != nil {
		t.Fatalf("RecordTrade: %v", err)
	}

	if !tr.Gross.Equal(USD(10)) {
		t.Errorf("Gross = %s, want 10.00", tr.Gross)
	}
	// A buy consumes cash: -(gross + fees).
	if !tr.Net.Equal(USD(-10.05)) {
		t.Errorf("Net = %s, want -10.05", tr.Net)
	}
	if !tr.Realised.IsZero() {
		t.Errorf("Realised = %s, want 0 on a buy", tr.Realised)
	}

	p, ok := b.Ledger().Position("Josh Allen")
	if !ok || !p.Shares.Equal(Q(1000)) || !p.AvgCost.Equal(USD(0.01)) {
		t.Errorf("ledger position = %+v, want 1000 shares at 0.01", p)
	}
	last, ok := b.Journal().Last()
	if !ok || !last.Equal(tr) {
		t.Error("journal does not end with the recorded trade")
	}
}

func TestBook_RecordTrade_Sell(t *testing.T) {
	b := NewBook()
	if _, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordTrade(MustParse("2026-08-02"), "Josh Allen", Buy, Q(1000), USD(0.02), Money{}, ""); err != nil {
		t.Fatal(err)
	}

	tr, err := b.RecordTrade(MustParse("2026-08-10"), "Josh Allen", Sell, Q(500), USD(0.03), USD(0.10), "")
	if err != nil {
		t.Fatalf("RecordTrade: %v", err)
	}
	if !tr.Gross.Equal(USD(15)) {
		t.Errorf("Gross = %s, want 15.00", tr.Gross)
	}
	// A sell produces cash: gross - fees.
	if !tr.Net.Equal(USD(14.90)) {
		t.Errorf("Net = %s, want 14.90", tr.Net)
	}
	// Realised uses the basis before the sell: (0.03 - 0.015) * 500.
	if !tr.Realised.Equal(USD(7.5)) {
		t.Errorf("Realised = %s, want 7.50", tr.Realised)
	}
}

func TestBook_RecordTrade_Validation(t *testing.T) {
	b := NewBook()
	testCases := []struct {
		name   string
		player string
		side   Side
		shares Quantity
		price  Money
		fees   Money
		want   error
	}{
		{"empty player", "", Buy, Q(1), USD(1), Money{}, ErrValidation},
		{"unknown side", "A", Side("short"), Q(1), USD(1), Money{}, ErrValidation},
		{"zero shares", "A", Buy, Q(0), USD(1), Money{}, ErrValidation},
		{"negative shares", "A", Buy, Q(-5), USD(1), Money{}, ErrValidation},
		{"negative price", "A", Buy, Q(1), USD(-1), Money{}, ErrValidation},
		{"negative fees", "A", Buy, Q(1), USD(1), USD(-1), ErrValidation},
		{"oversell", "A", Sell, Q(1), USD(1), Money{}, ErrInsufficientShares},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.RecordTrade(Today(), tc.player, tc.side, tc.shares, tc.price, tc.fees, "")
			if !errors.Is(err, tc.want) {
				t.Errorf("RecordTrade error = %v, want %v", err, tc.want)
			}
		})
	}
	// No rejected trade may have reached the journal.
	if b.Journal().Len() != 0 {
		t.Errorf("journal has %d entries after rejected trades, want 0", b.Journal().Len())
	}
}

// A rejected oversell leaves both the ledger and the journal untouched.
func TestBook_RecordTrade_Atomic(t *testing.T) {
	b := NewBook()
	if _, err := b.RecordTrade(MustParse("2026-08-01"), "CMC", Buy, Q(1500), USD(0.02), Money{}, ""); err != nil {
		t.Fatal(err)
	}
	before, _ := b.Ledger().Position("CMC")
	journalBefore := b.Journal().Len()

	_, err := b.RecordTrade(MustParse("2026-08-02"), "CMC", Sell, Q(2000), USD(0.03), Money{}, "")
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("oversell error = %v, want ErrInsufficientShares", err)
	}

	after, _ := b.Ledger().Position("CMC")
	if !after.Equal(before) {
		t.Errorf("ledger changed after rejected trade: %+v vs %+v", after, before)
	}
	if b.Journal().Len() != journalBefore {
		t.Error("journal grew after rejected trade")
	}
}

func TestBook_Rebuild(t *testing.T) {
	b := NewBook()
	must := func(_ Trade, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-02"), "Josh Allen", Buy, Q(1000), USD(0.02), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-03"), "Josh Allen", Sell, Q(500), USD(0.03), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-03"), "CMC", Buy, Q(200), USD(0.05), Money{}, ""))
	if err := b.SetPrice("Josh Allen", USD(0.04)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetTag("Josh Allen", TagWatch); err != nil {
		t.Fatal(err)
	}
	if err := b.SetBatch("Josh Allen", "week-1"); err != nil {
		t.Fatal(err)
	}

	want := make(map[string]Position)
	for p := range b.Ledger().Positions() {
		want[p.Player] = p
	}

	if err := b.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	for p := range b.Ledger().Positions() {
		if !p.Equal(want[p.Player]) {
			t.Errorf("Rebuild changed %q: %+v, want %+v", p.Player, p, want[p.Player])
		}
		delete(want, p.Player)
	}
	if len(want) != 0 {
		t.Errorf("Rebuild lost positions: %v", want)
	}
}

func TestBook_UpdateSettings(t *testing.T) {
	b := NewBook()
	deposit := USD(100)
	cash := USD(42.5)
	b.UpdateSettings(SettingsPatch{DepositTotal: &deposit, CashBalance: &cash})

	s := b.Settings()
	if !s.DepositTotal.Equal(USD(100)) || !s.CashBalance.Equal(USD(42.5)) {
		t.Errorf("settings = %+v, want deposit 100 cash 42.5", s)
	}
	if s.BaseCurrency != "USD" {
		t.Errorf("BaseCurrency = %q, want USD", s.BaseCurrency)
	}

	// A later partial patch must not clobber the untouched fields.
	withdrawn := USD(10)
	b.UpdateSettings(SettingsPatch{WithdrawnTotal: &withdrawn})
	s = b.Settings()
	if !s.DepositTotal.Equal(USD(100)) {
		t.Errorf("DepositTotal = %s after unrelated patch, want 100", s.DepositTotal)
	}
	if !s.WithdrawnTotal.Equal(USD(10)) {
		t.Errorf("WithdrawnTotal = %s, want 10", s.WithdrawnTotal)
	}
}

func TestBook_TakeSnapshot(t *testing.T) {
	b := NewBook()
	if _, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.SetPrice("Josh Allen", USD(0.02)); err != nil {
		t.Fatal(err)
	}
	cash := USD(90)
	b.UpdateSettings(SettingsPatch{CashBalance: &cash})

	day := MustParse("2026-08-15")
	s := b.TakeSnapshot(day)
	if !s.Value.Equal(USD(20)) {
		t.Errorf("Value = %s, want 20.00", s.Value)
	}
	if !s.Unrealised.Equal(USD(10)) {
		t.Errorf("Unrealised = %s, want 10.00", s.Unrealised)
	}
	if !s.Cash.Equal(USD(90)) {
		t.Errorf("Cash = %s, want 90.00", s.Cash)
	}

	// Snapping the same day again replaces, not duplicates.
	if err := b.SetPrice("Josh Allen", USD(0.03)); err != nil {
		t.Fatal(err)
	}
	s2 := b.TakeSnapshot(day)
	if b.History().Len() != 1 {
		t.Fatalf("History.Len() = %d, want 1", b.History().Len())
	}
	last, _ := b.History().Last()
	if !last.Equal(s2) {
		t.Error("history did not keep the replacement snapshot")
	}
}
