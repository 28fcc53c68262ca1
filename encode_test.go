package playerfolio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeJournal_RoundTrip(t *testing.T) {
	b := NewBook()
	must := func(_ Trade, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), USD(0.05), "opening lot"))
	must(b.RecordTrade(MustParse("2026-08-02"), "Josh Allen", Sell, Q(400), USD(0.02), Money{}, ""))

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, b.Journal()); err != nil {
		t.Fatalf("EncodeJournal: %v", err)
	}
	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal: %v", err)
	}
	if decoded.Len() != b.Journal().Len() {
		t.Fatalf("decoded %d trades, want %d", decoded.Len(), b.Journal().Len())
	}
	for i, got := range decoded.Trades(AcceptAll) {
		want := b.journal.trades[i]
		if !got.Equal(want) {
			t.Errorf("trade %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestDecodeLedger_Malformed(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader("{broken\n"))
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("DecodeLedger error = %v, want ErrMalformedInput", err)
	}
	_, err = DecodeLedger(strings.NewReader(`{"shares": 10}` + "\n"))
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("DecodeLedger error for nameless position = %v, want ErrMalformedInput", err)
	}
	// Hand-edited files must not smuggle in negative amounts.
	_, err = DecodeLedger(strings.NewReader(`{"player": "Ghost", "shares": -500, "avgCost": 0.03, "price": 0.04}` + "\n"))
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("DecodeLedger error for negative shares = %v, want ErrMalformedInput", err)
	}
}

func TestLoadSaveBook_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mybook")
	b := NewBook()
	must := func(_ Trade, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.0123), Money{}, ""))
	must(b.RecordTrade(MustParse("2026-08-02"), "Josh Allen", Sell, Q(250), USD(0.02), USD(0.01), "trim"))
	if err := b.SetPrice("Josh Allen", USD(0.0198)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetBatch("Josh Allen", "week-1"); err != nil {
		t.Fatal(err)
	}
	cash := USD(42.5)
	b.UpdateSettings(SettingsPatch{CashBalance: &cash})
	b.TakeSnapshot(MustParse("2026-08-03"))

	if err := SaveBook(dir, b); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}
	loaded, err := LoadBook(dir)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}

	if loaded.Name() != "mybook" {
		t.Errorf("Name() = %q, want mybook", loaded.Name())
	}
	wantP, _ := b.Ledger().Position("Josh Allen")
	gotP, ok := loaded.Ledger().Position("Josh Allen")
	if !ok || !gotP.Equal(wantP) {
		t.Errorf("loaded position = %+v, want %+v", gotP, wantP)
	}
	if loaded.Journal().Len() != 2 {
		t.Fatalf("loaded journal has %d trades, want 2", loaded.Journal().Len())
	}
	wantLast, _ := b.Journal().Last()
	gotLast, _ := loaded.Journal().Last()
	if !gotLast.Equal(wantLast) {
		t.Errorf("loaded last trade = %+v, want %+v", gotLast, wantLast)
	}
	if !loaded.Settings().CashBalance.Equal(USD(42.5)) {
		t.Errorf("loaded cash = %s, want 42.5", loaded.Settings().CashBalance)
	}
	wantS, _ := b.History().Last()
	gotS, _ := loaded.History().Last()
	if !gotS.Equal(wantS) {
		t.Errorf("loaded snapshot = %+v, want %+v", gotS, wantS)
	}

	// Decoded amounts carry the base currency.
	if gotP.Price.Currency() != "USD" {
		t.Errorf("loaded price currency = %q, want USD", gotP.Price.Currency())
	}
}

func TestLoadBook_MissingDirectoryIsEmpty(t *testing.T) {
	b, err := LoadBook(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if b.Ledger().Len() != 0 || b.Journal().Len() != 0 || b.History().Len() != 0 {
		t.Error("book loaded from a missing directory is not empty")
	}
	if b.Settings().BaseCurrency != "USD" {
		t.Errorf("BaseCurrency = %q, want the USD default", b.Settings().BaseCurrency)
	}
}

// The journal file keeps growing by appending one line per trade; a rewrite
// of the whole book must produce the same bytes as the appends did.
func TestEncodeTrade_AppendMatchesRewrite(t *testing.T) {
	b := NewBook()
	t1, err := b.RecordTrade(MustParse("2026-08-01"), "CMC", Buy, Q(10), USD(0.5), Money{}, "")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := b.RecordTrade(MustParse("2026-08-02"), "CMC", Sell, Q(5), USD(0.6), Money{}, "")
	if err != nil {
		t.Fatal(err)
	}

	var appended bytes.Buffer
	if err := EncodeTrade(&appended, t1); err != nil {
		t.Fatal(err)
	}
	if err := EncodeTrade(&appended, t2); err != nil {
		t.Fatal(err)
	}

	var rewritten bytes.Buffer
	if err := EncodeJournal(&rewritten, b.Journal()); err != nil {
		t.Fatal(err)
	}
	if appended.String() != rewritten.String() {
		t.Errorf("append and rewrite diverge:\n%s\nvs\n%s", appended.String(), rewritten.String())
	}
}

func TestSaveBook_FilesOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "book")
	b := NewBook()
	if _, err := b.RecordTrade(MustParse("2026-08-01"), "CMC", Buy, Q(10), USD(0.5), Money{}, ""); err != nil {
		t.Fatal(err)
	}
	if err := SaveBook(dir, b); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}
	for _, name := range []string{positionsFilename, tradesFilename, snapshotsFilename, settingsFilename} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
