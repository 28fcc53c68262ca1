package playerfolio

import (
	"fmt"
	"os"
	"path/filepath"
)

// A book is a directory of plain data files:
//
//	positions.jsonl  current state of every position, one per line
//	trades.jsonl     the journal, append-only, insertion order
//	snapshots.jsonl  history, one snapshot per line, date order
//	settings.json    cash figures and base currency
//
// Missing files mean empty sections, so a fresh directory is a valid empty
// book.
const (
	positionsFilename = "positions.jsonl"
	tradesFilename    = "trades.jsonl"
	snapshotsFilename = "snapshots.jsonl"
	settingsFilename  = "settings.json"
)

// LoadBook reads a book from its directory. A missing directory or missing
// files load as empty; malformed content is an error.
func LoadBook(dir string) (*Book, error) {
	b := NewBook()
	b.name = filepath.Base(filepath.Clean(dir))

	if err := loadFile(filepath.Join(dir, settingsFilename), func(f *os.File) error {
		s, err := DecodeSettings(f)
		if err != nil {
			return err
		}
		b.settings = s
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, positionsFilename), func(f *os.File) error {
		l, err := DecodeLedger(f)
		if err != nil {
			return err
		}
		b.ledger = l
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, tradesFilename), func(f *os.File) error {
		j, err := DecodeJournal(f)
		if err != nil {
			return err
		}
		b.journal = j
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, snapshotsFilename), func(f *os.File) error {
		h, err := DecodeHistory(f)
		if err != nil {
			return err
		}
		b.history = h
		return nil
	}); err != nil {
		return nil, err
	}

	b.stampCurrency()
	return b, nil
}

// loadFile opens a data file and hands it to decode. A missing file is not an
// error, the section stays empty.
func loadFile(path string, decode func(*os.File) error) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	return nil
}

// SaveBook writes all of the book's data files, creating the directory if
// needed. Files are rewritten whole; the journal's insertion order survives
// the round trip.
func SaveBook(dir string, b *Book) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create book directory %q: %w", dir, err)
	}
	if err := saveFile(filepath.Join(dir, positionsFilename), func(f *os.File) error {
		return EncodeLedger(f, b.ledger)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dir, tradesFilename), func(f *os.File) error {
		return EncodeJournal(f, b.journal)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dir, snapshotsFilename), func(f *os.File) error {
		return EncodeHistory(f, b.history)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(dir, settingsFilename), func(f *os.File) error {
		return EncodeSettings(f, b.settings)
	})
}

func saveFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

// stampCurrency sets the base currency on every decoded amount. Data files
// store amounts as bare numbers; the currency lives in the settings only.
func (b *Book) stampCurrency() {
	base := b.settings.BaseCurrency
	for player, p := range b.ledger.positions {
		p.AvgCost = p.AvgCost.withCurrency(base)
		p.Price = p.Price.withCurrency(base)
		p.Realised = p.Realised.withCurrency(base)
		b.ledger.positions[player] = p
	}
	for i, t := range b.journal.trades {
		t.Price = t.Price.withCurrency(base)
		t.Fees = t.Fees.withCurrency(base)
		t.Gross = t.Gross.withCurrency(base)
		t.Net = t.Net.withCurrency(base)
		t.Realised = t.Realised.withCurrency(base)
		b.journal.trades[i] = t
	}
	for i, s := range b.history.snapshots {
		s.Value = s.Value.withCurrency(base)
		s.Cash = s.Cash.withCurrency(base)
		s.Realised = s.Realised.withCurrency(base)
		s.Unrealised = s.Unrealised.withCurrency(base)
		s.Deposits = s.Deposits.withCurrency(base)
		s.Withdrawals = s.Withdrawals.withCurrency(base)
		b.history.snapshots[i] = s
	}
}
