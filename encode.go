package playerfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file holds the stream codecs for the book's data files. Everything is
// JSONL, one record per line, human-readable and git-friendly: the book is
// meant to live in a private repo and diff cleanly.

// decodeJSONL reads records from a JSONL stream. Empty lines are skipped.
// kind names the record type in error messages.
func decodeJSONL[T any](r io.Reader, kind string) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformedInput, kind, i, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s stream: %v", ErrMalformedInput, kind, err)
	}
	return records, nil
}

// encodeJSONL writes records to a JSONL stream, one per line.
func encodeJSONL[T any](w io.Writer, records []T) error {
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("cannot marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write record: %w", err)
		}
	}
	return nil
}

// DecodeLedger reads positions from a JSONL stream into a ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	positions, err := decodeJSONL[Position](r, "position")
	if err != nil {
		return nil, err
	}
	l := NewLedger()
	for _, p := range positions {
		if p.Player == "" {
			return nil, fmt.Errorf("%w: position with no player name", ErrMalformedInput)
		}
		if p.Shares.IsNegative() || p.AvgCost.IsNegative() || p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: position %q holds a negative amount", ErrMalformedInput, p.Player)
		}
		l.insert(p)
	}
	return l, nil
}

// EncodeLedger writes the positions to a JSONL stream in player order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for p := range l.Positions() {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("cannot marshal position %q: %w", p.Player, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write position %q: %w", p.Player, err)
		}
	}
	return nil
}

// DecodeJournal reads trades from a JSONL stream. Insertion order is
// preserved: it is the fold order of Rebuild.
func DecodeJournal(r io.Reader) (*Journal, error) {
	trades, err := decodeJSONL[Trade](r, "trade")
	if err != nil {
		return nil, err
	}
	j := NewJournal()
	j.trades = trades
	return j, nil
}

// EncodeJournal writes the trades to a JSONL stream in insertion order.
func EncodeJournal(w io.Writer, j *Journal) error {
	return encodeJSONL(w, j.trades)
}

// EncodeTrade marshals a single trade and writes it followed by a newline,
// the JSONL append used after each recorded trade.
func EncodeTrade(w io.Writer, t Trade) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("cannot marshal trade: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write trade: %w", err)
	}
	return nil
}

// DecodeHistory reads snapshots from a JSONL stream. Appending through the
// history keeps the date order and the one-per-day rule even if the file was
// hand-edited.
func DecodeHistory(r io.Reader) (*History, error) {
	snapshots, err := decodeJSONL[Snapshot](r, "snapshot")
	if err != nil {
		return nil, err
	}
	h := NewHistory()
	for _, s := range snapshots {
		h.Append(s)
	}
	return h, nil
}

// EncodeHistory writes the snapshots to a JSONL stream in date order.
func EncodeHistory(w io.Writer, h *History) error {
	return encodeJSONL(w, h.snapshots)
}

// DecodeSettings reads the settings from a JSON stream.
func DecodeSettings(r io.Reader) (Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: reading settings: %v", ErrMalformedInput, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: settings: %v", ErrMalformedInput, err)
	}
	return s, nil
}

// EncodeSettings writes the settings as an indented JSON document.
func EncodeSettings(w io.Writer, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal settings: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write settings: %w", err)
	}
	return nil
}
