package playerfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
)

// PositionPatch is a partial position update. Player identifies the position;
// every other field is optional, nil means "keep the current value". A batch
// of patches is how external data (an exported holdings file, a price feed)
// is merged into the ledger without clobbering what it does not mention.
type PositionPatch struct {
	Player   string    `json:"player"`
	Shares   *Quantity `json:"shares,omitempty"`
	AvgCost  *Money    `json:"avgCost,omitempty"`
	Price    *Money    `json:"price,omitempty"`
	Realised *Money    `json:"realised,omitempty"`
	Tag      *Tag      `json:"tag,omitempty"`
	Batch    *string   `json:"batch,omitempty"`
}

// DecodePositionPatches reads patches from a JSONL stream, one object per
// line. Blank lines are skipped. Any unreadable line fails the whole decode:
// a partially-read import must not be merged.
func DecodePositionPatches(r io.Reader) ([]PositionPatch, error) {
	var patches []PositionPatch
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scan.Scan() {
		line++
		txt := strings.TrimSpace(scan.Text())
		if txt == "" {
			continue
		}
		var p PositionPatch
		if err := json.Unmarshal([]byte(txt), &p); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		patches = append(patches, p)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return patches, nil
}

// ImportPositions merges a batch of patches into the ledger.
//
// A patch for an existing player updates only the fields it carries. A patch
// for a new player must carry at least shares, average cost and price, enough
// to stand as a position on its own; incomplete new entries are skipped with
// a warning rather than failing the batch. It returns how many patches were
// applied and how many skipped.
func (b *Book) ImportPositions(patches []PositionPatch) (applied, skipped int) {
	base := b.settings.BaseCurrency
	for _, patch := range patches {
		if patch.Player == "" {
			log.Printf("import: skipping entry with no player name")
			skipped++
			continue
		}
		// Shares never go negative, and a negative basis or price could not
		// have been recorded; such entries are rejected like incomplete ones.
		if patch.Shares != nil && patch.Shares.IsNegative() {
			log.Printf("import: skipping %q: negative shares %s", patch.Player, patch.Shares)
			skipped++
			continue
		}
		if patch.AvgCost != nil && patch.AvgCost.IsNegative() {
			log.Printf("import: skipping %q: negative avgCost %s", patch.Player, patch.AvgCost)
			skipped++
			continue
		}
		if patch.Price != nil && patch.Price.IsNegative() {
			log.Printf("import: skipping %q: negative price %s", patch.Player, patch.Price)
			skipped++
			continue
		}
		p, exists := b.ledger.Position(patch.Player)
		if !exists {
			if patch.Shares == nil || patch.AvgCost == nil || patch.Price == nil {
				log.Printf("import: skipping new player %q: shares, avgCost and price are all required", patch.Player)
				skipped++
				continue
			}
			p = Position{Player: patch.Player}
		}
		if patch.Shares != nil {
			p.Shares = *patch.Shares
		}
		if patch.AvgCost != nil {
			p.AvgCost = patch.AvgCost.withCurrency(base)
		}
		if patch.Price != nil {
			p.Price = patch.Price.withCurrency(base)
		}
		if patch.Realised != nil {
			p.Realised = patch.Realised.withCurrency(base)
		}
		if patch.Tag != nil {
			p.Tag = *patch.Tag
		}
		if patch.Batch != nil {
			p.Batch = *patch.Batch
		}
		b.ledger.insert(p)
		applied++
	}
	return applied, skipped
}
