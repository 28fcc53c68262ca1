package playerfolio

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePositionPatches(t *testing.T) {
	input := `
{"player": "Josh Allen", "shares": 1000, "avgCost": 0.01, "price": 0.02}

{"player": "CMC", "price": 0.05}
`
	patches, err := DecodePositionPatches(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, patches, 2)

	assert.Equal(t, "Josh Allen", patches[0].Player)
	require.NotNil(t, patches[0].Shares)
	assert.True(t, patches[0].Shares.Equal(Q(1000)))
	require.NotNil(t, patches[0].AvgCost)
	assert.True(t, patches[0].AvgCost.Equal(USD(0.01)))

	assert.Equal(t, "CMC", patches[1].Player)
	assert.Nil(t, patches[1].Shares, "fields the line omits stay nil")
	require.NotNil(t, patches[1].Price)
	assert.True(t, patches[1].Price.Equal(USD(0.05)))
}

func TestDecodePositionPatches_Malformed(t *testing.T) {
	_, err := DecodePositionPatches(strings.NewReader(`{"player": "ok"}` + "\nnot json\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput), "error %v should wrap ErrMalformedInput", err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestBook_ImportPositions_MergesExisting(t *testing.T) {
	b := NewBook()
	_, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, "")
	require.NoError(t, err)
	require.NoError(t, b.SetTag("Josh Allen", TagWatch))

	// The patch only carries a price; everything else must survive.
	price := USD(0.02)
	applied, skipped := b.ImportPositions([]PositionPatch{{Player: "Josh Allen", Price: &price}})
	assert.Equal(t, 1, applied)
	assert.Equal(t, 0, skipped)

	p, ok := b.Ledger().Position("Josh Allen")
	require.True(t, ok)
	assert.True(t, p.Shares.Equal(Q(1000)), "shares clobbered by partial patch")
	assert.True(t, p.AvgCost.Equal(USD(0.01)), "avgCost clobbered by partial patch")
	assert.True(t, p.Price.Equal(USD(0.02)))
	assert.Equal(t, TagWatch, p.Tag, "tag clobbered by partial patch")
}

func TestBook_ImportPositions_NewPlayer(t *testing.T) {
	b := NewBook()
	shares, avgCost, price := Q(500), USD(0.03), USD(0.04)

	// A complete new entry is inserted.
	applied, skipped := b.ImportPositions([]PositionPatch{
		{Player: "CMC", Shares: &shares, AvgCost: &avgCost, Price: &price},
	})
	assert.Equal(t, 1, applied)
	assert.Equal(t, 0, skipped)
	p, ok := b.Ledger().Position("CMC")
	require.True(t, ok)
	assert.True(t, p.Shares.Equal(Q(500)))

	// Incomplete new entries are skipped, not fatal.
	applied, skipped = b.ImportPositions([]PositionPatch{
		{Player: "Puka Nacua", Price: &price},
		{Player: ""},
	})
	assert.Equal(t, 0, applied)
	assert.Equal(t, 2, skipped)
	_, ok = b.Ledger().Position("Puka Nacua")
	assert.False(t, ok)
}

// Negative amounts can never be recorded by a trade, so an import must not
// smuggle them in either.
func TestBook_ImportPositions_RejectsNegative(t *testing.T) {
	b := NewBook()
	_, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, "")
	require.NoError(t, err)

	shares, avgCost, price := Q(-500), USD(0.03), USD(0.04)
	negCost, negPrice := USD(-0.01), USD(-0.02)
	applied, skipped := b.ImportPositions([]PositionPatch{
		{Player: "Ghost", Shares: &shares, AvgCost: &avgCost, Price: &price},
		{Player: "Josh Allen", AvgCost: &negCost},
		{Player: "Josh Allen", Price: &negPrice},
	})
	assert.Equal(t, 0, applied)
	assert.Equal(t, 3, skipped)

	_, ok := b.Ledger().Position("Ghost")
	assert.False(t, ok, "negative-share entry reached the ledger")
	p, _ := b.Ledger().Position("Josh Allen")
	assert.True(t, p.AvgCost.Equal(USD(0.01)), "negative patch changed avgCost")
	assert.False(t, p.Shares.IsNegative())
}

// Importing a book's own export must not change it.
func TestBook_ImportPositions_RoundTripIdempotent(t *testing.T) {
	b := NewBook()
	_, err := b.RecordTrade(MustParse("2026-08-01"), "Josh Allen", Buy, Q(1000), USD(0.01), Money{}, "")
	require.NoError(t, err)
	require.NoError(t, b.SetPrice("Josh Allen", USD(0.02)))

	var patches []PositionPatch
	for p := range b.Ledger().Positions() {
		p := p
		patches = append(patches, PositionPatch{
			Player:   p.Player,
			Shares:   &p.Shares,
			AvgCost:  &p.AvgCost,
			Price:    &p.Price,
			Realised: &p.Realised,
			Tag:      &p.Tag,
			Batch:    &p.Batch,
		})
	}
	before, _ := b.Ledger().Position("Josh Allen")

	applied, skipped := b.ImportPositions(patches)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 0, skipped)
	after, _ := b.Ledger().Position("Josh Allen")
	assert.True(t, after.Equal(before), "re-import changed the position: %+v vs %+v", after, before)
}
