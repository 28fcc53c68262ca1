package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rosterfun/playerfolio"
)

// HoldingsMarkdown renders the position table and the portfolio total line.
// Positions arrive already filtered and sorted by the caller.
func HoldingsMarkdown(book string, positions []playerfolio.Position, totals playerfolio.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title("Holdings", book))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Player", "Shares", "Avg Cost", "Price", "Value", "Unrealised", "Realised", "Tag"},
		Rows:   [][]string{},
	}
	for _, p := range positions {
		tag := p.Tag.String()
		if p.Batch != "" {
			tag += " (" + p.Batch + ")"
		}
		table.Rows = append(table.Rows, []string{
			p.Player,
			count(p.Shares),
			p.AvgCost.String(),
			p.Price.String(),
			p.MarketValue().String(),
			signed(p.Unrealised()),
			signed(p.Realised),
			tag,
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Market Value: %s | Cost Basis: %s | Total P&L: %s (%s)",
		totals.MarketValue, totals.CostBasis, signed(totals.TotalPnL), totals.ROI))

	return doc.String()
}
