package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/rosterfun/playerfolio"
)

// TransactionsMarkdown renders the trade log table. Trades arrive already
// filtered, in journal order.
func TransactionsMarkdown(book string, trades []playerfolio.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title("Trades", book))

	if len(trades) == 0 {
		doc.PlainText("No trades recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Player", "Side", "Shares", "Price", "Fees", "Net", "Realised", "Notes"},
		Rows:   [][]string{},
	}
	for _, t := range trades {
		realised := "-"
		if t.Side == playerfolio.Sell {
			realised = signed(t.Realised)
		}
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			t.Player,
			string(t.Side),
			count(t.Shares),
			t.Price.String(),
			t.Fees.String(),
			signed(t.Net),
			realised,
			t.Notes,
		})
	}
	doc.Table(table)

	return doc.String()
}
