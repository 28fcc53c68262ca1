package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/rosterfun/playerfolio"
)

// HistoryMarkdown renders the snapshot history table, in date order.
func HistoryMarkdown(book string, snapshots []playerfolio.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title("History", book))

	if len(snapshots) == 0 {
		doc.PlainText("No snapshots recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Value", "Cash", "Unrealised", "Realised"},
		Rows:   [][]string{},
	}
	for _, s := range snapshots {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			s.Value.String(),
			s.Cash.String(),
			signed(s.Unrealised),
			signed(s.Realised),
		})
	}
	doc.Table(table)

	return doc.String()
}
