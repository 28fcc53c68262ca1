package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rosterfun/playerfolio"
)

// SummaryMarkdown renders the portfolio totals and cash figures on a date.
func SummaryMarkdown(book string, on playerfolio.Date, totals playerfolio.Totals, settings playerfolio.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))

	doc.H2("Positions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Market Value", totals.MarketValue.String()},
			{"Cost Basis", totals.CostBasis.String()},
			{"Unrealised P&L", signed(totals.Unrealised)},
			{"Realised P&L", signed(totals.Realised)},
			{"Total P&L", signed(totals.TotalPnL)},
			{"ROI", totals.ROI.String()},
		},
	}
	doc.Table(table)

	doc.H2("Cash")
	cash := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Cash Balance", settings.CashBalance.String()},
			{"Deposited", settings.DepositTotal.String()},
			{"Withdrawn", settings.WithdrawnTotal.String()},
			{"Fees Paid", settings.FeesPaid.String()},
		},
	}
	doc.Table(cash)

	return doc.String()
}
