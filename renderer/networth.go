package renderer

import (
	"bytes"

	"github.com/budgetup/budgetup"
	md "github.com/nao1215/markdown"
)

// NetWorthOverview renders the total and the category weights, heaviest
// category first.
func NetWorthOverview(s budgetup.NetWorthSummary, f budgetup.CurrencyFormat) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Worth")
	doc.PlainText(md.Bold(budgetup.FormatBalance(s.Total, f)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Balance", "Weight"},
	}
	for _, c := range s.CategoriesByWeight() {
		table.Rows = append(table.Rows, []string{
			c.Title(),
			budgetup.FormatBalance(s.CategorySubtotal[c], f),
			budgetup.PercentOf(s.CategoryRatio[c]).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// NetWorthBreakdown renders every account under its category, in the fixed
// Assets, Savings, Cash, Debt order.
func NetWorthBreakdown(s budgetup.NetWorthSummary, f budgetup.CurrencyFormat) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Worth Breakdown")
	doc.PlainText("Total: " + md.Bold(budgetup.FormatBalance(s.Total, f)))

	for _, c := range budgetup.BreakdownOrder {
		entries := s.CategoryEntries(c)
		if len(entries) == 0 {
			continue
		}
		doc.H2(c.Title())
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Account", "Balance", "Weight"},
		}
		for _, e := range entries {
			table.Rows = append(table.Rows, []string{
				e.AccountName,
				budgetup.FormatBalance(e.Balance, f),
				budgetup.PercentOf(s.EntryRatio[e.AccountID]).String(),
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Subtotal"),
			md.Bold(budgetup.FormatBalance(s.CategorySubtotal[c], f)),
			budgetup.PercentOf(s.CategoryRatio[c]).String(),
		})
		doc.Table(table)
	}

	return doc.String()
}
