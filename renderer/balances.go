package renderer

import (
	"bytes"

	"github.com/budgetup/budgetup"
	md "github.com/nao1215/markdown"
)

// BalanceRow is one reviewed account in the balances report.
type BalanceRow struct {
	Name     string
	Category budgetup.Category
	Balance  budgetup.Milliunits
}

// Balances renders the reviewed accounts with their current balances.
func Balances(rows []BalanceRow, f budgetup.CurrencyFormat) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Balances")
	if len(rows) == 0 {
		doc.PlainText("No accounts selected. Run `bup accounts -select <id>` first.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Account", "Category", "Balance"},
	}
	var total budgetup.Milliunits
	for _, r := range rows {
		total = total.Add(r.Balance)
		table.Rows = append(table.Rows, []string{
			r.Name,
			r.Category.Title(),
			budgetup.FormatBalance(r.Balance, f),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", md.Bold(budgetup.FormatBalance(total, f)),
	})
	doc.Table(table)

	return doc.String()
}
