package renderer

import "github.com/budgetup/budgetup"

// confirmView feeds the confirmation template with pre-formatted strings so
// the template stays pure layout.
type confirmView struct {
	Single bool
	Rows   []confirmRow
}

type confirmRow struct {
	Account    string
	Delta      string
	NewBalance string
}

// ConfirmAdjustments renders the prompt shown before submitting the planned
// balance adjustments.
func ConfirmAdjustments(adjs []budgetup.Adjustment, f budgetup.CurrencyFormat) string {
	view := confirmView{Single: len(adjs) == 1}
	for _, a := range adjs {
		view.Rows = append(view.Rows, confirmRow{
			Account:    a.AccountName,
			Delta:      budgetup.FormatBalance(a.Delta(), f),
			NewBalance: budgetup.FormatBalance(a.New, f),
		})
	}
	return renderTemplate("confirm", "templates/confirm_adjustments.md", view)
}
