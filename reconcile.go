package budgetup

import "time"

// Adjustment is one planned balance correction: the account, the balance the
// API currently reports and the balance the user says is true.
type Adjustment struct {
	AccountID   string
	AccountName string
	Current     Milliunits
	New         Milliunits
}

// Delta is the transaction amount that moves Current to New.
func (a Adjustment) Delta() Milliunits { return a.New.Sub(a.Current) }

// PendingAdjustments drops the adjustments whose balance already matches.
// Only the rest become transactions and show up in confirmation prompts.
func PendingAdjustments(adjs []Adjustment) []Adjustment {
	var out []Adjustment
	for _, a := range adjs {
		if !a.Delta().IsZero() {
			out = append(out, a)
		}
	}
	return out
}

// BuildAdjustmentTransactions turns planned adjustments into transactions
// dated today. Zero-delta adjustments are dropped: the balance already
// matches and YNAB rejects empty amounts anyway.
func BuildAdjustmentTransactions(adjs []Adjustment, memo string, cleared ClearedStatus, now time.Time) []NewTransaction {
	if memo == "" {
		memo = DefaultAdjustmentMemo
	}
	var txs []NewTransaction
	for _, a := range PendingAdjustments(adjs) {
		txs = append(txs, NewTransaction{
			AccountID: a.AccountID,
			Date:      now.Format("2006-01-02"),
			Amount:    a.Delta(),
			PayeeName: DefaultPayeeName,
			Memo:      memo,
			Cleared:   cleared,
			Approved:  true,
		})
	}
	return txs
}
