package budgetup

import (
	"testing"
	"time"
)

func TestAdjustmentDelta(t *testing.T) {
	a := Adjustment{Current: 100000, New: 123450}
	if a.Delta() != 23450 {
		t.Errorf("Delta = %d, want 23450", a.Delta())
	}
	b := Adjustment{Current: -50000, New: -60000}
	if b.Delta() != -10000 {
		t.Errorf("Delta = %d, want -10000", b.Delta())
	}
}

func TestPendingAdjustments(t *testing.T) {
	adjs := []Adjustment{
		{AccountID: "a1", Current: 100000, New: 90000},
		{AccountID: "a2", Current: 50000, New: 50000},
		{AccountID: "a3", Current: -20000, New: -15000},
	}
	pending := PendingAdjustments(adjs)
	if len(pending) != 2 || pending[0].AccountID != "a1" || pending[1].AccountID != "a3" {
		t.Errorf("PendingAdjustments = %+v, want a1 and a3", pending)
	}
	if got := PendingAdjustments(nil); got != nil {
		t.Errorf("PendingAdjustments(nil) = %+v, want nil", got)
	}
}

func TestBuildAdjustmentTransactions(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	adjs := []Adjustment{
		{AccountID: "a1", AccountName: "Checking", Current: 100000, New: 90000},
		{AccountID: "a2", AccountName: "Savings", Current: 50000, New: 50000}, // no change
		{AccountID: "a3", AccountName: "Visa", Current: -20000, New: -15000},
	}

	txs := BuildAdjustmentTransactions(adjs, "memo text", Reconciled, now)

	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want zero-delta dropped: %+v", len(txs), txs)
	}
	first := txs[0]
	if first.AccountID != "a1" || first.Amount != -10000 {
		t.Errorf("first tx = %+v", first)
	}
	if first.Date != "2026-08-30" {
		t.Errorf("Date = %q, want 2026-08-30", first.Date)
	}
	if first.PayeeName != DefaultPayeeName || first.Memo != "memo text" || first.Cleared != Reconciled || !first.Approved {
		t.Errorf("tx fields = %+v", first)
	}
	if txs[1].Amount != 5000 {
		t.Errorf("second tx amount = %d, want 5000", txs[1].Amount)
	}
}

func TestBuildAdjustmentTransactionsDefaultMemo(t *testing.T) {
	txs := BuildAdjustmentTransactions(
		[]Adjustment{{AccountID: "a1", New: 1000}}, "", Cleared, time.Now())
	if len(txs) != 1 || txs[0].Memo != DefaultAdjustmentMemo {
		t.Errorf("txs = %+v, want default memo", txs)
	}
}
