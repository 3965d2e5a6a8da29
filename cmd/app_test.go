package cmd

import (
	"testing"

	"github.com/budgetup/budgetup"
)

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a1", []string{"a1"}},
		{"a1,a2", []string{"a1", "a2"}},
		{" a1 , ,a2 ", []string{"a1", "a2"}},
	}
	for _, tt := range tests {
		got := splitIDs(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("splitIDs(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("splitIDs(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestNetWorthEntriesNegatesDebt(t *testing.T) {
	cfg := budgetup.NewConfig()
	cfg.Accounts = []budgetup.AccountConfig{
		{ID: "a1", Name: "Checking", Type: budgetup.Checking},
		{ID: "a2", Name: "Visa", Type: budgetup.CreditCard},
	}
	accounts := []budgetup.Account{
		{ID: "a1", Name: "Checking", Type: budgetup.Checking, Balance: 100000},
		{ID: "a2", Name: "Visa", Type: budgetup.CreditCard, Balance: -40000},
	}

	entries := netWorthEntries(cfg, accounts)
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Category != budgetup.Cash || entries[0].Balance != 100000 {
		t.Errorf("cash entry = %+v", entries[0])
	}
	// Debt balances come back negative from the API but aggregate as
	// positive magnitudes.
	if entries[1].Category != budgetup.Debt || entries[1].Balance != 40000 {
		t.Errorf("debt entry = %+v", entries[1])
	}

	s := budgetup.AggregateNetWorth(entries)
	if s.Total != 60000 {
		t.Errorf("Total = %d, want 60000", s.Total)
	}
}

func TestBalanceRowsSelection(t *testing.T) {
	cfg := budgetup.NewConfig()
	cfg.Accounts = []budgetup.AccountConfig{
		{ID: "a1", Name: "Checking", Type: budgetup.Checking, Selected: true},
		{ID: "a2", Name: "Visa", Type: budgetup.CreditCard},
	}
	accounts := []budgetup.Account{
		{ID: "a1", Name: "Checking", Type: budgetup.Checking, Balance: 100000},
		{ID: "a2", Name: "Visa", Type: budgetup.CreditCard, Balance: -40000},
	}

	if rows := balanceRows(cfg, accounts, false); len(rows) != 1 || rows[0].Name != "Checking" {
		t.Errorf("selected-only rows = %+v", rows)
	}
	if rows := balanceRows(cfg, accounts, true); len(rows) != 2 {
		t.Errorf("all rows = %+v", rows)
	}
}
