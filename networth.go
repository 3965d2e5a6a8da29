package budgetup

import (
	"fmt"
	"slices"
	"strings"
)

// Category classifies an account for net-worth purposes.
type Category int

const (
	Cash Category = iota
	Savings
	Debt
	Assets
)

// BreakdownOrder is the fixed category order of the detailed net-worth view.
// The overview instead sorts categories by their weight, see
// [NetWorthSummary.CategoriesByWeight].
var BreakdownOrder = [4]Category{Assets, Savings, Cash, Debt}

func (c Category) String() string {
	switch c {
	case Cash:
		return "cash"
	case Savings:
		return "savings"
	case Debt:
		return "debt"
	case Assets:
		return "assets"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Title returns the category name as shown in reports.
func (c Category) Title() string {
	switch c {
	case Cash:
		return "Cash"
	case Savings:
		return "Savings"
	case Debt:
		return "Debt"
	case Assets:
		return "Assets"
	}
	return c.String()
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "savings":
		return Savings, nil
	case "debt":
		return Debt, nil
	case "assets":
		return Assets, nil
	}
	return 0, fmt.Errorf("unknown category %q (want cash, savings, debt or assets)", s)
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AccountType is the account-type metadata string of the YNAB API.
type AccountType string

const (
	Checking       AccountType = "checking"
	SavingsAccount AccountType = "savings"
	CashAccount    AccountType = "cash"
	CreditCard     AccountType = "creditCard"
	LineOfCredit   AccountType = "lineOfCredit"
	Mortgage       AccountType = "mortgage"
	AutoLoan       AccountType = "autoLoan"
	StudentLoan    AccountType = "studentLoan"
	PersonalLoan   AccountType = "personalLoan"
	MedicalDebt    AccountType = "medicalDebt"
	OtherDebt      AccountType = "otherDebt"
	OtherAsset     AccountType = "otherAsset"
	OtherLiability AccountType = "otherLiability"
)

// CategoryOf maps a YNAB account type to its net-worth category. The switch
// names every type the API documents; an unknown future type lands in Cash,
// the most conservative bucket for an on-budget account.
func CategoryOf(t AccountType) Category {
	switch t {
	case Checking, CashAccount:
		return Cash
	case SavingsAccount:
		return Savings
	case CreditCard, LineOfCredit, Mortgage, AutoLoan, StudentLoan,
		PersonalLoan, MedicalDebt, OtherDebt, OtherLiability:
		return Debt
	case OtherAsset:
		return Assets
	}
	return Cash
}

// NetWorthEntry is one account's contribution to the net-worth view. Debt
// balances are carried as positive magnitudes; the aggregation subtracts
// them.
type NetWorthEntry struct {
	AccountID   string
	AccountName string
	Category    Category
	Balance     Milliunits
}

// NetWorthSummary is the immutable result of one aggregation pass. It keeps
// both per-entry and per-category figures so callers can derive either
// presentation order from the same data.
type NetWorthSummary struct {
	Total            Milliunits
	Entries          []NetWorthEntry
	EntryRatio       map[string]float64
	CategorySubtotal map[Category]Milliunits
	CategoryRatio    map[Category]float64
}

// AggregateNetWorth computes total net worth, per-category subtotals and
// relative weights from a snapshot of account balances. It is a pure
// function recomputed on every refresh; order of entries is irrelevant.
//
// The total is cash + savings + assets - debt. When it comes out to zero
// every ratio is 0.0 rather than a division error.
func AggregateNetWorth(entries []NetWorthEntry) NetWorthSummary {
	s := NetWorthSummary{
		Entries:          slices.Clone(entries),
		EntryRatio:       make(map[string]float64, len(entries)),
		CategorySubtotal: make(map[Category]Milliunits, len(BreakdownOrder)),
		CategoryRatio:    make(map[Category]float64, len(BreakdownOrder)),
	}

	for _, e := range entries {
		s.CategorySubtotal[e.Category] += e.Balance
	}
	s.Total = s.CategorySubtotal[Cash] +
		s.CategorySubtotal[Savings] +
		s.CategorySubtotal[Assets] -
		s.CategorySubtotal[Debt]

	for _, e := range entries {
		s.EntryRatio[e.AccountID] = ratio(e.Balance, s.Total)
	}
	for c, sub := range s.CategorySubtotal {
		s.CategoryRatio[c] = ratio(sub, s.Total)
	}
	return s
}

func ratio(part, total Milliunits) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total)
}

// CategoriesByWeight returns the categories present in the summary, heaviest
// first. Ties keep the fixed breakdown order so output is deterministic.
func (s NetWorthSummary) CategoriesByWeight() []Category {
	var present []Category
	for _, c := range BreakdownOrder {
		if _, ok := s.CategorySubtotal[c]; ok {
			present = append(present, c)
		}
	}
	slices.SortStableFunc(present, func(a, b Category) int {
		switch ra, rb := s.CategoryRatio[a], s.CategoryRatio[b]; {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}
		return 0
	})
	return present
}

// CategoryEntries returns the summary entries of one category, heaviest
// first, with ties broken by account name.
func (s NetWorthSummary) CategoryEntries(c Category) []NetWorthEntry {
	var out []NetWorthEntry
	for _, e := range s.Entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b NetWorthEntry) int {
		ra, rb := s.EntryRatio[a.AccountID], s.EntryRatio[b.AccountID]
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}
		return strings.Compare(a.AccountName, b.AccountName)
	})
	return out
}
