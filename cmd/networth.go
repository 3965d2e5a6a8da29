package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/budgetup/budgetup"
	"github.com/budgetup/budgetup/renderer"
	"github.com/google/subcommands"
)

type networthCmd struct {
	breakdown bool
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the net-worth overview or breakdown" }
func (*networthCmd) Usage() string {
	return `bup networth [-breakdown]

  Aggregates fresh account balances into a net-worth view: total, category
  subtotals and weights. By default an overview ordered by weight;
  -breakdown lists every account under its category in a fixed order
  (Assets, Savings, Cash, Debt).
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.breakdown, "breakdown", false, "Show the per-account breakdown instead of the overview.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	budget, err := cfg.SelectedBudget()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	client, err := NewClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	accounts, err := client.Accounts(budget.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := budgetup.AggregateNetWorth(netWorthEntries(cfg, accounts))

	if c.breakdown {
		printMarkdown(renderer.NetWorthBreakdown(summary, budget.CurrencyFormat))
	} else {
		printMarkdown(renderer.NetWorthOverview(summary, budget.CurrencyFormat))
	}
	return subcommands.ExitSuccess
}

// netWorthEntries builds aggregation input from fresh balances. Debt
// accounts carry negative API balances; entries hold their positive
// magnitude since the aggregation subtracts the debt category.
func netWorthEntries(cfg *budgetup.Config, accounts []budgetup.Account) []budgetup.NetWorthEntry {
	overrides := make(map[string]budgetup.AccountConfig, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		overrides[a.ID] = a
	}
	var entries []budgetup.NetWorthEntry
	for _, a := range accounts {
		acc, ok := overrides[a.ID]
		if !ok {
			acc = budgetup.AccountConfig{ID: a.ID, Name: a.Name, Type: a.Type}
		}
		category := acc.NetWorthCategory()
		balance := a.Balance
		if category == budgetup.Debt {
			balance = balance.Neg()
		}
		entries = append(entries, budgetup.NetWorthEntry{
			AccountID:   a.ID,
			AccountName: a.Name,
			Category:    category,
			Balance:     balance,
		})
	}
	return entries
}
