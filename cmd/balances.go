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

type balancesCmd struct {
	all bool
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show current balances of the reviewed accounts" }
func (*balancesCmd) Usage() string {
	return `bup balances [-all]

  Fetches fresh balances from YNAB and shows them for the accounts selected
  with 'bup accounts -select'. -all shows every open account instead.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Show all open accounts, not only the selected ones.")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		fmt.Fprintf(os.Stderr, "Error fetching balances: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := balanceRows(cfg, accounts, c.all)
	printMarkdown(renderer.Balances(rows, budget.CurrencyFormat))

	return subcommands.ExitSuccess
}

// balanceRows joins fresh API balances with the configured selection and
// category overrides.
func balanceRows(cfg *budgetup.Config, accounts []budgetup.Account, all bool) []renderer.BalanceRow {
	selected := make(map[string]budgetup.AccountConfig)
	for _, a := range cfg.SelectedAccounts() {
		selected[a.ID] = a
	}
	var rows []renderer.BalanceRow
	for _, a := range accounts {
		acc, ok := selected[a.ID]
		if !ok {
			if !all {
				continue
			}
			acc = budgetup.AccountConfig{ID: a.ID, Name: a.Name, Type: a.Type}
		}
		rows = append(rows, renderer.BalanceRow{
			Name:     a.Name,
			Category: acc.NetWorthCategory(),
			Balance:  a.Balance,
		})
	}
	return rows
}
