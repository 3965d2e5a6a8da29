package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/budgetup/budgetup"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type accountsCmd struct {
	selectIDs   string
	deselectIDs string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list budget accounts and pick the ones to review" }
func (*accountsCmd) Usage() string {
	return `bup accounts [-select <ids>] [-deselect <ids>]

  Fetches the open accounts of the selected budget and refreshes the local
  account list, keeping previous selections. -select and -deselect take
  comma-separated account ids and toggle which accounts the balances,
  networth and reconcile commands work on.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.selectIDs, "select", "", "Comma-separated account ids to add to the review set.")
	f.StringVar(&c.deselectIDs, "deselect", "", "Comma-separated account ids to remove from the review set.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fresh := make([]budgetup.AccountConfig, 0, len(accounts))
	for _, a := range accounts {
		fresh = append(fresh, budgetup.AccountConfig{ID: a.ID, Name: a.Name, Type: a.Type})
	}
	cfg.MergeAccounts(fresh)

	for _, id := range splitIDs(c.selectIDs) {
		if err := cfg.SetAccountSelected(id, true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	for _, id := range splitIDs(c.deselectIDs) {
		if err := cfg.SetAccountSelected(id, false); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	if err := SaveConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts of " + budget.Name)
	table := md.TableSet{
		Header: []string{"", "ID", "Name", "Type", "Category"},
	}
	for _, a := range cfg.Accounts {
		mark := ""
		if a.Selected {
			mark = "*"
		}
		table.Rows = append(table.Rows, []string{
			mark, a.ID, a.Name, string(a.Type), a.NetWorthCategory().Title(),
		})
	}
	doc.Table(table)
	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
