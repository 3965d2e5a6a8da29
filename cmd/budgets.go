package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/budgetup/budgetup"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type budgetsCmd struct {
	selectID string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets and select the one to work on" }
func (*budgetsCmd) Usage() string {
	return `bup budgets [-select <budget_id>]

  Lists the budgets the YNAB token can see. With -select, remembers the
  given budget (and its currency format) as the one every other command
  works on.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.selectID, "select", "", "Budget id to select for all further commands.")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	client, err := NewClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	budgets, err := client.Budgets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching budgets: %v\n", err)
		return subcommands.ExitFailure
	}

	fresh := make([]budgetup.BudgetConfig, 0, len(budgets))
	for _, b := range budgets {
		fresh = append(fresh, budgetup.BudgetConfig{
			ID:             b.ID,
			Name:           b.Name,
			CurrencyFormat: budgetup.EffectiveCurrencyFormat(b.CurrencyFormat),
		})
	}
	cfg.MergeBudgets(fresh)

	if c.selectID != "" {
		if err := cfg.SelectBudget(c.selectID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		// The settings endpoint is authoritative for the currency format.
		format, err := client.BudgetCurrencyFormat(c.selectID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot fetch budget settings, using the registry format: %v\n", err)
			sel, serr := cfg.SelectedBudget()
			if serr != nil {
				fmt.Fprintln(os.Stderr, serr)
				return subcommands.ExitFailure
			}
			format = budgetup.DefaultCurrencyFormat(sel.CurrencyFormat.IsoCode)
		}
		for i := range cfg.Budgets {
			if cfg.Budgets[i].ID == c.selectID {
				cfg.Budgets[i].CurrencyFormat = format
			}
		}
	}

	if err := SaveConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Budgets")
	table := md.TableSet{
		Header: []string{"", "ID", "Name", "Currency"},
	}
	for _, b := range cfg.Budgets {
		mark := ""
		if b.Selected {
			mark = "*"
		}
		table.Rows = append(table.Rows, []string{mark, b.ID, b.Name, b.CurrencyFormat.CurrencySymbol})
	}
	doc.Table(table)
	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}
