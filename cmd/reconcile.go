package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/budgetup/budgetup"
	"github.com/budgetup/budgetup/renderer"
	"github.com/google/subcommands"
)

type reconcileCmd struct {
	sets setFlags
	yes  bool
}

// setFlags collects repeated -set account=balance pairs.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ", ") }
func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want <account>=<balance>, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "bulk-adjust several account balances at once" }
func (*reconcileCmd) Usage() string {
	return `bup reconcile [-yes] -set <account>=<balance> [-set ...]

  Parses each typed balance, computes per-account adjustment deltas against
  the current balances, shows a summary of the planned adjustments and
  creates them in one bulk transaction call. Accounts whose balance already
  matches are skipped.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.sets, "set", "Account and new balance as <account_id_or_name>=<balance>. Repeatable.")
	f.BoolVar(&c.yes, "yes", false, "Create the adjustments without asking for confirmation.")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.sets) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -set <account>=<balance> is required.")
		return subcommands.ExitUsageError
	}

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

	var adjs []budgetup.Adjustment
	for _, pair := range c.sets {
		name, balanceText, _ := strings.Cut(pair, "=")
		account, err := cfg.Account(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		newBalance, err := budgetup.ParseCurrency(balanceText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid balance for %q: %v\n", account.Name, err)
			return subcommands.ExitUsageError
		}
		current, ok := currentBalance(accounts, account.ID)
		if !ok {
			fmt.Fprintf(os.Stderr, "Account %q no longer exists in the budget.\n", account.Name)
			return subcommands.ExitFailure
		}
		adjs = append(adjs, budgetup.Adjustment{
			AccountID:   account.ID,
			AccountName: account.Name,
			Current:     current,
			New:         newBalance,
		})
	}

	txs := budgetup.BuildAdjustmentTransactions(adjs, cfg.AdjustmentMemo, cfg.AdjustmentCleared, time.Now())
	if len(txs) == 0 {
		fmt.Println("All balances already match, nothing to do.")
		return subcommands.ExitSuccess
	}

	pending := budgetup.PendingAdjustments(adjs)
	printMarkdown(renderer.ConfirmAdjustments(pending, budget.CurrencyFormat))
	if !c.yes && !confirm() {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if err := client.CreateTransactions(budget.ID, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %d adjustment transaction(s).\n", len(txs))
	return subcommands.ExitSuccess
}
