package cmd

import (
	"bufio"
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

type setCmd struct {
	yes bool
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set one account balance by creating an adjustment" }
func (*setCmd) Usage() string {
	return `bup set [-yes] <account_id_or_name> <balance>

  Parses the typed balance (e.g. "123.45", "-50", "$1,234.56"), computes the
  difference with the account's current balance and creates a single
  adjustment transaction for it. Asks for confirmation unless -yes.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Create the adjustment without asking for confirmation.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <account> and <balance> arguments.")
		return subcommands.ExitUsageError
	}

	newBalance, err := budgetup.ParseCurrency(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid balance: %v\n", err)
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
	account, err := cfg.Account(f.Arg(0))
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
	current, ok := currentBalance(accounts, account.ID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Account %q no longer exists in the budget.\n", account.Name)
		return subcommands.ExitFailure
	}

	adj := budgetup.Adjustment{
		AccountID:   account.ID,
		AccountName: account.Name,
		Current:     current,
		New:         newBalance,
	}
	if adj.Delta().IsZero() {
		fmt.Printf("Balance of %q already is %s, nothing to do.\n",
			account.Name, budgetup.FormatBalance(current, budget.CurrencyFormat))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ConfirmAdjustments([]budgetup.Adjustment{adj}, budget.CurrencyFormat))
	if !c.yes && !confirm() {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	txs := budgetup.BuildAdjustmentTransactions(
		[]budgetup.Adjustment{adj}, cfg.AdjustmentMemo, cfg.AdjustmentCleared, time.Now())
	if err := client.CreateTransaction(budget.ID, txs[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Adjusted %q to %s.\n", account.Name, budgetup.FormatBalance(newBalance, budget.CurrencyFormat))
	return subcommands.ExitSuccess
}

func currentBalance(accounts []budgetup.Account, id string) (budgetup.Milliunits, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a.Balance, true
		}
	}
	return 0, false
}

// confirm asks a y/N question on stdin.
func confirm() bool {
	fmt.Print("Proceed? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
