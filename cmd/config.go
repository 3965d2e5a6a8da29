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

type configCmd struct {
	memo    string
	cleared string
	token   string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the stored configuration" }
func (*configCmd) Usage() string {
	return `bup config [-memo <text>] [-cleared <status>] [-store-token <token>]

  Without flags, prints the effective configuration (API key redacted).
  Flags update the adjustment memo, the cleared status given to created
  adjustments (cleared, uncleared or reconciled), or store the API token in
  the config file.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.memo, "memo", "", "Memo attached to adjustment transactions.")
	f.StringVar(&c.cleared, "cleared", "", "Cleared status of adjustment transactions (cleared, uncleared, reconciled).")
	f.StringVar(&c.token, "store-token", "", "Store this YNAB token in the config file.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.memo != "" {
		cfg.AdjustmentMemo = c.memo
		changed = true
	}
	if c.cleared != "" {
		status, err := budgetup.ParseClearedStatus(c.cleared)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		cfg.AdjustmentCleared = status
		changed = true
	}
	if c.token != "" {
		cfg.APIKey = c.token
		changed = true
	}
	if changed {
		if err := SaveConfig(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Configuration")

	key := "(not stored)"
	if cfg.APIKey != "" {
		key = "(stored, redacted)"
	}
	budgetName := "(none selected)"
	if budget, err := cfg.SelectedBudget(); err == nil {
		budgetName = budget.Name
	}
	doc.Table(md.TableSet{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Config file", *configPath},
			{"API key", key},
			{"Budget", budgetName},
			{"Reviewed accounts", fmt.Sprintf("%d", len(cfg.SelectedAccounts()))},
			{"Adjustment memo", cfg.AdjustmentMemo},
			{"Adjustment cleared status", string(cfg.AdjustmentCleared)},
		},
	})
	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}
