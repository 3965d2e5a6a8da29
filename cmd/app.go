// Package cmd implements the CLI application to review and reconcile YNAB
// account balances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/budgetup/budgetup"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&budgetsCmd{}, "setup")
	c.Register(&accountsCmd{}, "setup")
	c.Register(&configCmd{}, "setup")

	c.Register(&balancesCmd{}, "review")
	c.Register(&networthCmd{}, "review")

	c.Register(&setCmd{}, "reconcile")
	c.Register(&reconcileCmd{}, "reconcile")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", budgetup.DefaultConfigPath(), "Path to the bup config file")
var plainOutput = flag.Bool("plain", false, "Print plain markdown instead of styled terminal output")

const apiKeyEnv = "YNAB_API_KEY"

var apiKeyFlag = flag.String("ynab-token", "", "YNAB personal access token.\n If missing it will read the environment variable \""+apiKeyEnv+"\", then the config file. You can get one at https://app.ynab.com/settings/developer")

// LoadConfig reads the app config file from the -config path.
func LoadConfig() (*budgetup.Config, error) {
	return budgetup.LoadConfig(*configPath)
}

// SaveConfig persists the app config file to the -config path.
func SaveConfig(cfg *budgetup.Config) error {
	return budgetup.SaveConfig(*configPath, cfg)
}

// NewClient builds the YNAB client from the token flag, the environment or
// the config file, in that order.
func NewClient(cfg *budgetup.Config) (*budgetup.Client, error) {
	token := *apiKeyFlag
	if token == "" {
		token = os.Getenv(apiKeyEnv)
	}
	if token == "" && cfg != nil {
		token = cfg.APIKey
	}
	if token == "" {
		return nil, fmt.Errorf("no YNAB token: set -ynab-token, the %s environment variable, or the config file", apiKeyEnv)
	}
	return budgetup.NewClient(token), nil
}

// printMarkdown renders a markdown report to the terminal, styled unless
// -plain was given or the renderer cannot be set up.
func printMarkdown(doc string) {
	if *plainOutput {
		fmt.Print(doc)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
