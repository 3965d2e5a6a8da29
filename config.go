package budgetup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultAdjustmentMemo is attached to adjustment transactions unless the
// user configured another one.
const DefaultAdjustmentMemo = "Balance adjustment (bup)"

// DefaultPayeeName names the payee of every adjustment transaction.
const DefaultPayeeName = "Balance Adjustment"

// ClearedStatus is the cleared state a created adjustment transaction gets.
type ClearedStatus string

const (
	Cleared    ClearedStatus = "cleared"
	Uncleared  ClearedStatus = "uncleared"
	Reconciled ClearedStatus = "reconciled"
)

// ParseClearedStatus validates a user-supplied cleared status.
func ParseClearedStatus(s string) (ClearedStatus, error) {
	switch ClearedStatus(s) {
	case Cleared, Uncleared, Reconciled:
		return ClearedStatus(s), nil
	}
	return "", fmt.Errorf("unknown cleared status %q (want cleared, uncleared or reconciled)", s)
}

// BudgetConfig is the remembered slice of a YNAB budget: enough to address
// it and to format its amounts without another settings round-trip.
type BudgetConfig struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CurrencyFormat CurrencyFormat `json:"currency_format"`
	Selected       bool           `json:"selected,omitempty"`
}

// AccountConfig is the remembered slice of a budget account. Category is
// normally derived from Type; an explicit override wins, letting users file
// e.g. a brokerage checking account under assets.
type AccountConfig struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Selected bool        `json:"selected,omitempty"`
	Category *Category   `json:"category,omitempty"`
}

// NetWorthCategory returns the category override if set, otherwise the one
// derived from the account type.
func (a AccountConfig) NetWorthCategory() Category {
	if a.Category != nil {
		return *a.Category
	}
	return CategoryOf(a.Type)
}

// Config is the persisted application state. Derived views (selected budget,
// selected accounts) are recomputed on demand rather than cached.
type Config struct {
	APIKey            string          `json:"ynab_api_key,omitempty"`
	Budgets           []BudgetConfig  `json:"budgets,omitempty"`
	Accounts          []AccountConfig `json:"accounts,omitempty"`
	AdjustmentMemo    string          `json:"adjustment_memo"`
	AdjustmentCleared ClearedStatus   `json:"adjustment_cleared_status"`
}

// ErrNoBudgetSelected is returned until the user ran `bup budgets -select`.
var ErrNoBudgetSelected = errors.New("no budget selected, run 'bup budgets -select <id>' first")

// NewConfig returns a fresh config with the adjustment defaults filled in.
func NewConfig() *Config {
	return &Config{
		AdjustmentMemo:    DefaultAdjustmentMemo,
		AdjustmentCleared: Cleared,
	}
}

// SelectedBudget returns the single selected budget.
func (c *Config) SelectedBudget() (BudgetConfig, error) {
	for _, b := range c.Budgets {
		if b.Selected {
			return b, nil
		}
	}
	return BudgetConfig{}, ErrNoBudgetSelected
}

// SelectBudget marks id as the selected budget and deselects every other.
func (c *Config) SelectBudget(id string) error {
	found := false
	for i := range c.Budgets {
		c.Budgets[i].Selected = c.Budgets[i].ID == id
		found = found || c.Budgets[i].Selected
	}
	if !found {
		return fmt.Errorf("unknown budget %q", id)
	}
	return nil
}

// SelectedAccounts returns the accounts chosen for review, in config order.
func (c *Config) SelectedAccounts() []AccountConfig {
	var out []AccountConfig
	for _, a := range c.Accounts {
		if a.Selected {
			out = append(out, a)
		}
	}
	return out
}

// Account looks an account up by id or, failing that, by exact name.
func (c *Config) Account(idOrName string) (AccountConfig, error) {
	for _, a := range c.Accounts {
		if a.ID == idOrName {
			return a, nil
		}
	}
	for _, a := range c.Accounts {
		if a.Name == idOrName {
			return a, nil
		}
	}
	return AccountConfig{}, fmt.Errorf("unknown account %q, run 'bup accounts' to refresh the list", idOrName)
}

// SetAccountSelected toggles the reviewed flag of one account.
func (c *Config) SetAccountSelected(id string, selected bool) error {
	for i := range c.Accounts {
		if c.Accounts[i].ID == id {
			c.Accounts[i].Selected = selected
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", id)
}

// MergeAccounts refreshes the account list from the API while keeping the
// user's selection and category overrides for accounts that still exist.
func (c *Config) MergeAccounts(fresh []AccountConfig) {
	prev := make(map[string]AccountConfig, len(c.Accounts))
	for _, a := range c.Accounts {
		prev[a.ID] = a
	}
	merged := make([]AccountConfig, 0, len(fresh))
	for _, a := range fresh {
		if old, ok := prev[a.ID]; ok {
			a.Selected = old.Selected
			a.Category = old.Category
		}
		merged = append(merged, a)
	}
	c.Accounts = merged
}

// MergeBudgets refreshes the budget list from the API while keeping the
// selection and the settings-derived currency format for budgets that still
// exist.
func (c *Config) MergeBudgets(fresh []BudgetConfig) {
	prev := make(map[string]BudgetConfig, len(c.Budgets))
	for _, b := range c.Budgets {
		prev[b.ID] = b
	}
	merged := make([]BudgetConfig, 0, len(fresh))
	for _, b := range fresh {
		if old, ok := prev[b.ID]; ok {
			b.Selected = old.Selected
			if old.CurrencyFormat != (CurrencyFormat{}) {
				b.CurrencyFormat = old.CurrencyFormat
			}
		}
		merged = append(merged, b)
	}
	c.Budgets = merged
}

// DefaultConfigPath is ~/.config/bup/config.json.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Relative fallback keeps the tool usable in odd environments.
		return filepath.Join(".config", "bup", "config.json")
	}
	return filepath.Join(home, ".config", "bup", "config.json")
}

// LoadConfig reads the config file. A missing file is not an error: the
// user simply has not set anything up yet.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.AdjustmentMemo == "" {
		cfg.AdjustmentMemo = DefaultAdjustmentMemo
	}
	if cfg.AdjustmentCleared == "" {
		cfg.AdjustmentCleared = Cleared
	}
	return cfg, nil
}

// SaveConfig writes the config file, creating the directory if needed. The
// file holds an API key so it is kept user-only.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing config %q: %w", path, err)
	}
	return nil
}
