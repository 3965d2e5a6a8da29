package budgetup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultBaseURL is the public YNAB API endpoint.
const DefaultBaseURL = "https://api.ynab.com/v1"

// Client is a minimal YNAB API client covering what the tool needs: listing
// budgets and accounts, reading a budget's currency format and creating
// adjustment transactions. It is an explicit dependency, constructed once
// and passed to whoever needs it.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns a client for the public YNAB API using the given
// personal access token.
func NewClient(token string) *Client {
	return NewClientAt(DefaultBaseURL, token)
}

// NewClientAt targets an alternative endpoint, mostly for tests.
func NewClientAt(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx answer from the YNAB API.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ynab api: http %d", e.Status)
	}
	return fmt.Sprintf("ynab api: http %d: %s", e.Status, e.Detail)
}

// Budget is a budget summary as returned by the API.
type Budget struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CurrencyFormat CurrencyFormat `json:"currency_format"`
}

// Account is a budget account with its current balance in milliunits.
type Account struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	OnBudget bool        `json:"on_budget"`
	Closed   bool        `json:"closed"`
	Deleted  bool        `json:"deleted"`
	Balance  Milliunits  `json:"balance"`
}

// NewTransaction is the payload for creating one adjustment transaction.
type NewTransaction struct {
	AccountID string        `json:"account_id"`
	Date      string        `json:"date"`
	Amount    Milliunits    `json:"amount"`
	PayeeName string        `json:"payee_name,omitempty"`
	Memo      string        `json:"memo,omitempty"`
	Cleared   ClearedStatus `json:"cleared"`
	Approved  bool          `json:"approved"`
}

// Budgets fetches all budgets the token can see.
func (c *Client) Budgets() ([]Budget, error) {
	var out struct {
		Data struct {
			Budgets []Budget `json:"budgets"`
		} `json:"data"`
	}
	if err := c.get("/budgets", &out); err != nil {
		return nil, fmt.Errorf("fetching budgets: %w", err)
	}
	return out.Data.Budgets, nil
}

// Accounts fetches the open, undeleted accounts of a budget.
func (c *Client) Accounts(budgetID string) ([]Account, error) {
	var out struct {
		Data struct {
			Accounts []Account `json:"accounts"`
		} `json:"data"`
	}
	if err := c.get("/budgets/"+budgetID+"/accounts", &out); err != nil {
		return nil, fmt.Errorf("fetching accounts of budget %q: %w", budgetID, err)
	}
	open := out.Data.Accounts[:0]
	for _, a := range out.Data.Accounts {
		if !a.Closed && !a.Deleted {
			open = append(open, a)
		}
	}
	return open, nil
}

// BudgetCurrencyFormat reads the authoritative currency format from the
// budget settings. Only one nested field of the settings payload matters, so
// it is plucked by path instead of modelling the whole document.
func (c *Client) BudgetCurrencyFormat(budgetID string) (CurrencyFormat, error) {
	var jobj any
	if err := c.get("/budgets/"+budgetID+"/settings", &jobj); err != nil {
		return CurrencyFormat{}, fmt.Errorf("fetching settings of budget %q: %w", budgetID, err)
	}
	jval, err := jsonpath.Get("$.data.settings.currency_format", jobj)
	if err != nil {
		return CurrencyFormat{}, fmt.Errorf("no currency format in settings of budget %q: %w", budgetID, err)
	}
	// Round-trip the plucked subtree through json to get the typed value.
	raw, err := json.Marshal(jval)
	if err != nil {
		return CurrencyFormat{}, err
	}
	var f CurrencyFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return CurrencyFormat{}, fmt.Errorf("decoding currency format of budget %q: %w", budgetID, err)
	}
	return f, nil
}

// CreateTransaction creates a single adjustment transaction.
func (c *Client) CreateTransaction(budgetID string, tx NewTransaction) error {
	payload := struct {
		Transaction NewTransaction `json:"transaction"`
	}{tx}
	log.Printf("creating adjustment for account %s: amount=%d", tx.AccountID, tx.Amount)
	if err := c.post("/budgets/"+budgetID+"/transactions", payload); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

// CreateTransactions creates several adjustment transactions in one call.
func (c *Client) CreateTransactions(budgetID string, txs []NewTransaction) error {
	if len(txs) == 0 {
		return fmt.Errorf("no transactions to create")
	}
	payload := struct {
		Transactions []NewTransaction `json:"transactions"`
	}{txs}
	log.Printf("creating %d bulk adjustment transactions", len(txs))
	if err := c.post("/budgets/"+budgetID+"/transactions", payload); err != nil {
		return fmt.Errorf("creating transactions: %w", err)
	}
	return nil
}

// get performs an authenticated GET and decodes the JSON answer into data.
func (c *Client) get(path string, data any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, data)
}

// post performs an authenticated POST of a JSON payload.
func (c *Client) post(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, data any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(buf)}
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(buf, data)
}

// errorDetail extracts the human-readable detail of a YNAB error payload.
func errorDetail(body []byte) string {
	var out struct {
		Error struct {
			Detail string `json:"detail"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}
	return out.Error.Detail
}
