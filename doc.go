// Package budgetup provides the types and logic behind a terminal tool for
// reviewing and bulk-adjusting account balances in a YNAB budget.
//
// The core functionalities include:
//   - Currency Codec: parsing free-form user-typed balance strings into exact
//     integer milliunits, and formatting milliunits back into locale-aware
//     display strings driven by the budget's currency format.
//   - Net-Worth Aggregation: grouping category-tagged account balances into
//     a total, per-category subtotals and relative weights.
//   - YNAB Client: a thin HTTP client to fetch budgets and account balances
//     and to create the reconciliation adjustment transactions.
//   - Configuration: persisting the budget/account selection and adjustment
//     preferences as a plain JSON file under the user config directory.
//
// This package serves as the foundational logic for the `bup` command-line
// tool; all monetary arithmetic happens on whole milliunits so no binary
// floating-point rounding can leak into balances.
package budgetup
