package budgetup

import "github.com/shopspring/decimal"

// Milliunits is a signed amount of money counted in 1/1000 of the major
// currency unit, the resolution the YNAB API uses for every balance and
// transaction amount. Sums and differences stay exact because they never
// leave integer arithmetic.
type Milliunits int64

func (m Milliunits) Add(n Milliunits) Milliunits { return m + n }
func (m Milliunits) Sub(n Milliunits) Milliunits { return m - n }
func (m Milliunits) Neg() Milliunits             { return -m }
func (m Milliunits) IsZero() bool                { return m == 0 }
func (m Milliunits) IsNegative() bool            { return m < 0 }

// Decimal returns the amount in major units as an exact decimal.
func (m Milliunits) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -3)
}
