package budgetup

import "fmt"

// Percent is a ratio expressed in percent points (0.42 ratio -> 42.00%).
type Percent float64

// PercentOf returns the percentage that part represents out of a ratio in
// [0,1] territory; ratios outside that range render as-is.
func PercentOf(ratio float64) Percent { return Percent(ratio * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
