package budgetup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyFormat describes how a budget renders amounts. It comes straight
// from the budget settings in the YNAB API and is treated as opaque
// configuration: the codec never chooses or infers one.
type CurrencyFormat struct {
	IsoCode          string `json:"iso_code,omitempty"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	GroupSeparator   string `json:"group_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	CurrencySymbol   string `json:"currency_symbol"`
}

// DefaultCurrencyFormat builds a descriptor from the go-money currency
// registry for budgets whose settings omit one. Unknown codes fall back to a
// plain two-decimal format with the code itself as symbol.
func DefaultCurrencyFormat(code string) CurrencyFormat {
	cur := money.GetCurrency(code)
	if cur == nil {
		return CurrencyFormat{
			IsoCode:          code,
			DecimalDigits:    2,
			DecimalSeparator: ".",
			GroupSeparator:   ",",
			SymbolFirst:      true,
			CurrencySymbol:   code,
		}
	}
	return CurrencyFormat{
		IsoCode:          cur.Code,
		DecimalDigits:    cur.Fraction,
		DecimalSeparator: cur.Decimal,
		GroupSeparator:   cur.Thousand,
		SymbolFirst:      strings.HasPrefix(cur.Template, "$"),
		CurrencySymbol:   cur.Grapheme,
	}
}

// EffectiveCurrencyFormat returns format as-is when the API filled it in,
// and otherwise completes it from the currency registry. YNAB budget
// summaries sometimes carry only the ISO code.
func EffectiveCurrencyFormat(format CurrencyFormat) CurrencyFormat {
	if format.CurrencySymbol != "" {
		return format
	}
	return DefaultCurrencyFormat(format.IsoCode)
}

// ParseError reports a balance string that could not be converted to
// milliunits. It is always recoverable: the caller keeps the previous
// balance and tells the user the input was not a valid amount.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a currency amount: %s", e.Input, e.Reason)
}

// ParseCurrency converts a user-typed balance like "123.45", "-50" or
// "$1,000.00" into milliunits. The input is sanitized first, so currency
// symbols and stray characters are tolerated, but a string mixing '+' and
// '-' anywhere is rejected outright rather than guessing which sign wins.
func ParseCurrency(text string) (Milliunits, error) {
	cleaned := cleanupValue(text)
	if cleaned == "" {
		return 0, &ParseError{Input: text, Reason: "empty after sanitization"}
	}

	// Ambiguity is judged on the raw input: sanitization may trim one of the
	// offending signs ("+-10" becomes "-10") but the intent stays unclear.
	if strings.ContainsRune(text, '+') && strings.ContainsRune(text, '-') {
		return 0, &ParseError{Input: text, Reason: "mixed '+' and '-' signs"}
	}

	signed, err := collapseLeadingSigns(cleaned)
	if err != nil {
		return 0, &ParseError{Input: text, Reason: err.Error()}
	}

	// Commas are thousands separators, gone before conversion.
	d, err := decimal.NewFromString(strings.ReplaceAll(signed, ",", ""))
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "not a number"}
	}

	// Render at exactly 3 decimals (half away from zero), then drop the
	// point: the remaining digit string is the milliunit count.
	fixed := strings.Replace(d.StringFixed(3), ".", "", 1)
	v, err := strconv.ParseInt(fixed, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "amount out of range"}
	}
	return Milliunits(v), nil
}

// cleanupValue strips every character that is not a digit, point, comma or
// sign, gives a bare leading point an explicit "0." prefix, and trims
// dangling points, commas and plus signs from both ends. Applying it twice
// yields the same result as once.
func cleanupValue(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '+', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.HasPrefix(cleaned, ".") {
		cleaned = strings.TrimLeft(cleaned, ".")
		cleaned = strings.TrimLeft(cleaned, ",")
		cleaned = "0." + cleaned
	}
	return strings.Trim(cleaned, ".,+")
}

// collapseLeadingSigns removes the leading run of '+', '-' and whitespace,
// keeping a single '-' when the run was negative. A string containing both
// '+' and '-' anywhere is ambiguous and rejected; the whole-string scan is
// deliberate, it also catches things like "1+2-3".
func collapseLeadingSigns(s string) (string, error) {
	if strings.ContainsRune(s, '+') && strings.ContainsRune(s, '-') {
		return "", fmt.Errorf("mixed '+' and '-' signs")
	}

	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	rest := strings.TrimLeftFunc(s, func(r rune) bool {
		return r == '+' || r == '-' || unicode.IsSpace(r)
	})
	if strings.HasPrefix(s, "-") {
		return "-" + rest, nil
	}
	return rest, nil
}

// groupPlaceholder keeps separator substitution collision-free even when the
// configured group separator is itself a comma, a point or a digit.
const groupPlaceholder = "@@group_placeholder@@"

// FormatBalance renders milliunits as a display string per the budget's
// currency format. It is total: any int64 amount and any descriptor produce
// a string, and a negative amount places its minus sign before the currency
// symbol ("-$1.00", never "$-1.00").
func FormatBalance(v Milliunits, f CurrencyFormat) string {
	digits := f.DecimalDigits
	if digits < 0 {
		digits = 0
	}

	str := groupThousands(v.Decimal().StringFixed(int32(digits)))

	// Rounding small negative amounts at 0 digits can leave a bare "-0".
	if str == "-0" {
		str = "0"
	}

	str = strings.ReplaceAll(str, ",", groupPlaceholder)
	str = strings.ReplaceAll(str, ".", f.DecimalSeparator)
	str = strings.ReplaceAll(str, groupPlaceholder, f.GroupSeparator)

	if f.SymbolFirst {
		if strings.HasPrefix(str, "-") {
			return "-" + f.CurrencySymbol + str[1:]
		}
		return f.CurrencySymbol + str
	}
	return str + f.CurrencySymbol
}

// groupThousands inserts commas between groups of three integer digits of a
// plain decimal string like "-1234567.89".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
