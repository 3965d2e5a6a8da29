package budgetup

import (
	"errors"
	"testing"
)

// usd is the fixed descriptor used across formatting tests.
var usd = CurrencyFormat{
	IsoCode:          "USD",
	DecimalDigits:    2,
	DecimalSeparator: ".",
	GroupSeparator:   ",",
	SymbolFirst:      true,
	CurrencySymbol:   "$",
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected Milliunits
		err      bool
	}{
		// Plain amounts.
		{"100", 100000, false},
		{"-50", -50000, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"123.45", 123450, false},
		{"-123.45", -123450, false},

		// Symbols and thousands separators are noise.
		{"$1,234.56", 1234560, false},
		{"-$1,234.56", -1234560, false},
		{"€ 42", 42000, false},

		// Bare or dangling decimal points.
		{".50", 500, false},
		{".5", 500, false},
		{"50.", 50000, false},

		// Leading sign runs collapse.
		{"+100", 100000, false},
		{"++100", 100000, false},
		{" -- 800", -800000, false},
		{"---$700", -700000, false},

		// More than 3 decimals rounds half away from zero.
		{"123.4", 123400, false},
		{"12.3456", 12346, false},
		{"-12.3456", -12346, false},
		{"0.0004", 0, false},
		{"0.0005", 1, false},

		// Unparsable input.
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"$", 0, true},
		{"-", 0, true},
		{"1.2.3", 0, true},

		// Mixed signs anywhere in the original text.
		{"+-10", 0, true},
		{"-+20", 0, true},
		{"1+2-3", 0, true},
		{"abc+def-ghi", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCurrency(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseCurrency(%q) = %d, want error", tt.input, got)
				continue
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("ParseCurrency(%q) error is %T, want *ParseError", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCurrency(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseCurrency(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestCleanupValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$1,234.56", "1,234.56"},
		{".50", "0.50"},
		{".,5", "0.5"},
		{"50.", "50"},
		{"+10", "10"},
		{"-10", "-10"},
		{"abc", ""},
		{"   ", ""},
		{"$", ""},
		{"1.2.3", "1.2.3"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanupValue(tt.input); got != tt.expected {
			t.Errorf("cleanupValue(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Sanitization must be stable: cleaning an already-clean string changes nothing.
func TestCleanupValueIdempotent(t *testing.T) {
	inputs := []string{"$1,234.56", ".50", "50.", "+10", "-10", "abc", "1.2.3", "", "  .5  ", "+-10"}
	for _, in := range inputs {
		once := cleanupValue(in)
		twice := cleanupValue(once)
		if once != twice {
			t.Errorf("cleanupValue not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestCollapseLeadingSigns(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"   world", "world"},
		{"123.45", "123.45"},
		{"", ""},
		{"+100", "100"},
		{"  + 200", "200"},
		{"+++300", "300"},
		{"  ++  400", "400"},
		{"-500", "-500"},
		{" - 600", "-600"},
		{"---$700", "-$700"},
		{" --  800", "-800"},
		{" ++ ", ""},
		{" -- ", "-"},
		{"   +", ""},
		{"   -", "-"},
		{"   ", ""},
		{"  123", "123"},
	}
	for _, tt := range tests {
		got, err := collapseLeadingSigns(tt.input)
		if err != nil {
			t.Errorf("collapseLeadingSigns(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("collapseLeadingSigns(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCollapseLeadingSignsMixed(t *testing.T) {
	inputs := []string{"+-10", "-+20", " ++-30", " --+40", "abc+def-ghi", "1+2-3"}
	for _, in := range inputs {
		if _, err := collapseLeadingSigns(in); err == nil {
			t.Errorf("collapseLeadingSigns(%q) = nil error, want mixed-sign error", in)
		}
	}
}

func TestFormatBalance(t *testing.T) {
	euro := CurrencyFormat{
		IsoCode:          "EUR",
		DecimalDigits:    2,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		SymbolFirst:      false,
		CurrencySymbol:   "€",
	}
	nodigits := CurrencyFormat{
		DecimalDigits:  0,
		SymbolFirst:    true,
		CurrencySymbol: "¥",
	}

	tests := []struct {
		name     string
		amount   Milliunits
		format   CurrencyFormat
		expected string
	}{
		{"zero", 0, usd, "$0.00"},
		{"small", 1234, usd, "$1.23"},
		{"rounding_up", 1236, usd, "$1.24"},
		{"grouping", 1234567890, usd, "$1,234,567.89"},
		{"negative_sign_before_symbol", -1234560, usd, "-$1,234.56"},
		{"negative_symbol_after", -1234560, euro, "-1.234,56€"},
		// Group separator equal to the intermediate grouping comma must not
		// collide with the decimal substitution.
		{"swapped_separators", 9876543210, euro, "9.876.543,21€"},
		{"zero_digits", 1234567890, nodigits, "¥1234568"},
		{"negative_zero_canonicalized", -400, nodigits, "¥0"},
		{"tiny_negative_rounds_to_zero", -4, usd, "$0.00"},
		{"negative_digits_clamped", 1500, CurrencyFormat{DecimalDigits: -3, CurrencySymbol: "$", SymbolFirst: true}, "$2"},
		{"huge", 9223372036854775807, usd, "$9,223,372,036,854,775.81"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBalance(tt.amount, tt.format); got != tt.expected {
				t.Errorf("FormatBalance(%d) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatBalanceSymbolPlacement(t *testing.T) {
	for _, m := range []Milliunits{0, 1, 999, 100000, 123456789} {
		got := FormatBalance(m, usd)
		if got[0] != '$' {
			t.Errorf("FormatBalance(%d) = %q, want leading %q", m, got, usd.CurrencySymbol)
		}
	}
	for _, m := range []Milliunits{-100000, -123456789} {
		got := FormatBalance(m, usd)
		if len(got) < 2 || got[0] != '-' || got[1] != '$' {
			t.Errorf("FormatBalance(%d) = %q, want \"-$\" prefix", m, got)
		}
	}
}

// At 3 decimal digits formatting is lossless, so parse(format(m)) must give
// back m exactly.
func TestFormatParseRoundTrip(t *testing.T) {
	exact := CurrencyFormat{
		DecimalDigits:    3,
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		SymbolFirst:      true,
		CurrencySymbol:   "$",
	}
	for _, m := range []Milliunits{0, 1, -1, 100000, -100000, 999999999} {
		text := FormatBalance(m, exact)
		got, err := ParseCurrency(text)
		if err != nil {
			t.Errorf("ParseCurrency(FormatBalance(%d)) = ParseCurrency(%q) failed: %v", m, text, err)
			continue
		}
		if got != m {
			t.Errorf("round trip of %d through %q gave %d", m, text, got)
		}
	}
}

func TestDefaultCurrencyFormat(t *testing.T) {
	usdDefault := DefaultCurrencyFormat("USD")
	if usdDefault.CurrencySymbol != "$" || usdDefault.DecimalDigits != 2 || !usdDefault.SymbolFirst {
		t.Errorf("DefaultCurrencyFormat(USD) = %+v", usdDefault)
	}
	unknown := DefaultCurrencyFormat("XXX")
	if unknown.CurrencySymbol != "XXX" || unknown.DecimalDigits != 2 {
		t.Errorf("DefaultCurrencyFormat(XXX) = %+v, want code-as-symbol fallback", unknown)
	}
}

func TestEffectiveCurrencyFormat(t *testing.T) {
	// A code-only format, as budget summaries sometimes carry, gets
	// completed from the registry.
	filled := EffectiveCurrencyFormat(CurrencyFormat{IsoCode: "EUR"})
	if filled.CurrencySymbol != "€" || filled.DecimalDigits != 2 || filled.GroupSeparator == "" {
		t.Errorf("EffectiveCurrencyFormat(EUR code only) = %+v", filled)
	}

	// A complete format from the API is kept untouched.
	api := CurrencyFormat{
		IsoCode:          "USD",
		DecimalDigits:    0,
		DecimalSeparator: ".",
		GroupSeparator:   " ",
		SymbolFirst:      false,
		CurrencySymbol:   "US$",
	}
	if got := EffectiveCurrencyFormat(api); got != api {
		t.Errorf("EffectiveCurrencyFormat(api format) = %+v, want unchanged", got)
	}
}
