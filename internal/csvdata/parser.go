package csvdata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field parsers are total: any input, including garbage, maps to a
// typed value or an absent one. Validation happens later, at the store.

var affirmative = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"да":   {},
}

var (
	intJunk    = regexp.MustCompile(`[^0-9-]`)
	nonDigits  = regexp.MustCompile(`[^0-9]`)
	tokenSplit = regexp.MustCompile(`[\n\r,;]+`)
)

// ParseString trims surrounding whitespace.
func ParseString(v string) string {
	return strings.TrimSpace(v)
}

// ParseBool matches the vendor's affirmative vocabulary, case-insensitive.
// Anything else, including empty, is false.
func ParseBool(v string) bool {
	_, ok := affirmative[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// ParseInt strips everything except digits and minus signs, then parses.
// Returns nil when nothing parseable remains.
func ParseInt(v string) *int64 {
	cleaned := intJunk.ReplaceAllString(v, "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseDecimal accepts the vendor's locale formats: comma as the decimal
// separator, spaces as thousands separators, and scientific notation.
func ParseDecimal(v string) decimal.NullDecimal {
	s := strings.TrimSpace(v)
	if s == "" {
		return decimal.NullDecimal{}
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(f))
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseBarcodes splits a barcode cell on newline/comma/semicolon runs,
// drops empty and "nan" tokens, and strips non-digit characters from the
// rest. Order is preserved; duplicates are kept.
func ParseBarcodes(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, tok := range tokenSplit.Split(v, -1) {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" || strings.EqualFold(trimmed, "nan") {
			continue
		}
		digits := nonDigits.ReplaceAllString(trimmed, "")
		if digits == "" {
			continue
		}
		out = append(out, digits)
	}
	return out
}
