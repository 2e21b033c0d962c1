package driver

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-where/pkg/filter/expr"
)

// IsNumeric reports whether s is a plain signed or unsigned integer or decimal
// literal: an optional leading + or -, digits, and optionally a single '.' followed
// by more digits. Empty strings, surrounding whitespace, exponents, hex and
// Infinity/NaN are all rejected.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	whole, fraction, hasDot := strings.Cut(s, ".")
	if !isDigits(whole) {
		return false
	}

	return !hasDot || isDigits(fraction)
}

// CanonicalNumber returns the literal text of a numeric string in canonical form: no
// leading +, no leading zeros, no trailing fractional zeros and no negative zero. The
// digits themselves are never changed so the number is exactly the one written.
func CanonicalNumber(s string) (string, bool) {
	if !IsNumeric(s) {
		return "", false
	}

	negative := s[0] == '-'
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	whole, fraction, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	fraction = strings.TrimRight(fraction, "0")

	n := whole
	if fraction != "" {
		n += "." + fraction
	}
	if negative && n != "0" {
		n = "-" + n
	}
	return n, true
}

// ParseNumber converts a numeric string into an int64 when it is an integer that fits,
// into a float64 when the float holds the number exactly as written, and otherwise into
// its canonical text so no precision is lost.
func ParseNumber(s string) (any, bool) {
	n, ok := CanonicalNumber(s)
	if !ok {
		return nil, false
	}

	if !strings.ContainsRune(n, '.') {
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
		return n, true
	}

	f, err := strconv.ParseFloat(n, 64)
	if err != nil || strconv.FormatFloat(f, 'f', -1, 64) != n {
		return n, true
	}
	return f, true
}

// QuoteLiteral wraps s in single quotes, doubling every embedded single quote.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteMySQLLiteral quotes like QuoteLiteral but also doubles backslashes, which MySQL
// treats as an escape character inside string literals by default.
func QuoteMySQLLiteral(s string) string {
	return QuoteLiteral(strings.ReplaceAll(s, `\`, `\\`))
}

// FormatScalar renders a single value as a SQL literal. Numeric values render as the
// canonical text of the number they represent (08 -> 8, 1.50 -> 1.5), everything else as
// a quoted string.
func FormatScalar(s string) string {
	return ansi.scalar(s)
}

// FormatValue renders criteria as SQL literal text. A list renders as a parenthesized,
// comma separated list without spaces, nil criteria render as an empty string.
func FormatValue(c expr.Criteria) string {
	return ansi.value(c)
}

var ansi = formatter{quote: QuoteLiteral}

type formatter struct {
	quote func(string) string
}

func (f formatter) scalar(s string) string {
	if n, ok := CanonicalNumber(s); ok {
		return n
	}
	return f.quote(s)
}

func (f formatter) value(c expr.Criteria) string {
	switch v := c.(type) {
	case expr.List:
		strs := make([]string, 0, len(v))
		for _, s := range v {
			strs = append(strs, f.scalar(s))
		}
		return "(" + strings.Join(strs, ",") + ")"
	case expr.Scalar:
		return f.scalar(string(v))
	default:
		return ""
	}
}

// paramValue is the driver argument passed for a placeholder
func paramValue(s string) any {
	if n, ok := ParseNumber(s); ok {
		return n
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
