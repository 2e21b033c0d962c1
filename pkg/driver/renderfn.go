package driver

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderFN is a rendering function. It takes the column and the already formatted
// criteria and serializes the entire predicate
type RenderFN func(left, right string) (string, error)

// literal rejects values no database accepts inside a string literal or bind parameter
func literal(value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("literal contains invalid utf8: %q", value)
	}
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("literal contains null byte: %q", value)
	}
	return nil
}

func equals(left, right string) (string, error) {
	return fmt.Sprintf("%s = %s", left, right), nil
}

func notEquals(left, right string) (string, error) {
	return fmt.Sprintf("%s != %s", left, right), nil
}

func inFn(left, right string) (string, error) {
	return fmt.Sprintf("%s IN %s", left, right), nil
}

func greater(left, right string) (string, error) {
	return fmt.Sprintf("%s > %s", left, right), nil
}

func less(left, right string) (string, error) {
	return fmt.Sprintf("%s < %s", left, right), nil
}

func greaterEq(left, right string) (string, error) {
	return fmt.Sprintf("%s >= %s", left, right), nil
}

func lessEq(left, right string) (string, error) {
	return fmt.Sprintf("%s <= %s", left, right), nil
}

// questionMark is the placeholder style used by database/sql drivers for SQLite and MySQL
func questionMark(int) string {
	return "?"
}

// dollar is the positional placeholder style used by postgres
func dollar(n int) string {
	return fmt.Sprintf("$%d", n)
}
