package where

import (
	"fmt"

	"github.com/grindlemire/go-where/pkg/driver"
	"github.com/grindlemire/go-where/pkg/filter/expr"
)

// InvalidOperatorError is returned when a filter expression uses an unknown opcode.
type InvalidOperatorError = expr.InvalidOperatorError

// ErrEmptyPredicateList is returned when building a clause from an empty filter.
var ErrEmptyPredicateList = driver.ErrEmptyPredicateList

// MissingOperatorError is returned for an expression without an opcode prefix when
// WithRequireOpcode is set.
type MissingOperatorError struct {
	Expression string
}

func (e MissingOperatorError) Error() string {
	return fmt.Sprintf("missing operator in expression: %q", e.Expression)
}
