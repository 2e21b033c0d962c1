package expr

import "fmt"

// InvalidOperatorError is returned when the opcode prefix of a filter expression
// is not one of eq, neq, gt, gte, lt, lte or in.
type InvalidOperatorError struct {
	Opcode string
}

func (e InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator: %q", e.Opcode)
}
