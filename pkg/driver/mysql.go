package driver

import "github.com/grindlemire/go-where/pkg/filter/expr"

// MySQLDriver transforms parsed predicates to a mysql filter.
type MySQLDriver struct {
	base
}

// NewMySQLDriver creates a new driver that will output parsed predicates as a mysql filter.
// String literals additionally escape backslashes since mysql treats them as escapes
// unless NO_BACKSLASH_ESCAPES is set.
func NewMySQLDriver() MySQLDriver {
	fns := map[expr.Operator]RenderFN{}

	return MySQLDriver{
		base{
			renderFNs:   withShared(fns),
			format:      formatter{quote: QuoteMySQLLiteral},
			placeholder: questionMark,
		},
	}
}
