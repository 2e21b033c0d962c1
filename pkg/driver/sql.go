package driver

import "github.com/grindlemire/go-where/pkg/filter/expr"

// SQLDriver transforms parsed predicates to an ANSI sql filter.
type SQLDriver struct {
	base
}

// NewSQLDriver creates a new driver that will output parsed predicates as a SQL filter
// using ? placeholders for parameterized rendering.
func NewSQLDriver() SQLDriver {
	fns := map[expr.Operator]RenderFN{}

	return SQLDriver{
		base{
			renderFNs:   withShared(fns),
			format:      ansi,
			placeholder: questionMark,
		},
	}
}
