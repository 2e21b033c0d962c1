package driver

import "github.com/grindlemire/go-where/pkg/filter/expr"

// PostgresDriver transforms parsed predicates to a postgres sql filter.
type PostgresDriver struct {
	base
}

// NewPostgresDriver creates a new driver that will output parsed predicates as a postgres
// filter. Parameterized rendering uses positional $n placeholders.
func NewPostgresDriver() PostgresDriver {
	fns := map[expr.Operator]RenderFN{}

	return PostgresDriver{
		base{
			renderFNs:   withShared(fns),
			format:      ansi,
			placeholder: dollar,
		},
	}
}
