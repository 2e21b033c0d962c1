package where

import "github.com/grindlemire/go-where/pkg/driver"

// Opt configures parsing and rendering.
type Opt func(*options)

type options struct {
	driver        driver.Driver
	requireOpcode bool
}

func newOptions(opts ...Opt) options {
	o := options{
		driver: driver.NewSQLDriver(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithDriver renders the clause with the given driver instead of the default SQLDriver.
//
// Example:
//
//	clause, params, err := where.BuildWhereClauseParams(filters, where.WithDriver(driver.NewPostgresDriver()))
func WithDriver(d driver.Driver) Opt {
	return func(o *options) {
		if d != nil {
			o.driver = d
		}
	}
}

// WithRequireOpcode makes every filter expression carry an explicit opcode prefix.
// Expressions such as "one" or "one,two" fail with a MissingOperatorError instead of
// defaulting to = or IN.
func WithRequireOpcode() Opt {
	return func(o *options) {
		o.requireOpcode = true
	}
}
