package cli

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	where "github.com/grindlemire/go-where"
	"github.com/grindlemire/go-where/pkg/driver"
	"github.com/grindlemire/go-where/pkg/filter/expr"
)

var drivers = map[string]func() driver.Driver{
	"sql":      func() driver.Driver { return driver.NewSQLDriver() },
	"postgres": func() driver.Driver { return driver.NewPostgresDriver() },
	"mysql":    func() driver.Driver { return driver.NewMySQLDriver() },
}

// DriverNames lists the accepted --driver values.
func DriverNames() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func selectDriver(name string) (driver.Driver, error) {
	newDriver, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q: must be one of %v", name, DriverNames())
	}
	return newDriver(), nil
}

// parseQueryArgs merges every argument, each a query string such as
// "age=gte.8&color=in.red,blue", into a single set of values.
func parseQueryArgs(args []string) (url.Values, error) {
	merged := url.Values{}
	for _, arg := range args {
		values, err := url.ParseQuery(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid query string %q: %w", arg, err)
		}
		for column, raws := range values {
			if column == "" {
				return nil, fmt.Errorf("invalid query string %q: empty column name", arg)
			}
			merged[column] = append(merged[column], raws...)
		}
	}
	return merged, nil
}

func parseArgs(args []string, requireOpcode bool) ([]*expr.Predicate, *ExitError) {
	values, err := parseQueryArgs(args)
	if err != nil {
		return nil, WrapExitError(ExitUsage, ErrCodeUsage, err)
	}

	opts := []where.Opt{}
	if requireOpcode {
		opts = append(opts, where.WithRequireOpcode())
	}

	predicates, err := where.ParseValues(values, opts...)
	if err != nil {
		return nil, filterError(err)
	}
	log.Debugf("parsed %d predicate(s) from %d argument(s)", len(predicates), len(args))
	return predicates, nil
}

// filterError classifies a library error into an exit error carrying the error code.
func filterError(err error) *ExitError {
	var (
		invalid where.InvalidOperatorError
		missing where.MissingOperatorError
	)
	switch {
	case errors.As(err, &invalid):
		return WrapExitError(ExitFailure, ErrCodeInvalidFilter, err)
	case errors.As(err, &missing):
		return WrapExitError(ExitFailure, ErrCodeMissingOperator, err)
	case errors.Is(err, where.ErrEmptyPredicateList):
		return WrapExitError(ExitFailure, ErrCodeEmptyFilter, err)
	default:
		return WrapExitError(ExitFailure, ErrCodeInvalidFilter, err)
	}
}

// report writes err through the formatter and returns it for cobra.
func report(f *OutputFormatter, err *ExitError) error {
	log.Debugf("command failed: %v", err)
	if werr := f.Error(err.Message, err.Err.Error()); werr != nil {
		return werr
	}
	return err
}
