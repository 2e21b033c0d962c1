package where

import "github.com/grindlemire/go-where/pkg/driver"

var (
	postgres = driver.NewPostgresDriver()
)

// BuildWhereClause parses the filters and renders them as the body of a WHERE clause
// (without the WHERE keyword), for example "x = 'blue' AND y = 'yellow'".
func BuildWhereClause(filters map[string]string, opts ...Opt) (string, error) {
	predicates, err := Parse(filters, opts...)
	if err != nil {
		return "", err
	}

	return newOptions(opts...).driver.Render(predicates)
}

// BuildWhereClauseParams is like BuildWhereClause but renders driver placeholders
// in place of the values and returns the values to bind.
func BuildWhereClauseParams(filters map[string]string, opts ...Opt) (string, []any, error) {
	predicates, err := Parse(filters, opts...)
	if err != nil {
		return "", nil, err
	}

	return newOptions(opts...).driver.RenderParam(predicates)
}

// ToPostgres is a wrapper that will render the filters as a parameterized postgres filter.
func ToPostgres(filters map[string]string, opts ...Opt) (string, []any, error) {
	return BuildWhereClauseParams(filters, append(append([]Opt{}, opts...), WithDriver(postgres))...)
}
