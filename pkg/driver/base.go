package driver

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-where/pkg/filter/expr"
)

// ErrEmptyPredicateList is returned when asked to render zero predicates. There is no
// sensible clause for an empty filter so the caller has to decide what to do.
var ErrEmptyPredicateList = errors.New("cannot render an empty predicate list")

// Driver renders parsed predicates as a SQL filter.
type Driver interface {
	// RenderPredicate renders a single predicate as "<column> <operator> <value>".
	RenderPredicate(p *expr.Predicate) (string, error)
	// Render renders every predicate and joins them with AND.
	Render(predicates []*expr.Predicate) (string, error)
	// RenderParam renders like Render but uses placeholders for the values and
	// returns the values in placeholder order.
	RenderParam(predicates []*expr.Predicate) (string, []any, error)
}

var shared = map[expr.Operator]RenderFN{
	expr.Eq:  equals,
	expr.Neq: notEquals,
	expr.Gt:  greater,
	expr.Gte: greaterEq,
	expr.Lt:  less,
	expr.Lte: lessEq,
	expr.In:  inFn,
}

// withShared fills in every render function the driver does not override.
func withShared(fns map[expr.Operator]RenderFN) map[expr.Operator]RenderFN {
	for op, sharedFN := range shared {
		_, found := fns[op]
		if !found {
			fns[op] = sharedFN
		}
	}
	return fns
}

type base struct {
	renderFNs   map[expr.Operator]RenderFN
	format      formatter
	placeholder func(n int) string
}

// RenderPredicate will render the predicate based on the renderFNs provided by the driver.
func (b base) RenderPredicate(p *expr.Predicate) (s string, err error) {
	return b.render(p, b.format.value)
}

// Render will render the predicates with inline literals, joined by AND.
func (b base) Render(predicates []*expr.Predicate) (s string, err error) {
	if len(predicates) == 0 {
		return "", ErrEmptyPredicateList
	}

	rendered := make([]string, 0, len(predicates))
	for _, p := range predicates {
		r, err := b.RenderPredicate(p)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, r)
	}

	return strings.Join(rendered, " AND "), nil
}

// RenderParam will render the predicates with driver placeholders in place of the values.
func (b base) RenderParam(predicates []*expr.Predicate) (s string, params []any, err error) {
	if len(predicates) == 0 {
		return "", nil, ErrEmptyPredicateList
	}

	params = []any{}
	rendered := make([]string, 0, len(predicates))
	for _, p := range predicates {
		r, err := b.render(p, func(c expr.Criteria) string {
			right, values := b.serializeParams(c, len(params)+1)
			params = append(params, values...)
			return right
		})
		if err != nil {
			return "", nil, err
		}
		rendered = append(rendered, r)
	}

	return strings.Join(rendered, " AND "), params, nil
}

func (b base) render(p *expr.Predicate, serialize func(expr.Criteria) string) (string, error) {
	if err := expr.Validate(p); err != nil {
		return "", err
	}

	fn, ok := b.renderFNs[p.Op]
	if !ok {
		return "", errors.Errorf("unable to render operator [%s] - please file an issue for this", p.Op)
	}

	if p.Criteria != nil {
		for _, v := range p.Criteria.Values() {
			if err := literal(v); err != nil {
				return "", errors.Wrapf(err, "unable to render predicate for column %s", p.Column)
			}
		}
	}

	s, err := fn(p.Column, serialize(p.Criteria))
	if err != nil {
		return "", errors.Wrapf(err, "unable to render predicate for column %s", p.Column)
	}
	return s, nil
}

// serializeParams replaces the criteria values with placeholders numbered from next.
func (b base) serializeParams(c expr.Criteria, next int) (string, []any) {
	switch v := c.(type) {
	case expr.Scalar:
		return b.placeholder(next), []any{paramValue(string(v))}
	case expr.List:
		holders := make([]string, 0, len(v))
		values := make([]any, 0, len(v))
		for i, s := range v {
			holders = append(holders, b.placeholder(next+i))
			values = append(values, paramValue(s))
		}
		return "(" + strings.Join(holders, ",") + ")", values
	default:
		return "", nil
	}
}
