package where

import (
	"net/url"
	"sort"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-where/internal/lex"
	"github.com/grindlemire/go-where/pkg/filter/expr"
)

// Grammar:
// E ->
// 		opcode.V
// 		V
// V ->
// 		value
// 		value,V
//
// opcode is one of eq, neq, gt, gte, lt, lte, in. Without an opcode the operator
// is IN for more than one value and = otherwise.

// Filter is a single column and its raw filter expression.
type Filter struct {
	Column     string
	Expression string
}

// Parse will parse every entry of the filter mapping into a predicate. Predicates are
// returned in ascending column order so the output is deterministic.
func Parse(filters map[string]string, opts ...Opt) ([]*expr.Predicate, error) {
	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	ordered := make([]Filter, 0, len(filters))
	for _, column := range columns {
		ordered = append(ordered, Filter{Column: column, Expression: filters[column]})
	}

	return ParseFilters(ordered, opts...)
}

// ParseValues parses http query parameters (?age=gte.8&color=in.red,blue). Columns are
// returned in ascending order and a repeated parameter yields one predicate per value.
func ParseValues(values url.Values, opts ...Opt) ([]*expr.Predicate, error) {
	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	ordered := []Filter{}
	for _, column := range columns {
		for _, raw := range values[column] {
			ordered = append(ordered, Filter{Column: column, Expression: raw})
		}
	}

	return ParseFilters(ordered, opts...)
}

// ParseFilters parses the filters keeping the order they were given in.
func ParseFilters(filters []Filter, opts ...Opt) ([]*expr.Predicate, error) {
	o := newOptions(opts...)

	predicates := make([]*expr.Predicate, 0, len(filters))
	for _, f := range filters {
		p, err := o.parseExpression(f.Column, f.Expression)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, p)
	}
	return predicates, nil
}

// ParseExpression parses a single raw expression for a column.
func ParseExpression(column, raw string, opts ...Opt) (*expr.Predicate, error) {
	return newOptions(opts...).parseExpression(column, raw)
}

// ResolveOperator returns the operator a raw expression selects.
func ResolveOperator(raw string, opts ...Opt) (expr.Operator, error) {
	s, err := scan(raw)
	if err != nil {
		return expr.Undefined, err
	}
	return newOptions(opts...).resolveOperator(raw, s)
}

// ExtractCriteria returns the criteria of a raw expression: a List when the value text
// holds a comma, a Scalar otherwise. The opcode, if any, does not influence the shape.
func ExtractCriteria(raw string) (expr.Criteria, error) {
	s, err := scan(raw)
	if err != nil {
		return nil, err
	}
	return s.criteria(), nil
}

func (o options) parseExpression(column, raw string) (*expr.Predicate, error) {
	s, err := scan(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse filter for column %s", column)
	}

	op, err := o.resolveOperator(raw, s)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse filter for column %s", column)
	}

	return expr.Pred(column, op, s.criteria()), nil
}

func (o options) resolveOperator(raw string, s scanned) (expr.Operator, error) {
	if s.hasOpcode {
		return expr.ParseOpcode(s.opcode)
	}

	if o.requireOpcode {
		return expr.Undefined, MissingOperatorError{Expression: raw}
	}

	if len(s.values) > 1 {
		return expr.In, nil
	}
	return expr.Eq, nil
}

// scanned is a raw expression split into its opcode and values
type scanned struct {
	opcode    string
	hasOpcode bool
	values    []string
}

func (s scanned) criteria() expr.Criteria {
	if len(s.values) > 1 {
		return expr.Ls(s.values...)
	}
	if len(s.values) == 1 {
		return expr.Sc(s.values[0])
	}
	return nil
}

func scan(raw string) (s scanned, err error) {
	l := lex.Lex(raw)
	for {
		tok := l.Next()
		switch tok.Typ {
		case lex.TOpcode:
			s.opcode = tok.Val
			s.hasOpcode = true
		case lex.TValue:
			s.values = append(s.values, tok.Val)
		case lex.TComma:
			// values are already split on these
		case lex.TErr:
			return s, errors.Errorf("error lexing expression %q: %s", raw, tok.Val)
		case lex.TEOF:
			return s, nil
		}
	}
}
