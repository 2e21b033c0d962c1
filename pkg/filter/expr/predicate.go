package expr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Predicate is a single column comparison destined for a WHERE clause.
//
// The operator and the shape of the criteria are derived independently from the
// raw expression, so an explicit eq with comma separated values produces an Eq
// predicate with List criteria.
type Predicate struct {
	Column   string   `json:"column"`
	Op       Operator `json:"-"`
	Criteria Criteria `json:"-"`
}

// Pred creates a new predicate
func Pred(column string, op Operator, criteria Criteria) *Predicate {
	return &Predicate{
		Column:   column,
		Op:       op,
		Criteria: criteria,
	}
}

// String renders the predicate back into the filter syntax it was parsed from (x=gte.8)
func (p Predicate) String() string {
	value := ""
	if p.Criteria != nil {
		value = p.Criteria.String()
	}

	if p.Op == Undefined {
		return fmt.Sprintf("%s=%s", p.Column, value)
	}
	return fmt.Sprintf("%s=%s.%s", p.Column, p.Op.Opcode(), value)
}

// GoString renders a verbose form used with %#v
func (p Predicate) GoString() string {
	var value string
	switch c := p.Criteria.(type) {
	case Scalar:
		value = fmt.Sprintf("%q", string(c))
	case List:
		value = fmt.Sprintf("%q", []string(c))
	default:
		value = "<nil>"
	}

	op := "UNDEFINED"
	if p.Op != Undefined {
		op = strings.ToUpper(p.Op.Opcode())
	}
	return fmt.Sprintf("PREDICATE(%s %s %s)", p.Column, op, value)
}

// MarshalJSON ...
func (p Predicate) MarshalJSON() ([]byte, error) {
	type predAlias Predicate
	return json.Marshal(struct {
		predAlias
		Operator string `json:"operator"`
		Criteria any    `json:"criteria"`
	}{
		predAlias: predAlias(p),
		Operator:  p.Op.String(),
		Criteria:  criteriaValue(p.Criteria),
	})
}

// UnmarshalJSON accepts the operator either as a SQL symbol (>=) or as an opcode (gte).
func (p *Predicate) UnmarshalJSON(data []byte) error {
	type predAlias Predicate
	tmp := &struct {
		*predAlias
		Operator string          `json:"operator"`
		Criteria json.RawMessage `json:"criteria"`
	}{
		predAlias: (*predAlias)(p),
	}

	if err := json.Unmarshal(data, tmp); err != nil {
		return err
	}

	op, err := ParseSymbol(tmp.Operator)
	if err != nil {
		op, err = ParseOpcode(tmp.Operator)
		if err != nil {
			return err
		}
	}
	p.Op = op

	p.Criteria, err = decodeCriteria(tmp.Criteria)
	return err
}

// MarshalYAML keeps the yaml form in line with the json one
func (p Predicate) MarshalYAML() (any, error) {
	return struct {
		Column   string `yaml:"column"`
		Operator string `yaml:"operator"`
		Criteria any    `yaml:"criteria"`
	}{
		Column:   p.Column,
		Operator: p.Op.String(),
		Criteria: criteriaValue(p.Criteria),
	}, nil
}
