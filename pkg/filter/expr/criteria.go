package expr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Criteria is the right hand side of a predicate. It is either a Scalar or a List
// and is decided once, when the raw expression is parsed.
type Criteria interface {
	fmt.Stringer

	// Values returns the raw, unformatted values of the criteria.
	Values() []string
	isCriteria()
}

// Scalar is a single criteria value
type Scalar string

// List is a multi valued criteria, produced whenever the value text contains a comma
type List []string

// Sc creates a scalar criteria
func Sc(value string) Scalar {
	return Scalar(value)
}

// Ls creates a list criteria
func Ls(values ...string) List {
	return List(values)
}

func (Scalar) isCriteria() {}
func (List) isCriteria()   {}

// Values returns the scalar as a single element slice
func (s Scalar) Values() []string {
	return []string{string(s)}
}

// Values returns a copy of the list values
func (l List) Values() []string {
	return append([]string{}, l...)
}

func (s Scalar) String() string {
	return string(s)
}

func (l List) String() string {
	return strings.Join(l, ",")
}

// criteriaValue converts criteria into something json and yaml encoders understand.
func criteriaValue(c Criteria) any {
	switch v := c.(type) {
	case Scalar:
		return string(v)
	case List:
		return v.Values()
	default:
		return nil
	}
}

func decodeCriteria(raw json.RawMessage) (Criteria, error) {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) == 0 || trimmed == "null" {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var l []string
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("list criteria must be an array of strings: %w", err)
		}
		return Ls(l...), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scalar criteria must be a string: %w", err)
	}
	return Sc(s), nil
}
