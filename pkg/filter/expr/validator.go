package expr

import (
	"errors"
	"fmt"
)

// Validate validates the predicate is correctly structured before it is rendered.
// The column is deliberately not checked, it is inserted verbatim by the drivers.
func Validate(p *Predicate) (err error) {
	if p == nil {
		return errors.New("predicate validation: predicate must not be nil")
	}

	if p.Op < Eq || p.Op > In {
		return fmt.Errorf("predicate validation: column %s has no valid operator", p.Column)
	}

	return nil
}
