package expr

// Operator is an enum over the comparison operators a filter expression can select.
type Operator int

// operators that can be used
// To add a new operator, do the following:
// 1. Add it to the iota here
// 2. Add it to every switch in this file
// 3. Add a render function for it in the shared driver map
// 4. Add tests in parse_test and the driver tests
const (
	Undefined Operator = iota
	Eq
	Neq
	Gt
	Gte
	Lt
	Lte
	In
)

// String renders the operator as its SQL symbol
func (o Operator) String() string {
	switch o {
	case Eq:
		return "="
	case Neq:
		return "!="
	case Gt:
		return ">"
	case Gte:
		return ">="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case In:
		return "IN"
	default:
		return "UNDEFINED"
	}
}

// Opcode returns the mnemonic used for the operator in a raw filter expression.
func (o Operator) Opcode() string {
	switch o {
	case Eq:
		return "eq"
	case Neq:
		return "neq"
	case Gt:
		return "gt"
	case Gte:
		return "gte"
	case Lt:
		return "lt"
	case Lte:
		return "lte"
	case In:
		return "in"
	default:
		return ""
	}
}

// ParseOpcode maps an opcode prefix (eq, gte, in, ...) to its operator.
func ParseOpcode(opcode string) (Operator, error) {
	switch opcode {
	case "eq":
		return Eq, nil
	case "neq":
		return Neq, nil
	case "gt":
		return Gt, nil
	case "gte":
		return Gte, nil
	case "lt":
		return Lt, nil
	case "lte":
		return Lte, nil
	case "in":
		return In, nil
	default:
		return Undefined, InvalidOperatorError{Opcode: opcode}
	}
}

// ParseSymbol maps a SQL symbol (=, >=, IN, ...) back to its operator.
func ParseSymbol(symbol string) (Operator, error) {
	switch symbol {
	case "=":
		return Eq, nil
	case "!=":
		return Neq, nil
	case ">":
		return Gt, nil
	case ">=":
		return Gte, nil
	case "<":
		return Lt, nil
	case "<=":
		return Lte, nil
	case "IN":
		return In, nil
	default:
		return Undefined, InvalidOperatorError{Opcode: symbol}
	}
}
