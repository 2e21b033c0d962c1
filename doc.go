// Package where turns PostgREST style query string filters into the body of a SQL
// WHERE clause.
//
// Every filter maps a column to a raw expression of the form [opcode.]value[,value...]
// where opcode is one of eq, neq, gt, gte, lt, lte or in:
//
//	age=gte.8         age >= 8
//	color=in.red,blue color IN ('red','blue')
//	name=O'Brien      name = 'O''Brien'
//	size=s,m          size IN ('s','m')
//
// Values that look like numbers are rendered unquoted, everything else is rendered as a
// single quoted string literal. Column names are emitted verbatim and must come from a
// trusted allow list. Use BuildWhereClauseParams or ToPostgres to get placeholders and
// bind values instead of inline literals.
package where
