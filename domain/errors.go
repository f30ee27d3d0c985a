package domain

import "errors"

var (
	// ErrMalformedFilter reports a filter that is not a well-formed
	// prefix-notation domain: invalid JSON shape, a leaf that is not a
	// [field, operator, value] triple, or connectors without operands.
	ErrMalformedFilter = errors.New("domain: malformed filter")

	// ErrUnknownOperator reports a term-operator token outside the closed
	// operator set.
	ErrUnknownOperator = errors.New("domain: unknown operator")

	// ErrUnsupportedOperator reports a token that belongs to the operator
	// set but needs a relational model graph to expand (child_of,
	// parent_of, any, not any).
	ErrUnsupportedOperator = errors.New("domain: unsupported operator")
)
