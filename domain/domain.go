// Package domain compiles domain filters into parameterized WHERE-clause
// fragments. A filter is a JSON array in prefix notation: leaves are
// [field, operator, value] triples, "&" and "|" are binary prefix
// connectors, "!" is unary, and consecutive terms without a connector are
// ANDed together implicitly:
//
//	["&", ["name", "=", "foo"], ["age", ">", 18]]
//	[["name", "like", "f%"], ["active", "=", true]]
//
// Compilation produces a frag.Fragment the caller appends onto a statement
// and finalizes. This is the layer where unrecognized operator tokens
// become user-facing errors.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Konsultn-Engineering/sqldomain/operator"
)

// Term is one [field, operator, value] leaf of a domain filter.
type Term struct {
	Field    string
	Operator string
	Value    any
}

// token is one element of a normalized prefix-notation filter: a connector
// or a term.
type token struct {
	connector string
	term      *Term
}

// parse unmarshals a JSON domain filter into its token list. Numbers decode
// as json.Number so integer values stay integral.
func parse(raw []byte) ([]token, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}

	tokens := make([]token, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			if !operator.IsConnector(v) {
				return nil, fmt.Errorf("%w: %q is not a connector", ErrMalformedFilter, v)
			}
			tokens = append(tokens, token{connector: v})
		case []any:
			t, err := parseTerm(v)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{term: t})
		default:
			return nil, fmt.Errorf("%w: unexpected element %v", ErrMalformedFilter, e)
		}
	}
	return normalize(tokens)
}

func parseTerm(elem []any) (*Term, error) {
	if len(elem) != 3 {
		return nil, fmt.Errorf("%w: term must be a [field, operator, value] triple, got %v", ErrMalformedFilter, elem)
	}
	field, ok := elem[0].(string)
	if !ok || field == "" {
		return nil, fmt.Errorf("%w: term field %v", ErrMalformedFilter, elem[0])
	}
	op, ok := elem[1].(string)
	if !ok {
		return nil, fmt.Errorf("%w: term operator %v", ErrMalformedFilter, elem[1])
	}
	return &Term{Field: field, Operator: op, Value: elem[2]}, nil
}

// normalize prepends the implicit AND connectors so the token list becomes
// one well-formed prefix expression: [t1, t2] becomes [&, t1, t2].
func normalize(tokens []token) ([]token, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}
	result := make([]token, 0, len(tokens)+2)
	expected := 1
	for _, tok := range tokens {
		if expected == 0 {
			result = append([]token{{connector: operator.And}}, result...)
			expected = 1
		}
		switch {
		case tok.term != nil:
			expected--
		case tok.connector == operator.And || tok.connector == operator.Or:
			expected++
		}
		// Not consumes and produces one operand, leaving expected as is.
		result = append(result, tok)
	}
	if expected > 0 {
		return nil, fmt.Errorf("%w: connector missing operands", ErrMalformedFilter)
	}
	return result, nil
}
