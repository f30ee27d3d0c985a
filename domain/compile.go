package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqldomain/cache"
	"github.com/Konsultn-Engineering/sqldomain/frag"
	"github.com/Konsultn-Engineering/sqldomain/operator"
)

// Compiler turns domain filters into WHERE-clause fragments. Safe for
// concurrent use once constructed.
type Compiler struct {
	columns ColumnNamingStrategy
	cache   *cache.ClauseCache
}

// NewCompiler creates a Compiler with identity column naming and no cache;
// options override both.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{columns: IdentityNaming()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Compile parses a raw JSON filter and compiles it into a WHERE-clause
// fragment with `?` markers and ordered parameter values. The caller
// appends the fragment onto a statement and finalizes the whole. An empty
// filter compiles to TRUE.
func (c *Compiler) Compile(raw []byte) (*frag.Fragment, error) {
	var key uint64
	if c.cache != nil {
		key = cache.Fingerprint(raw)
		if clause, ok := c.cache.Get(key); ok {
			return frag.New(clause.Text, clause.Params...), nil
		}
	}

	tokens, err := parse(raw)
	if err != nil {
		return nil, err
	}
	f, err := c.compile(tokens)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, &cache.CachedClause{Text: f.Query(), Params: f.Params()})
	}
	return f, nil
}

// CompileTerm compiles a single programmatic term, bypassing JSON parsing.
// Useful when filters are built in code rather than received over the wire.
func (c *Compiler) CompileTerm(t Term) (*frag.Fragment, error) {
	return c.compileTerm(&t)
}

// compile folds a normalized prefix expression right to left over an
// operand stack: terms push, connectors pop and combine.
func (c *Compiler) compile(tokens []token) (*frag.Fragment, error) {
	if len(tokens) == 0 {
		return frag.New("TRUE"), nil
	}

	stack := make([]*frag.Fragment, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if tok.term != nil {
			f, err := c.compileTerm(tok.term)
			if err != nil {
				return nil, err
			}
			stack = append(stack, f)
			continue
		}

		switch tok.connector {
		case operator.Not:
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: connector missing operands", ErrMalformedFilter)
			}
			top := stack[len(stack)-1]
			stack[len(stack)-1] = frag.New("(NOT "+top.Query()+")", top.Params()...)
		default:
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: connector missing operands", ErrMalformedFilter)
			}
			sql, _ := operator.Connector(tok.connector)
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			params := append(a.Params(), b.Params()...)
			stack[len(stack)-1] = frag.New("("+a.Query()+" "+sql+" "+b.Query()+")", params...)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: dangling operands", ErrMalformedFilter)
	}
	return stack[0], nil
}

func (c *Compiler) compileTerm(t *Term) (*frag.Fragment, error) {
	if !operator.IsTerm(t.Operator) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, t.Operator)
	}

	column := frag.Identifier(c.columns.ColumnName(t.Field))

	switch t.Operator {
	case "in", "not in":
		return c.compileMembership(column, t)
	case "=?":
		// A null right-hand side makes the term vacuously true.
		if t.Value == nil {
			return frag.New("TRUE"), nil
		}
		v, err := bindValue(t.Value)
		if err != nil {
			return nil, err
		}
		return frag.New(column+" = ?", v), nil
	case "=", "!=":
		if t.Value == nil {
			if operator.IsNegative(t.Operator) {
				return frag.New(column + " IS NOT NULL"), nil
			}
			return frag.New(column + " IS NULL"), nil
		}
	case "child_of", "parent_of", "any", "not any":
		return nil, fmt.Errorf("%w: %q needs a model graph", ErrUnsupportedOperator, t.Operator)
	}

	op, ok := operator.Lookup(t.Operator)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, t.Operator)
	}
	v, err := bindValue(t.Value)
	if err != nil {
		return nil, err
	}
	return frag.New(column+" "+op.SQL+" ?", v), nil
}

// compileMembership expands in / not in list values into a marker per
// element. Empty lists have no valid IN () form and collapse to a constant.
func (c *Compiler) compileMembership(column string, t *Term) (*frag.Fragment, error) {
	list, ok := t.Value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q needs a list value", ErrMalformedFilter, t.Operator)
	}
	op, _ := operator.Lookup(t.Operator)
	if len(list) == 0 {
		if op.Negative {
			return frag.New("TRUE"), nil
		}
		return frag.New("FALSE"), nil
	}

	params := make([]frag.Value, 0, len(list))
	for _, e := range list {
		v, err := bindValue(e)
		if err != nil {
			return nil, err
		}
		params = append(params, v)
	}

	var sb strings.Builder
	sb.WriteString(column)
	sb.WriteString(" ")
	sb.WriteString(op.SQL)
	sb.WriteString(" (")
	for i := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte(frag.Marker)
	}
	sb.WriteString(")")
	return frag.New(sb.String(), params...), nil
}

// bindValue normalizes a decoded JSON value into a tagged parameter,
// keeping integral numbers integral.
func bindValue(v any) (frag.Value, error) {
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return frag.Int(i), nil
		}
		f, err := num.Float64()
		if err != nil {
			return frag.Value{}, fmt.Errorf("%w: number %q", ErrMalformedFilter, num.String())
		}
		return frag.Float(f), nil
	}
	return frag.Bind(v)
}
