// Package operator holds the static lookup tables mapping domain filter
// tokens onto SQL operator text. The tables are immutable and safe for
// concurrent reads. A lookup miss is not an error at this layer; reporting
// unrecognized tokens to users is the domain compiler's job.
package operator

// Op is one row of the term-operator table: the SQL operator text to emit
// for a domain filter token, and whether the token is the negative form of
// an operator pair.
type Op struct {
	SQL      string
	Negative bool
}

// Tokens is the closed set of term-operator tokens the domain layer
// accepts. child_of, parent_of, any and not any are valid tokens with no
// direct SQL operator text; expanding them takes a model graph this library
// does not have.
var Tokens = []string{
	"=",
	"!=",
	"<=",
	"<",
	">",
	">=",
	"=?",
	"=like",
	"=ilike",
	"like",
	"not like",
	"ilike",
	"not ilike",
	"in",
	"not in",
	"child_of",
	"parent_of",
	"any",
	"not any",
}

// termOps maps term-operator tokens to SQL operator text. Exact-match,
// case-sensitive. Tokens in Tokens but absent here need special handling
// upstream.
var termOps = map[string]Op{
	"=":         {SQL: "="},
	"!=":        {SQL: "!=", Negative: true},
	"<=":        {SQL: "<="},
	"<":         {SQL: "<"},
	">":         {SQL: ">"},
	">=":        {SQL: ">="},
	"in":        {SQL: "IN"},
	"not in":    {SQL: "NOT IN", Negative: true},
	"=like":     {SQL: "LIKE"},
	"=ilike":    {SQL: "ILIKE"},
	"like":      {SQL: "LIKE"},
	"ilike":     {SQL: "ILIKE"},
	"not like":  {SQL: "NOT LIKE", Negative: true},
	"not ilike": {SQL: "NOT ILIKE", Negative: true},
}

// Lookup resolves a term-operator token to its SQL operator text.
func Lookup(token string) (Op, bool) {
	op, ok := termOps[token]
	return op, ok
}

// IsTerm reports whether token belongs to the closed term-operator set,
// including the tokens with no direct SQL text.
func IsTerm(token string) bool {
	for _, t := range Tokens {
		if t == token {
			return true
		}
	}
	return false
}

// IsNegative reports whether token is the negative form of an operator
// pair.
func IsNegative(token string) bool {
	return termOps[token].Negative
}
