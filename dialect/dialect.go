package dialect

// Dialect abstracts the two pieces of backend-specific syntax fragment
// assembly needs: identifier quoting and positional parameter references.
// Anything past literal placeholder substitution (type rendering, vendor
// clauses) belongs to an execution layer, not here.
type Dialect interface {
	QuoteIdentifier(name string) string
	Placeholder(n int) string
}
