package operator

// Boolean connector tokens, prefix notation. Not is unary, Or and And are
// binary.
const (
	Not = "!"
	Or  = "|"
	And = "&"
)

var connectors = map[string]string{
	Not: "NOT",
	Or:  "OR",
	And: "AND",
}

// Connector resolves a connector token to the SQL keyword a WHERE-clause
// assembler emits for it.
func Connector(token string) (string, bool) {
	sql, ok := connectors[token]
	return sql, ok
}

// IsConnector reports whether token is one of the three boolean connectors.
func IsConnector(token string) bool {
	_, ok := connectors[token]
	return ok
}
