package domain

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton so table pluralization stays consistent
// across callers.
var pluralizeClient = pluralizer.NewClient()

// ColumnNamingStrategy converts a domain filter field name into the column
// name emitted in SQL. Implementations must return consistent results for
// the same input.
type ColumnNamingStrategy interface {
	ColumnName(fieldName string) string
}

type identityNaming struct{}

func (identityNaming) ColumnName(fieldName string) string { return fieldName }

// IdentityNaming passes field names through unchanged.
func IdentityNaming() ColumnNamingStrategy {
	return identityNaming{}
}

type snakeNaming struct{}

func (snakeNaming) ColumnName(fieldName string) string { return toSnakeCase(fieldName) }

// SnakeNaming converts camelCase and PascalCase field names to snake_case
// column names.
func SnakeNaming() ColumnNamingStrategy {
	return snakeNaming{}
}

// TableName derives a table name from a model name: dots become
// underscores, the result is snake_cased and, when plural is true,
// pluralized. Feed the result through frag.Identifier before splicing it
// into a statement.
func TableName(name string, plural bool) string {
	table := toSnakeCase(strings.ReplaceAll(name, ".", "_"))
	if plural {
		table = pluralizeClient.Plural(table)
	}
	return table
}

// toSnakeCase keeps acronym runs together: userID becomes user_id, not
// user_i_d.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) && runes[i-1] != '_' {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
