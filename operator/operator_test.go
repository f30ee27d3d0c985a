package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		token    string
		sql      string
		negative bool
	}{
		{"=", "=", false},
		{"!=", "!=", true},
		{"<", "<", false},
		{"<=", "<=", false},
		{">", ">", false},
		{">=", ">=", false},
		{"in", "IN", false},
		{"not in", "NOT IN", true},
		{"like", "LIKE", false},
		{"=like", "LIKE", false},
		{"not like", "NOT LIKE", true},
		{"ilike", "ILIKE", false},
		{"=ilike", "ILIKE", false},
		{"not ilike", "NOT ILIKE", true},
	}
	for _, tc := range cases {
		op, ok := Lookup(tc.token)
		require.True(t, ok, "token %q", tc.token)
		assert.Equal(t, tc.sql, op.SQL)
		assert.Equal(t, tc.negative, op.Negative)
	}
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup("unknown_token")
	assert.False(t, ok)

	// Case-sensitive, exact-match only.
	_, ok = Lookup("IN")
	assert.False(t, ok)
	_, ok = Lookup(" in")
	assert.False(t, ok)
}

func TestGraphTokensHaveNoSQLText(t *testing.T) {
	for _, token := range []string{"child_of", "parent_of", "any", "not any", "=?"} {
		assert.True(t, IsTerm(token), "token %q", token)
		_, ok := Lookup(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestIsTerm(t *testing.T) {
	assert.True(t, IsTerm("not in"))
	assert.False(t, IsTerm("between"))
	assert.False(t, IsTerm(""))
}

func TestIsNegative(t *testing.T) {
	for _, token := range []string{"!=", "not like", "not ilike", "not in"} {
		assert.True(t, IsNegative(token), "token %q", token)
	}
	assert.False(t, IsNegative("="))
	assert.False(t, IsNegative("like"))
}

func TestConnectors(t *testing.T) {
	cases := map[string]string{Not: "NOT", Or: "OR", And: "AND"}
	for token, sql := range cases {
		got, ok := Connector(token)
		require.True(t, ok)
		assert.Equal(t, sql, got)
		assert.True(t, IsConnector(token))
	}
	assert.False(t, IsConnector("and"))
	assert.False(t, IsConnector(""))
}
