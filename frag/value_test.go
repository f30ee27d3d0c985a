package frag

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindScalars(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int", 42, Int(42)},
		{"int32", int32(7), Int(7)},
		{"int64", int64(-3), Int(-3)},
		{"float32", float32(0.5), Float(0.5)},
		{"float64", 1.25, Float(1.25)},
		{"string", "foo", Text("foo")},
		{"bytes", []byte{0xde, 0xad}, Bytes([]byte{0xde, 0xad})},
		{"time", now, Time(now)},
		{"value passthrough", Int(9), Int(9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Bind(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBindIDs(t *testing.T) {
	id := uuid.MustParse("0190d4c2-9b8f-7aaa-8001-000000000001")
	v, err := Bind(id)
	require.NoError(t, err)
	assert.Equal(t, Text(id.String()), v)

	ul, err := ulid.Parse("01HZCC3ZJ4Q2X5V6W7Y8Z9A0BC")
	require.NoError(t, err)
	v, err = Bind(ul)
	require.NoError(t, err)
	assert.Equal(t, Text(ul.String()), v)
}

func TestBindRejectsUnknownTypes(t *testing.T) {
	_, err := Bind(struct{ X int }{1})
	require.ErrorIs(t, err, ErrBind)

	assert.Panics(t, func() { MustBind(make(chan int)) })
}

func TestValueKindAndNull(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.Nil(t, Null().Interface())
	assert.Equal(t, KindText, Text("x").Kind())
	assert.False(t, Int(0).IsNull())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", Null().String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "foo", Text("foo").String())
}

func TestArgs(t *testing.T) {
	assert.Nil(t, Args(nil))
	got := Args([]Value{Text("a"), Int(1), Bool(false), Null()})
	assert.Equal(t, []any{"a", int64(1), false, nil}, got)
}
