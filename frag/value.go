package frag

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Kind enumerates the value types a parameter can carry across the
// execution-layer boundary.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytes
	KindTime
)

// Value is a tagged parameter value. Carrying an explicit kind instead of a
// bare any keeps the execution-layer boundary explicit and serializable, and
// keeps reflection out of the hot path.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	raw  []byte
	t    time.Time
}

func Null() Value { return Value{kind: KindNull} }

func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

func Int(v int64) Value { return Value{kind: KindInt, i: v} }

func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

func Text(v string) Value { return Value{kind: KindText, s: v} }

func Bytes(v []byte) Value { return Value{kind: KindBytes, raw: v} }

func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// Kind returns the value's tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the SQL NULL parameter.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Interface unwraps the value into the any shape a query executor binds.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindBytes:
		return v.raw
	case KindTime:
		return v.t
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.kind == KindNull {
		return "NULL"
	}
	return fmt.Sprint(v.Interface())
}

// Bind normalizes a Go value into a tagged Value. It accepts the scalar
// types fragment callers produce, plus uuid.UUID and ulid.ULID, which bind
// as their canonical text forms.
func Bind(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Text(x), nil
	case []byte:
		return Bytes(x), nil
	case time.Time:
		return Time(x), nil
	case uuid.UUID:
		return Text(x.String()), nil
	case ulid.ULID:
		return Text(x.String()), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrBind, v)
	}
}

// MustBind is Bind for values statically known to be bindable; it panics on
// anything Bind rejects.
func MustBind(v any) Value {
	val, err := Bind(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Args flattens a parameter list into the []any shape query executors take,
// preserving order.
func Args(params []Value) []any {
	if len(params) == 0 {
		return nil
	}
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p.Interface()
	}
	return out
}
