package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Int"
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// ParseKind maps a kind name as printed by String back to the Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "Int":
		return KindInteger, nil
	case "String":
		return KindString, nil
	case "Boolean":
		return KindBool, nil
	default:
		return 0, fmt.Errorf("runtime: unknown value kind %q", name)
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// DefaultValue is the result of an empty block or a loop whose body never ran.
var DefaultValue Value = IntegerValue{Val: 0}

// Render returns the textual form used by println and string concatenation.
func Render(v Value) string {
	switch val := v.(type) {
	case IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case StringValue:
		return val.Val
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// Equal compares two values by kind and payload. Values of different kinds are
// never equal.
func Equal(left, right Value) bool {
	switch lv := left.(type) {
	case IntegerValue:
		if rv, ok := right.(IntegerValue); ok {
			return lv.Val == rv.Val
		}
	case StringValue:
		if rv, ok := right.(StringValue); ok {
			return lv.Val == rv.Val
		}
	case BoolValue:
		if rv, ok := right.(BoolValue); ok {
			return lv.Val == rv.Val
		}
	}
	return false
}
