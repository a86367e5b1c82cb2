package ast

import "fmt"

// Type is a Nub static type. The zero value is not a valid type.
type Type int

const (
	TypeInt Type = iota + 1
	TypeString
	TypeBoolean
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeString:
		return "String"
	case TypeBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("<invalid type %d>", int(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= TypeInt && t <= TypeBoolean
}

// ParseType maps a type name to its enum value.
func ParseType(name string) (Type, error) {
	switch name {
	case "Int":
		return TypeInt, nil
	case "String":
		return TypeString, nil
	case "Boolean":
		return TypeBoolean, nil
	default:
		return 0, fmt.Errorf("ast: unknown type %q", name)
	}
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ast: cannot encode invalid type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
