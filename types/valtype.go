package types

import "fmt"

// ValType is the whole type system: a scalar or a flat list of scalars.
// A List never holds another List.
type ValType int

const (
	Number ValType = iota
	List
)

func (v ValType) String() string {
	switch v {
	case Number:
		return "Number"
	case List:
		return "List"
	default:
		return fmt.Sprintf("ValType(%d)", int(v))
	}
}

// ParseValType maps a source-level type name to its ValType.
func ParseValType(name string) (ValType, error) {
	switch name {
	case "Number":
		return Number, nil
	case "List":
		return List, nil
	}
	return Number, fmt.Errorf("unknown type name %q. Expected one of %v", name, reservedTypeNames)
}

// TypesStr joins types with ", ", for signatures in messages.
func TypesStr(ts []ValType) string {
	s := ""
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s
}
