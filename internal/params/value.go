package params

import (
	"sort"
	"strconv"
)

// Value is a typed parameter value bound to a canonical spec name.
type Value struct {
	Name string
	Kind Kind
	Bool bool
	Int  int
	Enum string
}

// Equal reports whether two values carry the same name and payload.
func (v Value) Equal(other Value) bool {
	if v.Name != other.Name || v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int
	case KindEnum:
		return v.Enum == other.Enum
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "1"
		}
		return "0"
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindEnum:
		return v.Enum
	default:
		return ""
	}
}

// Set maps canonical parameter names to their parsed values. It represents
// either one parsed input or one preset's canonical defaults.
type Set map[string]Value

// Names returns the parameter names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name, value := range s {
		out[name] = value
	}
	return out
}
