package params

import "strings"

// Kind identifies the value domain of a parameter.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Spec describes one tunable encoder setting referenced by the preset table.
type Spec struct {
	Name    string
	Aliases []string
	Kind    Kind
	// IntMin and IntMax bound KindInt values. IntMax of zero with a
	// non-zero IntMin means no upper bound is enforced.
	IntMin int
	IntMax int
	Enum   []string
	// Weight is the contribution of this parameter to match scoring.
	// All weights are 1.0 until calibration data says otherwise.
	Weight float64
}

const defaultWeight = 1.0

// MotionSearchMethods lists the x265 motion search names in option-index
// order; metadata dumps frequently carry the numeric index instead of the
// name.
var MotionSearchMethods = []string{"dia", "hex", "umh", "star", "sea", "full"}

// specs is the canonical registry. One entry per parameter published in the
// x265 preset table, fixed at process start.
var specs = []Spec{
	{Name: "ctu", Kind: KindInt, IntMin: 16, IntMax: 64},
	{Name: "min-cu-size", Kind: KindInt, IntMin: 8, IntMax: 32},
	{Name: "bframes", Kind: KindInt, IntMin: 0, IntMax: 16},
	{Name: "b-adapt", Kind: KindInt, IntMin: 0, IntMax: 2},
	{Name: "rc-lookahead", Kind: KindInt, IntMin: 0, IntMax: 250},
	{Name: "lookahead-slices", Kind: KindInt, IntMin: 0, IntMax: 16},
	{Name: "scenecut", Kind: KindInt, IntMin: 0, IntMax: 0},
	{Name: "ref", Kind: KindInt, IntMin: 1, IntMax: 16},
	{Name: "limit-refs", Kind: KindInt, IntMin: 0, IntMax: 3},
	{Name: "me", Kind: KindEnum, Enum: MotionSearchMethods},
	{Name: "merange", Kind: KindInt, IntMin: 0, IntMax: 32768},
	{Name: "subme", Kind: KindInt, IntMin: 0, IntMax: 7},
	{Name: "rect", Kind: KindBool},
	{Name: "amp", Kind: KindBool},
	{Name: "limit-modes", Kind: KindBool},
	{Name: "max-merge", Kind: KindInt, IntMin: 1, IntMax: 5},
	{Name: "early-skip", Kind: KindBool},
	{Name: "recursion-skip", Aliases: []string{"rskip"}, Kind: KindBool},
	{Name: "fast-intra", Kind: KindBool},
	{Name: "b-intra", Kind: KindBool},
	{Name: "sao", Kind: KindBool},
	{Name: "signhide", Kind: KindBool},
	{Name: "weightp", Kind: KindBool},
	{Name: "weightb", Kind: KindBool},
	{Name: "aq-mode", Kind: KindInt, IntMin: 0, IntMax: 4},
	{Name: "cutree", Aliases: []string{"cu-tree"}, Kind: KindBool},
	{Name: "rd", Aliases: []string{"rdlevel", "rd-level"}, Kind: KindInt, IntMin: 1, IntMax: 6},
	{Name: "rdoq-level", Aliases: []string{"rdoq"}, Kind: KindInt, IntMin: 0, IntMax: 2},
	{Name: "tu-intra", Aliases: []string{"tu-intra-depth"}, Kind: KindInt, IntMin: 1, IntMax: 4},
	{Name: "tu-inter", Aliases: []string{"tu-inter-depth"}, Kind: KindInt, IntMin: 1, IntMax: 4},
	{Name: "limit-tu", Kind: KindInt, IntMin: 0, IntMax: 4},
}

var specsByAlias = buildAliasIndex()

func buildAliasIndex() map[string]*Spec {
	index := make(map[string]*Spec, len(specs)*2)
	for i := range specs {
		spec := &specs[i]
		if spec.Weight == 0 {
			spec.Weight = defaultWeight
		}
		index[spec.Name] = spec
		for _, alias := range spec.Aliases {
			index[strings.ToLower(alias)] = spec
		}
	}
	return index
}

// Lookup resolves an external spelling to its canonical spec.
func Lookup(key string) (*Spec, bool) {
	spec, ok := specsByAlias[strings.ToLower(strings.TrimSpace(key))]
	return spec, ok
}

// Specs returns the canonical registry in declaration order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}
