package params_test

import (
	"testing"

	"presetsleuth/internal/params"
)

func TestLookupCanonicalAndAlias(t *testing.T) {
	cases := map[string]string{
		"rd":             "rd",
		"rdLevel":        "rd",
		"rd-level":       "rd",
		"CU-Tree":        "cutree",
		"tu-intra-depth": "tu-intra",
		"tu-inter-depth": "tu-inter",
		"rskip":          "recursion-skip",
		"rdoq":           "rdoq-level",
	}
	for key, want := range cases {
		spec, ok := params.Lookup(key)
		if !ok {
			t.Fatalf("Lookup(%q) not found", key)
		}
		if spec.Name != want {
			t.Fatalf("Lookup(%q) = %q, want %q", key, spec.Name, want)
		}
	}

	if _, ok := params.Lookup("crf"); ok {
		t.Fatal("crf is rate control, not a preset parameter")
	}
}

func TestSpecsCarryWeights(t *testing.T) {
	for _, spec := range params.Specs() {
		if spec.Weight <= 0 {
			t.Fatalf("%s: weight %v must be positive", spec.Name, spec.Weight)
		}
		if spec.Kind == params.KindEnum && len(spec.Enum) == 0 {
			t.Fatalf("%s: enum spec without a domain", spec.Name)
		}
	}
}
