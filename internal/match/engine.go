package match

import (
	"errors"
	"sort"

	"presetsleuth/internal/params"
	"presetsleuth/internal/presets"
)

// ErrEmptyInput rejects a parameter set with nothing to score. An empty
// set has no evidentiary value; scoring it would rank every preset as an
// indeterminate zero.
var ErrEmptyInput = errors.New("no recognized encoder parameters in input")

// Result is one candidate preset with its score and the evidence behind it.
type Result struct {
	Preset string
	// Score is matched weight over considered weight, in [0,1]. Zero with
	// Indeterminate set means "cannot determine", not "ruled out".
	Score         float64
	Matched       []string
	Conflicting   []string
	Absent        []string
	Indeterminate bool
}

// Engine ranks parameter sets against a fixed profile table.
type Engine struct {
	profiles []presets.Profile
}

// New returns an engine over the canonical preset table.
func New() *Engine {
	return NewWithProfiles(presets.All())
}

// NewWithProfiles returns an engine over an explicit profile list, keeping
// the list's order as the tie-break order.
func NewWithProfiles(profiles []presets.Profile) *Engine {
	owned := make([]presets.Profile, len(profiles))
	copy(owned, profiles)
	return &Engine{profiles: owned}
}

// Match scores input against every profile and returns results ordered by
// descending score; ties keep canonical preset order, fastest first. All
// tied candidates are returned so the caller can surface the tie.
func (e *Engine) Match(input params.Set) ([]Result, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	results := make([]Result, 0, len(e.profiles))
	anyConsidered := false
	for _, profile := range e.profiles {
		result := scoreProfile(input, profile)
		if len(result.Matched) > 0 || len(result.Conflicting) > 0 {
			anyConsidered = true
		}
		results = append(results, result)
	}

	if !anyConsidered {
		for i := range results {
			results[i].Indeterminate = true
		}
		return results, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func scoreProfile(input params.Set, profile presets.Profile) Result {
	result := Result{Preset: profile.Name}

	var matchedWeight, consideredWeight float64
	for _, name := range profile.Params.Names() {
		canonical := profile.Params[name]
		value, present := input[name]
		if !present {
			result.Absent = append(result.Absent, name)
			continue
		}
		weight := specWeight(name)
		consideredWeight += weight
		if value.Equal(canonical) {
			matchedWeight += weight
			result.Matched = append(result.Matched, name)
		} else {
			result.Conflicting = append(result.Conflicting, name)
		}
	}

	if consideredWeight > 0 {
		result.Score = matchedWeight / consideredWeight
	}
	return result
}

func specWeight(name string) float64 {
	if spec, ok := params.Lookup(name); ok {
		return spec.Weight
	}
	return 1.0
}
