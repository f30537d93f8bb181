package presets

import (
	"errors"
	"fmt"
	"sync"

	"presetsleuth/internal/params"
)

// ErrNotFound is returned when a preset name is not one of the ten
// canonical presets.
var ErrNotFound = errors.New("preset not found")

// Profile is a named preset together with its canonical parameter defaults.
type Profile struct {
	Name   string
	Params params.Set
}

// presetOrder lists the canonical presets fastest to slowest.
var presetOrder = []string{
	"ultrafast",
	"superfast",
	"veryfast",
	"faster",
	"fast",
	"medium",
	"slow",
	"slower",
	"veryslow",
	"placebo",
}

// Parameter defaults per preset, as published in the x265 preset
// documentation (https://x265.readthedocs.io/en/master/presets.html).
// The strings keep the documentation's own spellings (cuTree, rdLevel);
// alias normalization folds them onto canonical names when the table is
// built.
var presetDefaults = map[string]string{
	"ultrafast": "ctu=32 min-cu-size=16 bframes=3 b-adapt=0 rc-lookahead=5 lookahead-slices=8 scenecut=0 ref=1 limit-refs=0 me=dia merange=57 subme=0 rect=0 amp=0 limit-modes=0 max-merge=2 early-skip=1 recursion-skip=1 fast-intra=1 b-intra=0 sao=0 signhide=0 weightp=0 weightb=0 aq-mode=0 cuTree=1 rdLevel=2 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"superfast": "ctu=32 min-cu-size=8 bframes=3 b-adapt=0 rc-lookahead=10 lookahead-slices=8 scenecut=40 ref=1 limit-refs=0 me=hex merange=57 subme=1 rect=0 amp=0 limit-modes=0 max-merge=2 early-skip=1 recursion-skip=1 fast-intra=1 b-intra=0 sao=0 signhide=1 weightp=0 weightb=0 aq-mode=0 cuTree=1 rdLevel=2 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"veryfast":  "ctu=64 min-cu-size=8 bframes=4 b-adapt=0 rc-lookahead=15 lookahead-slices=8 scenecut=40 ref=2 limit-refs=3 me=hex merange=57 subme=1 rect=0 amp=0 limit-modes=0 max-merge=2 early-skip=1 recursion-skip=1 fast-intra=1 b-intra=0 sao=1 signhide=1 weightp=1 weightb=0 aq-mode=2 cuTree=1 rdLevel=2 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"faster":    "ctu=64 min-cu-size=8 bframes=4 b-adapt=0 rc-lookahead=15 lookahead-slices=8 scenecut=40 ref=2 limit-refs=3 me=hex merange=57 subme=2 rect=0 amp=0 limit-modes=0 max-merge=2 early-skip=1 recursion-skip=1 fast-intra=1 b-intra=0 sao=1 signhide=1 weightp=1 weightb=0 aq-mode=2 cuTree=1 rdLevel=2 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"fast":      "ctu=64 min-cu-size=8 bframes=4 b-adapt=0 rc-lookahead=15 lookahead-slices=8 scenecut=40 ref=3 limit-refs=3 me=hex merange=57 subme=2 rect=0 amp=0 limit-modes=0 max-merge=2 early-skip=0 recursion-skip=1 fast-intra=1 b-intra=0 sao=1 signhide=1 weightp=1 weightb=0 aq-mode=2 cuTree=1 rdLevel=2 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"medium":    "ctu=64 min-cu-size=8 bframes=4 b-adapt=2 rc-lookahead=20 lookahead-slices=8 scenecut=40 ref=3 limit-refs=1 me=hex merange=57 subme=2 rect=0 amp=0 limit-modes=0 max-merge=3 early-skip=1 recursion-skip=1 fast-intra=0 b-intra=1 sao=1 signhide=1 weightp=1 weightb=0 aq-mode=2 cuTree=1 rdLevel=3 rdoq-level=0 tu-intra=1 tu-inter=1 limit-tu=0",
	"slow":      "ctu=64 min-cu-size=8 bframes=4 b-adapt=2 rc-lookahead=25 lookahead-slices=4 scenecut=40 ref=4 limit-refs=3 me=star merange=57 subme=3 rect=1 amp=0 limit-modes=1 max-merge=3 early-skip=0 recursion-skip=1 fast-intra=0 b-intra=0 sao=1 signhide=1 weightp=1 weightb=0 aq-mode=2 cuTree=1 rdLevel=4 rdoq-level=2 tu-intra=1 tu-inter=1 limit-tu=0",
	"slower":    "ctu=64 min-cu-size=8 bframes=8 b-adapt=2 rc-lookahead=40 lookahead-slices=1 scenecut=40 ref=5 limit-refs=1 me=star merange=57 subme=4 rect=1 amp=1 limit-modes=1 max-merge=4 early-skip=0 recursion-skip=1 fast-intra=0 b-intra=1 sao=1 signhide=1 weightp=1 weightb=1 aq-mode=2 cuTree=1 rdLevel=6 rdoq-level=2 tu-intra=3 tu-inter=3 limit-tu=4",
	"veryslow":  "ctu=64 min-cu-size=8 bframes=8 b-adapt=2 rc-lookahead=40 lookahead-slices=1 scenecut=40 ref=5 limit-refs=0 me=star merange=57 subme=4 rect=1 amp=1 limit-modes=0 max-merge=5 early-skip=0 recursion-skip=1 fast-intra=0 b-intra=1 sao=1 signhide=1 weightp=1 weightb=1 aq-mode=2 cuTree=1 rdLevel=6 rdoq-level=2 tu-intra=3 tu-inter=3 limit-tu=0",
	"placebo":   "ctu=64 min-cu-size=8 bframes=8 b-adapt=2 rc-lookahead=60 lookahead-slices=1 scenecut=40 ref=5 limit-refs=0 me=star merange=92 subme=5 rect=1 amp=1 limit-modes=0 max-merge=5 early-skip=0 recursion-skip=0 fast-intra=0 b-intra=1 sao=1 signhide=1 weightp=1 weightb=1 aq-mode=2 cuTree=1 rdLevel=6 rdoq-level=2 tu-intra=4 tu-inter=4 limit-tu=0",
}

var loadProfiles = sync.OnceValue(func() []Profile {
	profiles := make([]Profile, 0, len(presetOrder))
	for _, name := range presetOrder {
		raw, ok := presetDefaults[name]
		if !ok {
			panic(fmt.Sprintf("presets: no defaults for %q", name))
		}
		result := params.Parse(raw)
		if len(result.Unknown) > 0 || len(result.Warnings) > 0 {
			panic(fmt.Sprintf("presets: reference data for %q did not parse cleanly: unknown=%v warnings=%v",
				name, result.Unknown, result.Warnings))
		}
		profiles = append(profiles, Profile{Name: name, Params: result.Set})
	}
	return profiles
})

// Names returns the canonical preset names, fastest to slowest.
func Names() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// All returns every profile in canonical order.
func All() []Profile {
	loaded := loadProfiles()
	out := make([]Profile, len(loaded))
	copy(out, loaded)
	return out
}

// For returns the profile for a canonical preset name.
func For(name string) (Profile, error) {
	for _, profile := range loadProfiles() {
		if profile.Name == name {
			return profile, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
