package match_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"presetsleuth/internal/match"
	"presetsleuth/internal/params"
	"presetsleuth/internal/presets"
)

// libraryDump is the x265 option stream a real mediainfo report carries in
// its "Encoding settings" line for a veryslow encode.
const libraryDump = "cpuid=1111039 / frame-threads=4 / numa-pools=16 / wpp / no-pmode / no-pme / no-psnr / no-ssim / " +
	"log-level=2 / input-csp=1 / input-res=1920x804 / interlace=0 / total-frames=0 / level-idc=0 / high-tier=1 / " +
	"uhd-bd=0 / ref=5 / no-allow-non-conformance / no-repeat-headers / annexb / no-aud / no-hrd / info / hash=0 / " +
	"no-temporal-layers / open-gop / min-keyint=23 / keyint=250 / gop-lookahead=0 / bframes=8 / b-adapt=2 / " +
	"b-pyramid / bframe-bias=0 / rc-lookahead=40 / lookahead-slices=0 / scenecut=40 / radl=0 / " +
	"no-splice / no-intra-refresh / ctu=64 / min-cu-size=8 / rect / amp / max-tu-size=32 / tu-inter-depth=3 / " +
	"tu-intra-depth=3 / limit-tu=0 / rdoq-level=2 / dynamic-rd=0.00 / no-ssim-rd / signhide / no-tskip / " +
	"nr-intra=0 / nr-inter=0 / no-constrained-intra / no-strong-intra-smoothing / max-merge=5 / limit-refs=0 / " +
	"no-limit-modes / me=3 / subme=4 / merange=57 / temporal-mvp / weightp / weightb / no-analyze-src-pics / " +
	"deblock=0:0 / sao / no-sao-non-deblock / rd=6 / no-early-skip / rskip / no-fast-intra / no-tskip-fast / " +
	"no-cu-lossless / b-intra / no-splitrd-skip / rdpenalty=0 / psy-rd=2.00 / psy-rdoq=1.00 / no-rd-refine / " +
	"no-lossless / cbqpoffs=0 / crqpoffs=0 / rc=crf / crf=18.0 / qcomp=0.60 / qpstep=4 / stats-write=0 / " +
	"stats-read=0 / ipratio=1.40 / pbratio=1.30 / aq-mode=2 / aq-strength=1.00 / cutree / zone-count=0 / " +
	"no-strict-cbr / qg-size=32 / no-rc-grain / qpmax=69 / qpmin=0 / no-const-vbv / sar=1 / overscan=0 / " +
	"videoformat=5 / range=0 / colorprim=1 / transfer=1 / colormatrix=1 / chromaloc=0 / display-window=0 / " +
	"max-cll=0,0 / min-luma=0 / max-luma=1023 / log2-max-poc-lsb=8 / vui-timing-info / vui-hrd-info / slices=1 / " +
	"no-opt-qp-pps / no-opt-ref-list-length-pps / no-multi-pass-opt-rps / scenecut-bias=0.05 / " +
	"no-opt-cu-delta-qp / no-aq-motion / no-hdr / no-hdr-opt / no-dhdr10-opt / no-idr-recovery-sei / " +
	"analysis-reuse-level=5 / scale-factor=0 / refine-intra=0 / refine-inter=0 / refine-mv=0 / no-limit-sao / " +
	"ctu-info=0 / no-lowpass-dct / refine-mv-type=0 / copy-pic=1"

func TestExactProfileScoresOne(t *testing.T) {
	engine := match.New()
	for _, profile := range presets.All() {
		results, err := engine.Match(profile.Params)
		if err != nil {
			t.Fatalf("%s: %v", profile.Name, err)
		}
		best := results[0]
		if best.Preset != profile.Name {
			t.Fatalf("%s: ranked %s first", profile.Name, best.Preset)
		}
		if best.Score != 1.0 {
			t.Fatalf("%s: score %v, want 1.0", profile.Name, best.Score)
		}
		if len(best.Conflicting) != 0 || len(best.Absent) != 0 {
			t.Fatalf("%s: conflicting=%v absent=%v, want none",
				profile.Name, best.Conflicting, best.Absent)
		}
		if results[1].Score >= 1.0 {
			t.Fatalf("%s: runner-up %s also scored %v", profile.Name,
				results[1].Preset, results[1].Score)
		}
	}
}

func TestDeviationLowersScore(t *testing.T) {
	medium, err := presets.For("medium")
	if err != nil {
		t.Fatal(err)
	}
	input := medium.Params.Clone()
	input["rd"] = params.Value{Name: "rd", Kind: params.KindInt, Int: 6}

	results, err := match.New().Match(input)
	if err != nil {
		t.Fatal(err)
	}
	best := results[0]
	if best.Preset != "medium" {
		t.Fatalf("ranked %s first, want medium", best.Preset)
	}
	if best.Score >= 1.0 {
		t.Fatalf("score %v, want < 1.0 after one conflicting field", best.Score)
	}
	if len(best.Conflicting) != 1 || best.Conflicting[0] != "rd" {
		t.Fatalf("conflicting = %v, want [rd]", best.Conflicting)
	}

	total := len(medium.Params)
	want := float64(total-1) / float64(total)
	if math.Abs(best.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", best.Score, want)
	}
}

func TestAbsentParametersAreNeutral(t *testing.T) {
	input := params.Parse("bframes=4 limit-refs=1 rd=3 lookahead-slices=8").Set

	results, err := match.New().Match(input)
	if err != nil {
		t.Fatal(err)
	}
	best := results[0]
	if best.Preset != "medium" || best.Score != 1.0 {
		t.Fatalf("best = %s (%v), want medium at 1.0", best.Preset, best.Score)
	}
	if len(best.Matched) != 4 {
		t.Fatalf("matched = %v, want the 4 provided fields", best.Matched)
	}
	if got := len(best.Absent); got != len(presets.All()[0].Params)-4 {
		t.Fatalf("absent count = %d, want every unprovided profile field", got)
	}
}

func TestConflictingFieldStillRanksNearestPreset(t *testing.T) {
	input := params.Parse("bframes=4 limit-refs=1 rd=6 lookahead-slices=8").Set

	results, err := match.New().Match(input)
	if err != nil {
		t.Fatal(err)
	}
	best := results[0]
	if best.Preset != "medium" {
		t.Fatalf("best = %s, want medium", best.Preset)
	}
	if math.Abs(best.Score-0.75) > 1e-9 {
		t.Fatalf("score = %v, want 0.75", best.Score)
	}
	if len(best.Conflicting) != 1 || best.Conflicting[0] != "rd" {
		t.Fatalf("conflicting = %v, want [rd]", best.Conflicting)
	}
}

func TestRemovingSharedParameterPreservesRanking(t *testing.T) {
	engine := match.New()
	input := params.Parse("bframes=8 subme=4 merange=57").Set

	before, err := engine.Match(input)
	if err != nil {
		t.Fatal(err)
	}

	trimmed := input.Clone()
	delete(trimmed, "merange")
	after, err := engine.Match(trimmed)
	if err != nil {
		t.Fatal(err)
	}

	// merange=57 is canonical for every preset except placebo, so dropping
	// it may only move placebo; the order of the rest must not change.
	if got, want := orderWithout(after, "placebo"), orderWithout(before, "placebo"); !reflect.DeepEqual(got, want) {
		t.Fatalf("ranking changed after removing a shared parameter:\nbefore %v\nafter  %v", want, got)
	}
}

func orderWithout(results []match.Result, excluded string) []string {
	names := make([]string, 0, len(results))
	for _, result := range results {
		if result.Preset != excluded {
			names = append(names, result.Preset)
		}
	}
	return names
}

func TestTiesKeepCanonicalOrder(t *testing.T) {
	// ctu=32 is shared by exactly ultrafast and superfast.
	input := params.Parse("ctu=32").Set

	results, err := match.New().Match(input)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Preset != "ultrafast" || results[1].Preset != "superfast" {
		t.Fatalf("tie order = %s, %s; want ultrafast, superfast",
			results[0].Preset, results[1].Preset)
	}
	if results[0].Score != 1.0 || results[1].Score != 1.0 {
		t.Fatalf("tied scores = %v, %v; want both 1.0", results[0].Score, results[1].Score)
	}
	if results[2].Score != 0 {
		t.Fatalf("third place scored %v, want 0", results[2].Score)
	}
}

func TestEmptyInputRejected(t *testing.T) {
	_, err := match.New().Match(params.Set{})
	if !errors.Is(err, match.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestIndeterminateWhenNothingOverlaps(t *testing.T) {
	profiles := []presets.Profile{
		{Name: "alpha", Params: params.Parse("ctu=32").Set},
		{Name: "beta", Params: params.Parse("ctu=64").Set},
	}
	input := params.Parse("bframes=8").Set

	results, err := match.NewWithProfiles(profiles).Match(input)
	if err != nil {
		t.Fatal(err)
	}
	for _, result := range results {
		if !result.Indeterminate {
			t.Fatalf("%s: expected indeterminate, got %+v", result.Preset, result)
		}
		if result.Score != 0 {
			t.Fatalf("%s: indeterminate score = %v, want 0", result.Preset, result.Score)
		}
	}
}

func TestMinimalSuperfastFingerprint(t *testing.T) {
	// min-cu-size=8 rules out ultrafast; ctu=32 rules out everything slower.
	input := params.Parse("ctu=32 min-cu-size=8").Set

	results, err := match.New().Match(input)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Preset != "superfast" || results[0].Score != 1.0 {
		t.Fatalf("best = %s (%v), want superfast at 1.0", results[0].Preset, results[0].Score)
	}
	if results[1].Score >= 1.0 {
		t.Fatalf("runner-up %s also scored %v", results[1].Preset, results[1].Score)
	}
}

func TestMediainfoDumpMatchesVeryslow(t *testing.T) {
	parsed := params.Parse(libraryDump)

	results, err := match.New().Match(parsed.Set)
	if err != nil {
		t.Fatal(err)
	}
	best := results[0]
	if best.Preset != "veryslow" {
		t.Fatalf("best = %s (%v), want veryslow", best.Preset, best.Score)
	}
	if best.Score != 1.0 {
		t.Fatalf("score = %v, want 1.0: conflicting=%v", best.Score, best.Conflicting)
	}
	if results[1].Score >= best.Score {
		t.Fatalf("runner-up %s tied at %v", results[1].Preset, results[1].Score)
	}
}
