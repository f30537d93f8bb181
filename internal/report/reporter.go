package report

import (
	"fmt"
	"io"
	"strings"

	"presetsleuth/internal/match"
	"presetsleuth/internal/params"
)

// Input bundles everything a renderer needs for one invocation.
type Input struct {
	// Results is the engine's ranked output, best first.
	Results []match.Result
	// Params is the parsed input set, used for side-by-side comparison.
	Params params.Set
	// Unknown lists input fields outside the reference table, sorted.
	Unknown []string
	// Warnings collects per-field parse problems.
	Warnings []params.Warning
	// RunID correlates the report with log output for this invocation.
	RunID string
}

// Reporter renders one invocation's results to a writer.
type Reporter interface {
	Render(w io.Writer, in Input) error
}

// ColorMode controls ANSI color in console output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a user-supplied mode name onto a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unsupported color mode %q (use auto, always, or never)", value)
	}
}
