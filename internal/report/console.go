package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"presetsleuth/internal/match"
	"presetsleuth/internal/presets"
)

const defaultTopCandidates = 3

// Console renders a human-readable report. Verbose adds a full ranking
// table and a side-by-side comparison of the input against the closest
// candidates; a second verbosity level widens the comparison to every
// parameter the table defines.
type Console struct {
	Color         ColorMode
	Verbose       int
	TopCandidates int
}

func (c Console) Render(w io.Writer, in Input) error {
	colorize := c.Color.colorize(w)

	if len(in.Results) == 0 {
		fmt.Fprintln(w, "No candidates scored")
		return nil
	}

	if in.Results[0].Indeterminate {
		fmt.Fprintln(w, "Unable to determine preset: input shares no parameters with the reference table")
		c.renderFooter(w, in)
		return nil
	}

	best := in.Results[0]
	tied := tiedLeaders(in.Results)
	if len(tied) > 1 {
		fmt.Fprintf(w, "Best match (tie): %s (score %s)\n",
			paint(strings.Join(tied, ", "), ansiBold, colorize), formatScore(best.Score))
	} else {
		fmt.Fprintf(w, "Best match: %s (score %s)\n",
			paint(best.Preset, ansiBold, colorize), formatScore(best.Score))
	}

	fmt.Fprintf(w, "  Matched (%d): %s\n", len(best.Matched), nameList(best.Matched))
	conflicts := nameList(best.Conflicting)
	if len(best.Conflicting) > 0 {
		conflicts = paint(conflicts, ansiRed, colorize)
	}
	fmt.Fprintf(w, "  Conflicting (%d): %s\n", len(best.Conflicting), conflicts)
	fmt.Fprintf(w, "  Absent from input (%d): %s\n", len(best.Absent), nameList(best.Absent))

	if c.Verbose >= 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, c.renderRanking(in.Results))
		fmt.Fprintln(w)
		fmt.Fprintln(w, c.renderComparison(in, colorize))
	}

	c.renderFooter(w, in)
	return nil
}

func (c Console) renderFooter(w io.Writer, in Input) {
	for _, warning := range in.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if len(in.Unknown) == 0 {
		return
	}
	if c.Verbose >= 1 {
		fmt.Fprintf(w, "Unrecognized input fields (%d): %s\n", len(in.Unknown), strings.Join(in.Unknown, ", "))
	} else {
		fmt.Fprintf(w, "Unrecognized input fields: %d (rerun with -v to list)\n", len(in.Unknown))
	}
}

func (c Console) renderRanking(results []match.Result) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			result.Preset,
			formatScore(result.Score),
			fmt.Sprintf("%d", len(result.Matched)),
			fmt.Sprintf("%d", len(result.Conflicting)),
		})
	}
	return Table(
		[]string{"Preset", "Score", "Matched", "Conflicting"},
		rows,
		[]Alignment{AlignLeft, AlignRight, AlignRight, AlignRight},
	)
}

// renderComparison shows the input next to the closest candidate profiles,
// one row per parameter, matching values in green when colorized.
func (c Console) renderComparison(in Input, colorize bool) string {
	top := c.TopCandidates
	if top <= 0 {
		top = defaultTopCandidates
	}
	if top > len(in.Results) {
		top = len(in.Results)
	}
	candidates := in.Results[:top]

	profileParams := make([]map[string]string, 0, top)
	headers := []string{"Parameter", "Input"}
	for _, candidate := range candidates {
		headers = append(headers, candidate.Preset)
		values := map[string]string{}
		if profile, err := presets.For(candidate.Preset); err == nil {
			for name, value := range profile.Params {
				values[name] = value.String()
			}
		}
		profileParams = append(profileParams, values)
	}

	rows := make([][]string, 0, len(in.Params))
	for _, name := range c.comparisonRows(in, profileParams) {
		inputValue := "-"
		if value, ok := in.Params[name]; ok {
			inputValue = value.String()
		}
		row := []string{name, paint(inputValue, ansiBold, colorize)}
		for _, values := range profileParams {
			cell, ok := values[name]
			if !ok {
				cell = "-"
			}
			if ok && cell == inputValue {
				cell = paint(cell, ansiGreen, colorize)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	aligns := make([]Alignment, len(headers))
	return Table(headers, rows, aligns)
}

// comparisonRows picks which parameters to show: the input's recognized
// parameters by default, every table parameter at the second verbosity
// level.
func (c Console) comparisonRows(in Input, profileParams []map[string]string) []string {
	if c.Verbose >= 2 {
		union := map[string]struct{}{}
		for name := range in.Params {
			union[name] = struct{}{}
		}
		for _, values := range profileParams {
			for name := range values {
				union[name] = struct{}{}
			}
		}
		names := make([]string, 0, len(union))
		for name := range union {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	return in.Params.Names()
}

func tiedLeaders(results []match.Result) []string {
	if len(results) == 0 {
		return nil
	}
	leaders := []string{results[0].Preset}
	for _, result := range results[1:] {
		if result.Score != results[0].Score {
			break
		}
		leaders = append(leaders, result.Preset)
	}
	return leaders
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
