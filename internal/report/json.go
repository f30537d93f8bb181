package report

import (
	"encoding/json"
	"io"
)

// JSON renders the invocation as an indented machine-readable envelope.
type JSON struct{}

type jsonWarning struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type jsonResult struct {
	Preset        string   `json:"preset"`
	Score         float64  `json:"score"`
	Matched       []string `json:"matched"`
	Conflicting   []string `json:"conflicting"`
	Absent        []string `json:"absent"`
	Indeterminate bool     `json:"indeterminate,omitempty"`
}

type jsonEnvelope struct {
	RunID      string            `json:"run_id,omitempty"`
	Parameters map[string]string `json:"parameters"`
	Results    []jsonResult      `json:"results"`
	Unknown    []string          `json:"unknown_fields,omitempty"`
	Warnings   []jsonWarning     `json:"warnings,omitempty"`
}

func (JSON) Render(w io.Writer, in Input) error {
	envelope := jsonEnvelope{
		RunID:      in.RunID,
		Parameters: map[string]string{},
		Results:    make([]jsonResult, 0, len(in.Results)),
		Unknown:    in.Unknown,
	}
	for name, value := range in.Params {
		envelope.Parameters[name] = value.String()
	}
	for _, result := range in.Results {
		envelope.Results = append(envelope.Results, jsonResult{
			Preset:        result.Preset,
			Score:         result.Score,
			Matched:       emptyIfNil(result.Matched),
			Conflicting:   emptyIfNil(result.Conflicting),
			Absent:        emptyIfNil(result.Absent),
			Indeterminate: result.Indeterminate,
		})
	}
	for _, warning := range in.Warnings {
		envelope.Warnings = append(envelope.Warnings, jsonWarning{
			Key:    warning.Key,
			Value:  warning.Value,
			Reason: warning.Reason,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

func emptyIfNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
