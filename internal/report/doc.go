// Package report renders ranked match results for people and machines.
//
// It consumes the structured output of the parser and matching engine
// without re-deriving any score: ranked results, parse warnings, and
// unrecognized input fields arrive ready to present. The console renderer
// follows the CLI's color conventions (auto-detected TTY, overridable);
// the JSON renderer emits a stable machine-readable envelope.
package report
