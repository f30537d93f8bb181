// Package logging assembles the structured slog loggers used across
// presetsleuth commands.
//
// It owns the console and JSON handler plumbing and exposes attr helpers
// plus a no-op logger for tests, so every command emits diagnostics with
// the same shape. Prefer these constructors over hand-rolled slog setup.
package logging
