// Package config loads, normalizes, and validates presetsleuth
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the conventional locations. The
// Config type centralizes the presentation and logging knobs the CLI
// exposes, so commands receive sanitized values and clear validation
// errors from a single pass.
package config
