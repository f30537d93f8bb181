// Package presets holds the canonical x265 preset reference table: one
// immutable parameter profile per named preset, built once from compiled-in
// data so lookups behave identically in every deployment.
package presets
