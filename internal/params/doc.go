// Package params defines the x265 tunable settings the preset table is
// published in terms of, and parses free-form encoder metadata into
// normalized, typed parameter sets.
//
// The package owns the canonical spec registry (name, value domain,
// matching weight) and the alias table mapping external spellings such as
// rdLevel or tu-intra-depth onto canonical names. Parsing is tolerant by
// contract: unrecognized fields and uncoercible values are collected and
// reported, never fatal, so noisy mediainfo dumps can be fed in whole.
package params
