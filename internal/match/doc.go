// Package match scores a parsed parameter set against every canonical
// preset profile and produces a ranked, explainable result list.
//
// Scoring only considers parameters present in both the input and a
// profile: matched weight over total considered weight. Parameters the
// input does not mention contribute neither credit nor penalty, so partial
// metadata dumps rank fairly. A set that shares no names with any profile
// is flagged indeterminate rather than scored as a confident zero.
package match
