// Package obj provides shallow, allocation-light helpers for generic
// map-shaped values.
//
// - Pick/PickAll: whitelist-copy a map or an ordered slice of maps
// - Copy: single entry point dispatching on the input shape
// - PathValue: dotted-path lookup over nested maps
//
// Copies are shallow: output entries share value references with the
// source. Callers that pass no keys get empty output objects.
package obj
