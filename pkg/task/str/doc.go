// Package str holds small string-building helpers.
//
// - Concat: nil-eliding concatenation of arbitrary values
package str
