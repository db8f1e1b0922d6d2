// Package alias implements Vose's alias method for O(1) sampling from
// an arbitrary discrete distribution.
//
// Given a probability vector w of length n (non-negative, summing to 1
// within tolerance), New builds a Table in O(n): each column c carries a
// retention probability prob[c] and an alias column alias[c]. Sampling
// draws a uniform column and a uniform real, and
//
//	Pick → c        if r < prob[c]
//	Pick → alias[c] otherwise
//
// which reproduces w exactly. The solver builds one table per vertex
// from that vertex's random-walk transition row; tables are immutable
// after construction and safe to share read-only across trials.
//
// Construction fails fast (ErrNotNormalized) when the input does not
// sum to 1 within the configured epsilon: silently renormalizing would
// mask a bug in whatever produced the distribution.
package alias
