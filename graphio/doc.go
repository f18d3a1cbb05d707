// Package graphio reads and writes the plain-text artifacts around a solve.
//
// Edge-list graph format (input):
//
//	1000                 ← node count n
//	i j d                ← header line, ignored
//	1 2 313.7            ← one undirected edge per line, 1-based indices
//	1 3 87.0
//	...
//
// Fields are separated by any run of whitespace. Blank lines are skipped.
// A pair listed twice keeps the distance of its last occurrence. Pairs that
// are never listed keep the cost 0; WithRequireComplete turns that into an
// error and Stats.MissingEdges reports it otherwise.
//
// Tour format (output): the 1-based node sequence, comma separated, with the
// start node repeated at the end to close the cycle:
//
//	3,1,4,2,3
//
// All errors caused by file contents wrap ErrMalformedGraph (or ErrMalformedTour)
// and carry the offending line number.
package graphio
