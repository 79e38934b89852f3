// Package statespace is a small toolkit for uninformed state-space search.
//
// A problem supplies a start state, a goal test and a successor function;
// one engine explores it breadth-first or depth-first, depending only on the
// discipline of the frontier it drives.
//
// Layout:
//
//	state/            immutable token paths used as search states
//	frontier/         FIFO/LIFO pending-state containers
//	search/           Problem contract, the search template, BFS and DFS
//	wordladder/       word-ladder puzzle over a dictionary
//	cubepath/         folding a segment chain into a cube
//	metrics/          Prometheus hooks for searches
//	cmd/statesearch/  command line front end
//
// See the package docs and examples/ for usage.
package statespace
