// Package state provides Path, an immutable sequence of discrete tokens used
// as the state type of the search problems in this module.
//
// What
//
//   - A Path is a value: every Append returns a new Path and leaves the
//     receiver untouched. Appends share structure with their parent through a
//     persistent list, so long search frontiers do not copy whole prefixes.
//   - Two paths holding the same tokens in the same order are Equal and hash
//     identically, regardless of how they were built.
//   - PathHasher plugs paths into immutable.Map when a problem wants to track
//     states by value.
//
// Usage
//
//	p := state.NewPath("train")
//	q := p.Append("brain")   // p is still ("train")
//	last, _ := q.Last()      // "brain"
//	q.Equal(state.NewPath("train", "brain")) // true
package state
