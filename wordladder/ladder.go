// Package wordladder formulates the word-ladder puzzle as a search.Problem:
// turn a start word into a goal word one letter at a time, every
// intermediate word taken from a dictionary.
package wordladder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/state"
)

// Sentinel errors for ladder construction and validation.
var (
	// ErrDictionaryNil is returned when no dictionary is supplied.
	ErrDictionaryNil = errors.New("wordladder: dictionary is nil")
	// ErrEmptyWord is returned when the start or goal word is blank.
	ErrEmptyWord = errors.New("wordladder: start and goal words must be non-empty")
	// ErrLengthMismatch is returned when start and goal differ in length.
	ErrLengthMismatch = errors.New("wordladder: start and goal must have the same length")
	// ErrNotInDictionary is returned when a required word is not a valid word.
	ErrNotInDictionary = errors.New("wordladder: word not in dictionary")
	// ErrInvalidLadder is returned by Validate for a malformed ladder.
	ErrInvalidLadder = errors.New("wordladder: invalid ladder")
)

// alphabet is the substitution alphabet, in the order successors are generated.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Ladder is the search problem. A state is the sequence of ladder words so far;
// the start state is the singleton (start).
type Ladder struct {
	dict  *Dictionary
	start state.Path[string]
	goal  string
}

var _ search.Problem[state.Path[string]] = (*Ladder)(nil)

// New builds a ladder from start to goal over dict. The goal must be a
// dictionary word; the start need not be.
func New(dict *Dictionary, start, goal string) (*Ladder, error) {
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	start = strings.ToLower(strings.TrimSpace(start))
	goal = strings.ToLower(strings.TrimSpace(goal))
	if start == "" || goal == "" {
		return nil, ErrEmptyWord
	}
	if len(start) != len(goal) {
		return nil, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, start, len(start), goal, len(goal))
	}
	if !dict.Contains(goal) {
		return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, goal)
	}

	return &Ladder{dict: dict, start: state.NewPath(start), goal: goal}, nil
}

// StartState returns (start).
func (l *Ladder) StartState() state.Path[string] { return l.start }

// IsFinal reports whether the last word of s is the goal word.
func (l *Ladder) IsFinal(s state.Path[string]) bool {
	last, ok := s.Last()
	return ok && last == l.goal
}

// Successors extends s by every dictionary word that differs from its last
// word in exactly one letter and is not already on the ladder. Candidates are
// generated position by position, left to right, letters a through z.
func (l *Ladder) Successors(s state.Path[string]) []state.Path[string] {
	prev, ok := s.Last()
	if !ok {
		return nil
	}

	var out []state.Path[string]
	buf := []byte(prev)
	for i := range buf {
		orig := buf[i]
		for j := 0; j < len(alphabet); j++ {
			c := alphabet[j]
			if c == orig {
				continue
			}
			buf[i] = c
			cand := string(buf)
			if l.dict.Contains(cand) && !s.Contains(cand) {
				out = append(out, s.Append(cand))
			}
		}
		buf[i] = orig
	}

	return out
}

// Goal returns the goal word.
func (l *Ladder) Goal() string { return l.goal }

// Solve runs breadth-first search for a shortest ladder from start to goal.
// The returned Result has Found == false when no ladder exists.
func Solve(dict *Dictionary, start, goal string, opts ...search.Option[state.Path[string]]) (search.Result[state.Path[string]], error) {
	l, err := New(dict, start, goal)
	if err != nil {
		return search.Result[state.Path[string]]{}, err
	}

	return search.BFS[state.Path[string]](l, opts...)
}

// Validate checks that every consecutive pair of words differs in exactly one
// position and that every word after the first is in dict.
func Validate(words []string, dict *Dictionary) error {
	if dict == nil {
		return ErrDictionaryNil
	}
	if len(words) == 0 {
		return fmt.Errorf("%w: empty ladder", ErrInvalidLadder)
	}
	for i := 1; i < len(words); i++ {
		if !dict.Contains(words[i]) {
			return fmt.Errorf("%w: %q at step %d: %v", ErrInvalidLadder, words[i], i, ErrNotInDictionary)
		}
		if d := distance(words[i-1], words[i]); d != 1 {
			return fmt.Errorf("%w: %q -> %q differ in %d positions", ErrInvalidLadder, words[i-1], words[i], d)
		}
	}

	return nil
}

// distance counts differing positions, or -1 when lengths differ.
func distance(a, b string) int {
	if len(a) != len(b) {
		return -1
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}
