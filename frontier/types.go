// Package frontier defines the pending-state container driven by the search
// engine, its two pop disciplines, and sentinel errors.
package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmpty is returned by Pop and Peek when no elements remain.
	ErrEmpty = errors.New("frontier: empty")

	// ErrUnknownDiscipline is returned for an unsupported Discipline value or name.
	ErrUnknownDiscipline = errors.New("frontier: unknown discipline")
)

// Discipline selects which pending element Pop returns.
type Discipline int

const (
	// FIFO pops the earliest-pushed element still present (breadth-first).
	FIFO Discipline = iota
	// LIFO pops the most recently pushed element (depth-first).
	LIFO
)

// String returns "fifo" or "lifo".
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("discipline(%d)", int(d))
	}
}

// Valid reports whether d is one of FIFO or LIFO.
func (d Discipline) Valid() bool { return d == FIFO || d == LIFO }

// ParseDiscipline maps a user-facing name to a Discipline.
// Accepted (case-insensitive): fifo, bfs, breadth-first, lifo, dfs, depth-first.
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo", "bfs", "breadth-first":
		return FIFO, nil
	case "lifo", "dfs", "depth-first":
		return LIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDiscipline, name)
	}
}

// Frontier is an unbounded push/pop container of pending states.
// Insertion and removal order is fully determined by Discipline;
// no reordering or priority is applied.
type Frontier[S any] interface {
	// Push adds s. It always succeeds.
	Push(s S)
	// Pop removes and returns the next element per Discipline,
	// or ErrEmpty when nothing remains.
	Pop() (S, error)
	// Peek returns what Pop would return without removing it.
	Peek() (S, error)
	// Len returns the number of pending elements.
	Len() int
	// IsEmpty reports whether Len() == 0. It has no side effects.
	IsEmpty() bool
	// Discipline reports the pop order in effect.
	Discipline() Discipline
}
