package frontier

import (
	"fmt"

	"github.com/gammazero/deque"
)

// ring is a Frontier over a growable ring-buffer deque. Elements are always
// pushed at the back; the discipline decides whether Pop takes from the
// front or the back.
type ring[S any] struct {
	q          deque.Deque[S]
	discipline Discipline
}

// New returns an empty frontier with the given discipline.
// It fails with ErrUnknownDiscipline for any value other than FIFO or LIFO.
func New[S any](d Discipline) (Frontier[S], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDiscipline, int(d))
	}

	return &ring[S]{discipline: d}, nil
}

// MustNew is like New but panics on an invalid discipline.
func MustNew[S any](d Discipline) Frontier[S] {
	f, err := New[S](d)
	if err != nil {
		panic(err)
	}

	return f
}

// NewFIFO returns an empty breadth-first frontier.
func NewFIFO[S any]() Frontier[S] { return MustNew[S](FIFO) }

// NewLIFO returns an empty depth-first frontier.
func NewLIFO[S any]() Frontier[S] { return MustNew[S](LIFO) }

func (r *ring[S]) Push(s S) { r.q.PushBack(s) }

// Pop guards the empty case itself: the underlying deque panics on it.
func (r *ring[S]) Pop() (S, error) {
	if r.q.Len() == 0 {
		var zero S
		return zero, ErrEmpty
	}
	if r.discipline == FIFO {
		return r.q.PopFront(), nil
	}

	return r.q.PopBack(), nil
}

func (r *ring[S]) Peek() (S, error) {
	if r.q.Len() == 0 {
		var zero S
		return zero, ErrEmpty
	}
	if r.discipline == FIFO {
		return r.q.Front(), nil
	}

	return r.q.Back(), nil
}

func (r *ring[S]) Len() int { return r.q.Len() }

func (r *ring[S]) IsEmpty() bool { return r.q.Len() == 0 }

func (r *ring[S]) Discipline() Discipline { return r.discipline }
