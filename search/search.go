// Package search drives a Problem to a final state with a single traversal
// template parameterized by frontier discipline. BFS and DFS are the two
// entry points; they differ only in pop order.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
)

// walker encapsulates mutable search state for one invocation.
type walker[S any] struct {
	problem  Problem[S]
	frontier frontier.Frontier[S]
	opts     Options[S]
	ctx      context.Context
	res      Result[S]
}

// BFS runs the search template with a FIFO frontier. With uniform step
// cost the first final state found has minimum depth.
func BFS[S any](p Problem[S], opts ...Option[S]) (Result[S], error) {
	return Search(p, frontier.FIFO, opts...)
}

// DFS runs the search template with a LIFO frontier: the most recently
// pushed successor is expanded next.
func DFS[S any](p Problem[S], opts ...Option[S]) (Result[S], error) {
	return Search(p, frontier.LIFO, opts...)
}

// Search runs the template on a fresh frontier of discipline d.
func Search[S any](p Problem[S], d frontier.Discipline, opts ...Option[S]) (Result[S], error) {
	f, err := frontier.New[S](d)
	if err != nil {
		return Result[S]{Discipline: d}, fmt.Errorf("search: %w", err)
	}

	return Run(p, f, opts...)
}

// Run drives p to a final state using the supplied, empty frontier.
//
// The start state is pushed, then until the frontier is empty: the visit
// counter is incremented, the next state popped, and either returned (if
// final) or replaced by its successors, pushed in the order p returns them.
// An exhausted frontier is not an error: Result.Found is false.
//
// Returns ErrProblemNil, ErrFrontierNil, ErrFrontierNotEmpty or
// ErrOptionViolation for invalid input, ErrBudgetExceeded when WithMaxVisits
// stops the search, ctx.Err() on cancellation, or a wrapped OnVisit error.
// Panics raised by p propagate unchanged.
//
// A typed nil p (a nil pointer stored in the interface) passes the nil
// check; whatever its methods do with the nil receiver is the caller's bug.
//
// If p's state graph is infinite and holds no reachable final state, Run
// does not return unless a budget or context bounds it.
func Run[S any](p Problem[S], f frontier.Frontier[S], opts ...Option[S]) (Result[S], error) {
	if p == nil {
		return Result[S]{}, ErrProblemNil
	}
	if f == nil {
		return Result[S]{}, ErrFrontierNil
	}
	if !f.IsEmpty() {
		return Result[S]{Discipline: f.Discipline()}, ErrFrontierNotEmpty
	}

	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[S]{Discipline: f.Discipline()}, o.err
	}

	w := &walker[S]{
		problem:  p,
		frontier: f,
		opts:     o,
		ctx:      o.Ctx,
		res:      Result[S]{Discipline: f.Discipline()},
	}
	o.Logger.Debug("search started", "discipline", f.Discipline().String(), "max_visits", o.MaxVisits)

	w.push(p.StartState())
	err := w.loop()
	if err != nil {
		o.Logger.Debug("search aborted", "visited", w.res.Visited, "err", err)
		return w.res, err
	}

	o.Logger.Debug("search finished",
		"outcome", w.res.Outcome(),
		"visited", w.res.Visited,
		"pending", w.frontier.Len(),
	)
	o.OnDone(w.res)

	return w.res, nil
}

// loop pops until a final state is found, the frontier is exhausted,
// or the search is aborted.
func (w *walker[S]) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxVisits > 0 && w.res.Visited >= w.opts.MaxVisits {
			return fmt.Errorf("%w: %d states visited, %d pending",
				ErrBudgetExceeded, w.res.Visited, w.frontier.Len())
		}

		w.res.Visited++
		s, err := w.frontier.Pop()
		if err != nil {
			return fmt.Errorf("search: pop at visit %d: %w", w.res.Visited, err)
		}
		if err = w.opts.OnVisit(s, w.res.Visited); err != nil {
			return fmt.Errorf("search: OnVisit error at visit %d: %w", w.res.Visited, err)
		}

		if w.problem.IsFinal(s) {
			w.res.State = s
			w.res.Found = true
			return nil
		}
		for _, next := range w.problem.Successors(s) {
			w.push(next)
		}
	}

	return nil
}

// push calls OnPush and adds s to the frontier.
func (w *walker[S]) push(s S) {
	w.opts.OnPush(s)
	w.frontier.Push(s)
}
