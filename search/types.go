// Package search provides tunable options, result and error definitions
// for the generic state-space search template.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/statespace/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrProblemNil is returned if a nil Problem is passed.
	ErrProblemNil = errors.New("search: problem is nil")

	// ErrFrontierNil is returned if Run receives a nil frontier.
	ErrFrontierNil = errors.New("search: frontier is nil")

	// ErrFrontierNotEmpty is returned if Run receives a frontier that already
	// holds pending states.
	ErrFrontierNotEmpty = errors.New("search: frontier must start empty")

	// ErrIncompleteProblem is returned when a function-backed problem is
	// missing one of its three required operations.
	ErrIncompleteProblem = errors.New("search: problem is missing a required operation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when WithMaxVisits stops a search before
	// a final state was found or the frontier was exhausted.
	ErrBudgetExceeded = errors.New("search: visit budget exceeded")
)

// Problem is the capability contract every search problem implements.
// Implementations hold only fixed configuration; the engine owns all
// traversal bookkeeping.
type Problem[S any] interface {
	// StartState returns the initial state. Called exactly once per search.
	StartState() S

	// IsFinal reports whether s is a goal state. It must not mutate the
	// problem or s.
	IsFinal(s S) bool

	// Successors returns the states reachable from s in one step, in the
	// order they should be pushed. It returns an empty slice, never fails,
	// when s has no valid extension.
	Successors(s S) []S
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option[S any] func(*Options[S])

// Options holds parameters and callbacks to customize a search.
// None of them changes pop order or adds deduplication.
type Options[S any] struct {
	// Ctx allows cancellation and deadlines. Checked once per visit.
	Ctx context.Context

	// MaxVisits, if > 0, aborts with ErrBudgetExceeded once that many
	// states were popped without reaching a terminal outcome.
	// A value of 0 disables the budget.
	MaxVisits int

	// OnPush is called for every state right before it enters the frontier,
	// including the start state.
	OnPush func(s S)

	// OnVisit is called after a state is popped and counted; visited is the
	// counter value including this state. Returning an error aborts the search.
	OnVisit func(s S, visited int) error

	// OnDone is called once when the search reaches its terminal state,
	// either by finding a final state or by exhausting the frontier.
	OnDone func(r Result[S])

	// Logger receives debug records for search start and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no visit budget
//   - no-op hooks
//   - a logger that discards everything.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		MaxVisits: 0,
		OnPush:    func(S) {},
		OnVisit:   func(S, int) error { return nil },
		OnDone:    func(Result[S]) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S any](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxVisits bounds the number of visited states.
//
//	n > 0: stop with ErrBudgetExceeded after n visits
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits[S any](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithOnPush registers a callback to run before each push.
func WithOnPush[S any](fn func(s S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the search.
func WithOnVisit[S any](fn func(s S, visited int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDone registers a callback to run once on the terminal transition.
func WithOnDone[S any](fn func(r Result[S])) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDone = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger[S any](l *slog.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - State: the final state, meaningful only when Found is true.
//   - Found: false means the frontier was exhausted without a goal.
//   - Visited: number of states popped, including the final one.
//   - Discipline: the frontier discipline that produced this result.
type Result[S any] struct {
	State      S
	Found      bool
	Visited    int
	Discipline frontier.Discipline
}

// Outcome returns "found" or "exhausted".
func (r Result[S]) Outcome() string {
	if r.Found {
		return "found"
	}

	return "exhausted"
}
