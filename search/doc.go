// Package search provides a generic, uninformed state-space search over any
// Problem: a start state, a goal test and a successor function.
//
// What
//
//   - One template, Run, drives the problem. It is parameterized only by the
//     frontier discipline, so breadth-first and depth-first search share
//     identical termination, counting and successor-expansion semantics.
//   - BFS uses a FIFO frontier, DFS a LIFO frontier.
//   - The engine keeps no visited set. Cycle and revisit avoidance belong to
//     the problem (a word ladder refuses words already on the ladder, the
//     cube puzzle refuses occupied cells).
//   - Result reports the final state, whether one was found, and how many
//     states were popped. An exhausted frontier is a normal outcome, not an
//     error.
//
// Algorithm
//
//	push(start)
//	for frontier not empty:
//	    visited++
//	    s := pop()
//	    if final(s): return s
//	    for each succ in successors(s): push(succ)
//	return nothing
//
// States
//
//	The engine is either running (frontier non-empty, no goal yet) or
//	terminal (goal found or frontier exhausted). There is no pause/resume.
//
// Termination
//
//	On an infinite state graph without a reachable goal the search never
//	returns. That is accepted behavior; callers that need a bound pass
//	WithMaxVisits or a context with a deadline.
//
// Usage
//
//	res, err := search.BFS[state.Path[string]](ladder)
//	if err != nil {
//	    // ErrProblemNil, ErrOptionViolation, ErrBudgetExceeded,
//	    // context errors, or a wrapped OnVisit error
//	}
//	if res.Found {
//	    fmt.Println(res.State, res.Visited)
//	}
//
// Options
//
//   - WithContext(ctx):      cancellation, checked once per visit.
//   - WithMaxVisits(n):      visit budget (>0), 0 for none.
//   - WithOnPush(fn):        hook before each push.
//   - WithOnVisit(fn):       hook after each pop; returning error aborts.
//   - WithOnDone(fn):        hook on the terminal transition.
//   - WithLogger(l):         debug records for start and finish.
//
// Function-backed problems
//
//	NewFuncProblem builds a Problem from three functions and fails at
//	construction with ErrIncompleteProblem when any is missing.
//
// Panics raised by a problem's methods are not recovered.
package search
