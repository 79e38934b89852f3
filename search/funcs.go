package search

import (
	"fmt"
	"strings"
)

// Funcs assembles a Problem from plain functions. All three fields are
// required; NewFuncProblem rejects a Funcs with any of them nil.
type Funcs[S any] struct {
	Start      func() S
	IsFinal    func(s S) bool
	Successors func(s S) []S
}

// funcProblem adapts a validated Funcs to the Problem interface.
type funcProblem[S any] struct {
	fns Funcs[S]
}

// NewFuncProblem validates fns and returns it as a Problem.
// A missing operation fails here, at construction, with ErrIncompleteProblem
// naming every absent field, never at first use.
func NewFuncProblem[S any](fns Funcs[S]) (Problem[S], error) {
	var missing []string
	if fns.Start == nil {
		missing = append(missing, "Start")
	}
	if fns.IsFinal == nil {
		missing = append(missing, "IsFinal")
	}
	if fns.Successors == nil {
		missing = append(missing, "Successors")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteProblem, strings.Join(missing, ", "))
	}

	return &funcProblem[S]{fns: fns}, nil
}

func (p *funcProblem[S]) StartState() S { return p.fns.Start() }

func (p *funcProblem[S]) IsFinal(s S) bool { return p.fns.IsFinal(s) }

func (p *funcProblem[S]) Successors(s S) []S { return p.fns.Successors(s) }
