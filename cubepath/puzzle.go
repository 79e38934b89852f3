// Package cubepath formulates the block-chain cube puzzle as a search.Problem.
//
// A chain of rigid segments with fixed lengths (Intervals) must be folded,
// turning 90 degrees at every joint, so that it fills a Width×Width×Width
// cube, entering every unit cell exactly once. A state is the sequence of
// segment headings chosen so far; the first heading is fixed to East and the
// chain starts in the corner cell (0,0,0).
package cubepath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/state"
)

// Sentinel errors for puzzle construction and trajectory checks.
var (
	ErrInvalidWidth     = errors.New("cubepath: width must be at least 1")
	ErrInvalidInterval  = errors.New("cubepath: every interval must be at least 1")
	ErrLengthMismatch   = errors.New("cubepath: intervals must cover every cell exactly once")
	ErrInvalidDirection = errors.New("cubepath: invalid direction")
	ErrTooLong          = errors.New("cubepath: more headings than segments")
	ErrInvalidTurn      = errors.New("cubepath: consecutive headings must be perpendicular")
	ErrOutOfBounds      = errors.New("cubepath: trajectory leaves the cube")
	ErrRevisit          = errors.New("cubepath: trajectory enters a cell twice")
)

// Path is the state type: a sequence of segment headings.
type Path = state.Path[Direction]

// Puzzle is the search problem. It holds only the fixed chain shape.
type Puzzle struct {
	intervals []int
	width     int
}

var _ search.Problem[Path] = (*Puzzle)(nil)

// New validates the chain shape. The segment lengths plus the starting cell
// must equal width³.
func New(intervals []int, width int) (*Puzzle, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("%w: need at least one segment", ErrInvalidInterval)
	}
	total := 1
	for i, n := range intervals {
		if n < 1 {
			return nil, fmt.Errorf("%w: intervals[%d] = %d", ErrInvalidInterval, i, n)
		}
		total += n
	}
	if cells := width * width * width; total != cells {
		return nil, fmt.Errorf("%w: %d cells covered, cube has %d", ErrLengthMismatch, total, cells)
	}

	return &Puzzle{intervals: append([]int(nil), intervals...), width: width}, nil
}

// Small is the 2×2×2 puzzle made of seven unit segments.
func Small() *Puzzle {
	p, _ := New([]int{1, 1, 1, 1, 1, 1, 1}, 2)
	return p
}

// Standard is the 3×3×3 puzzle with seventeen segments.
func Standard() *Puzzle {
	p, _ := New([]int{2, 2, 2, 2, 1, 1, 1, 2, 2, 1, 1, 2, 1, 2, 1, 1, 2}, 3)
	return p
}

// Width returns the cube edge length.
func (p *Puzzle) Width() int { return p.width }

// Intervals returns a copy of the segment lengths.
func (p *Puzzle) Intervals() []int { return append([]int(nil), p.intervals...) }

// StartState returns (E).
func (p *Puzzle) StartState() Path { return state.NewPath(East) }

// IsFinal reports whether s uses every segment and its trajectory fills the cube.
func (p *Puzzle) IsFinal(s Path) bool {
	if s.Len() != len(p.intervals) {
		return false
	}
	cells, err := p.Trajectory(s)

	return err == nil && len(cells) == p.width*p.width*p.width
}

// Successors appends every heading perpendicular to the current one whose
// segment stays inside the cube without entering an occupied cell.
// Headings are tried in the order of Directions.
func (p *Puzzle) Successors(s Path) []Path {
	n := s.Len()
	if n == 0 || n >= len(p.intervals) {
		return nil
	}
	cells, err := p.Trajectory(s)
	if err != nil {
		return nil
	}
	occupied := make(map[Vec]struct{}, len(cells))
	for _, c := range cells {
		occupied[c] = struct{}{}
	}
	heading, _ := s.Last()
	end := cells[len(cells)-1]
	length := p.intervals[n]

	var out []Path
	for _, d := range Directions {
		if !heading.Perpendicular(d) {
			continue
		}
		if p.segmentFits(end, d, length, occupied) {
			out = append(out, s.Append(d))
		}
	}

	return out
}

// Trajectory returns every cell the chain occupies, in order, starting at
// (0,0,0). It fails if s has invalid or parallel headings, more headings
// than segments, leaves the cube, or crosses itself.
func (p *Puzzle) Trajectory(s Path) ([]Vec, error) {
	if s.Len() > len(p.intervals) {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLong, s.Len(), len(p.intervals))
	}
	pos := Vec{}
	cells := []Vec{pos}
	seen := map[Vec]struct{}{pos: {}}
	for i, d := range s.Tokens() {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidDirection, byte(d), i)
		}
		if i > 0 && !s.At(i-1).Perpendicular(d) {
			return nil, fmt.Errorf("%w: %s then %s at %d", ErrInvalidTurn, s.At(i-1), d, i)
		}
		step := d.Vector()
		for k := 0; k < p.intervals[i]; k++ {
			pos = pos.Add(step)
			if !p.inside(pos) {
				return nil, fmt.Errorf("%w: %s at segment %d", ErrOutOfBounds, pos, i)
			}
			if _, dup := seen[pos]; dup {
				return nil, fmt.Errorf("%w: %s at segment %d", ErrRevisit, pos, i)
			}
			seen[pos] = struct{}{}
			cells = append(cells, pos)
		}
	}

	return cells, nil
}

// segmentFits walks length cells from end along d.
func (p *Puzzle) segmentFits(end Vec, d Direction, length int, occupied map[Vec]struct{}) bool {
	step := d.Vector()
	pos := end
	for k := 0; k < length; k++ {
		pos = pos.Add(step)
		if !p.inside(pos) {
			return false
		}
		if _, taken := occupied[pos]; taken {
			return false
		}
	}

	return true
}

func (p *Puzzle) inside(v Vec) bool {
	return v.X >= 0 && v.X < p.width &&
		v.Y >= 0 && v.Y < p.width &&
		v.Z >= 0 && v.Z < p.width
}

// Solve runs breadth-first search on p.
func Solve(p *Puzzle, opts ...search.Option[Path]) (search.Result[Path], error) {
	return search.BFS[Path](p, opts...)
}
