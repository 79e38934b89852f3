package cubepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/cubepath"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/state"
)

// requireFillsCube asserts the full puzzle contract on a solution.
func requireFillsCube(t *testing.T, p *cubepath.Puzzle, s cubepath.Path) {
	t.Helper()
	dirs := s.Tokens()
	require.Len(t, dirs, len(p.Intervals()))
	for i := 1; i < len(dirs); i++ {
		require.True(t, dirs[i-1].Perpendicular(dirs[i]), "turn %d: %s then %s", i, dirs[i-1], dirs[i])
	}
	cells, err := p.Trajectory(s)
	require.NoError(t, err)
	w := p.Width()
	require.Len(t, cells, w*w*w)
	seen := make(map[cubepath.Vec]bool)
	for _, c := range cells {
		require.False(t, seen[c], "cell %s visited twice", c)
		seen[c] = true
		require.True(t, c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < w && c.Z >= 0 && c.Z < w, "cell %s outside", c)
	}
}

// TestSmall_BFS is the reference 2×2×2 scenario.
func TestSmall_BFS(t *testing.T) {
	p := cubepath.Small()
	res, err := cubepath.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 7, res.State.Len())
	assert.Equal(t, cubepath.East, res.State.At(0))
	assert.Equal(t, "(E N W U E S W)", res.State.String())
	assert.Equal(t, 32, res.Visited)
	requireFillsCube(t, p, res.State)
}

// TestSmall_DFS checks depth-first search finds a valid folding too.
func TestSmall_DFS(t *testing.T) {
	p := cubepath.Small()
	res, err := search.DFS[cubepath.Path](p)
	require.NoError(t, err)
	require.True(t, res.Found)
	requireFillsCube(t, p, res.State)
}

// TestIsFinal_KnownFolding checks a hand-made solution and near misses.
func TestIsFinal_KnownFolding(t *testing.T) {
	p := cubepath.Small()
	E, W, N, S, U := cubepath.East, cubepath.West, cubepath.North, cubepath.South, cubepath.Up

	good := state.NewPath(E, N, W, U, E, S, W)
	assert.True(t, p.IsFinal(good))

	assert.False(t, p.IsFinal(state.NewPath(E, N, W, U, E, S)), "too short")
	assert.False(t, p.IsFinal(state.NewPath(E, N, W, U, E, S, E)), "leaves cube / parallel")
	assert.False(t, p.IsFinal(state.NewPath(E, N, W, S, E, S, W)), "revisits")
}

// TestSuccessors_Turns covers the 90-degree rule and cube bounds.
func TestSuccessors_Turns(t *testing.T) {
	p := cubepath.Small()
	var got []cubepath.Direction
	for _, s := range p.Successors(p.StartState()) {
		last, _ := s.Last()
		got = append(got, last)
	}
	// From (1,0,0) heading East: South and Down leave the cube.
	assert.Equal(t, []cubepath.Direction{cubepath.North, cubepath.Up}, got)

	full := state.NewPath(cubepath.East, cubepath.North, cubepath.West, cubepath.Up,
		cubepath.East, cubepath.South, cubepath.West)
	assert.Empty(t, p.Successors(full), "no segments left")
	assert.Empty(t, p.Successors(cubepath.Path{}), "empty state")
	assert.Empty(t, p.Successors(state.NewPath(cubepath.West)), "invalid state")
}

// TestTrajectory_Errors exercises every rejection reason.
func TestTrajectory_Errors(t *testing.T) {
	p := cubepath.Small()
	E, W, N := cubepath.East, cubepath.West, cubepath.North

	_, err := p.Trajectory(state.NewPath(W))
	assert.ErrorIs(t, err, cubepath.ErrOutOfBounds)
	_, err = p.Trajectory(state.NewPath(E, E))
	assert.ErrorIs(t, err, cubepath.ErrInvalidTurn)
	_, err = p.Trajectory(state.NewPath(E, N, cubepath.South))
	assert.ErrorIs(t, err, cubepath.ErrInvalidTurn)
	_, err = p.Trajectory(state.NewPath(E, N, W, cubepath.South))
	assert.ErrorIs(t, err, cubepath.ErrRevisit)
	_, err = p.Trajectory(state.NewPath(E, N, W, N))
	assert.ErrorIs(t, err, cubepath.ErrOutOfBounds)
	_, err = p.Trajectory(state.NewPath(E, cubepath.Direction('X')))
	assert.ErrorIs(t, err, cubepath.ErrInvalidDirection)
	_, err = p.Trajectory(state.NewPath(E, N, W, cubepath.Up, E, cubepath.South, W, N))
	assert.ErrorIs(t, err, cubepath.ErrTooLong)

	q, err := cubepath.New([]int{1, 1, 1, 1, 1, 1, 1}, 2)
	require.NoError(t, err)
	_, err = q.Trajectory(state.NewPath(E, N, W, cubepath.Up, cubepath.South, E))
	assert.NoError(t, err)
	_, err = q.Trajectory(state.NewPath(E, N, cubepath.Up, cubepath.South, W, cubepath.Down))
	assert.ErrorIs(t, err, cubepath.ErrRevisit)
}

// TestNew_Errors covers shape validation.
func TestNew_Errors(t *testing.T) {
	_, err := cubepath.New([]int{1}, 0)
	assert.ErrorIs(t, err, cubepath.ErrInvalidWidth)
	_, err = cubepath.New(nil, 1)
	assert.ErrorIs(t, err, cubepath.ErrInvalidInterval)
	_, err = cubepath.New([]int{1, 0, 6}, 2)
	assert.ErrorIs(t, err, cubepath.ErrInvalidInterval)
	_, err = cubepath.New([]int{1, 1, 1}, 2)
	assert.ErrorIs(t, err, cubepath.ErrLengthMismatch)

	p := cubepath.Standard()
	require.NotNil(t, p)
	assert.Equal(t, 3, p.Width())
	assert.Len(t, p.Intervals(), 17)
}

// TestDirections covers direction helpers.
func TestDirections(t *testing.T) {
	for _, d := range cubepath.Directions {
		assert.True(t, d.Valid())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.False(t, d.Perpendicular(d))
		assert.False(t, d.Perpendicular(d.Opposite()))
		v, o := d.Vector(), d.Opposite().Vector()
		assert.Equal(t, cubepath.Vec{}, v.Add(o))
	}
	assert.True(t, cubepath.East.Perpendicular(cubepath.Up))

	d, err := cubepath.ParseDirection("u")
	require.NoError(t, err)
	assert.Equal(t, cubepath.Up, d)
	_, err = cubepath.ParseDirection("Q")
	assert.ErrorIs(t, err, cubepath.ErrInvalidDirection)
	_, err = cubepath.ParseDirection("EN")
	assert.ErrorIs(t, err, cubepath.ErrInvalidDirection)
	assert.Panics(t, func() { cubepath.Direction('X').Vector() })
}

// TestStandard_BFS solves the 3×3×3 puzzle.
func TestStandard_BFS(t *testing.T) {
	p := cubepath.Standard()
	res, err := cubepath.Solve(p, search.WithMaxVisits[cubepath.Path](100_000))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 230, res.Visited)
	requireFillsCube(t, p, res.State)
}

// TestStandard_DFS checks the depth-first folding is valid as well.
func TestStandard_DFS(t *testing.T) {
	p := cubepath.Standard()
	res, err := search.DFS[cubepath.Path](p)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 109, res.Visited)
	requireFillsCube(t, p, res.State)
}
