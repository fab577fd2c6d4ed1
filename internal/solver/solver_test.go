package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/internal/table"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

var (
	buildOnce sync.Once
	built     *table.Table
	buildErr  error
)

func fullTable(t *testing.T) *table.Table {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping full table build in -short mode")
	}
	buildOnce.Do(func() {
		built, buildErr = table.Build(nil)
	})
	require.NoError(t, buildErr)
	return built
}

func TestSolveSolvedIsEmpty(t *testing.T) {
	tab := fullTable(t)
	seq, err := Solve(tab, cube.Solved)
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestSolveDepthOne(t *testing.T) {
	tab := fullTable(t)
	for _, m := range types.Moves {
		c := cube.Solved.Apply(m)
		seq, err := Solve(tab, c)
		require.NoError(t, err)
		require.Len(t, seq, 1, "one move away must solve in one move")
		assert.Equal(t, m.Inverse(), seq[0])
		assert.Equal(t, cube.Solved, c.ApplyAll(seq))
	}
}

func TestSolveScenarioFrontThenTop(t *testing.T) {
	tab := fullTable(t)
	x := cube.Solved.Apply(types.FrontCW).Apply(types.TopCW)

	seq, err := Solve(tab, x)
	require.NoError(t, err)

	// Undo in reverse order: top-CCW first, then front-CCW.
	assert.Equal(t, types.Sequence{types.TopCCW, types.FrontCCW}, seq)
	assert.Equal(t, cube.Solved, x.ApplyAll(seq))
}

func TestSolveDepthTwo(t *testing.T) {
	tab := fullTable(t)
	// Any pair of moves that do not cancel leaves the cube two moves
	// from solved.
	for _, m1 := range types.Moves {
		for _, m2 := range types.Moves {
			if m2 == m1.Inverse() {
				continue
			}
			c := cube.Solved.Apply(m1).Apply(m2)
			seq, err := Solve(tab, c)
			require.NoError(t, err)
			assert.Len(t, seq, 2, "%v %v should be distance 2", m1, m2)
			assert.Equal(t, cube.Solved, c.ApplyAll(seq))
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	tab := fullTable(t)
	// Twisting a single corner in place yields a well-formed encoding
	// that no move sequence can reach.
	_, err := Solve(tab, cube.Solved+1)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveStaysWithinBound(t *testing.T) {
	tab := fullTable(t)
	// A long random-ish scramble still solves in at most 11 moves.
	scramble := []types.Move{
		types.FrontCW, types.TopCW, types.LeftCCW, types.FrontCCW,
		types.TopCW, types.LeftCW, types.FrontCW, types.TopCCW,
		types.LeftCCW, types.FrontCW, types.TopCW, types.LeftCW,
		types.FrontCCW, types.TopCW, types.LeftCCW, types.TopCW,
	}
	c := cube.Solved.ApplyAll(scramble)

	seq, err := Solve(tab, c)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(seq), 11)
	assert.Equal(t, cube.Solved, c.ApplyAll(seq))
}

func TestVerifyFullTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive verification in -short mode")
	}
	tab := fullTable(t)

	var lastChecked int
	err := Verify(tab, func(checked int) { lastChecked = checked })
	require.NoError(t, err)
	assert.Greater(t, lastChecked, 0)
}
