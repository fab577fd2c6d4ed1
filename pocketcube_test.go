package pocketcube

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

const solvedLayout = "oooo gggg wwww bbbb yyyy rrrr"

func TestOpenMissingTable(t *testing.T) {
	_, err := Open(WithTablePath(filepath.Join(t.TempDir(), "missing.bin")))
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestBuildOpenSolve(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full table build in -short mode")
	}
	path := filepath.Join(t.TempDir(), "state_table.bin")

	var progressed bool
	s, err := Build(WithTablePath(path), WithProgress(func(int) { progressed = true }))
	require.NoError(t, err)
	assert.True(t, progressed)

	seq, err := s.Solve(solvedLayout)
	require.NoError(t, err)
	assert.Empty(t, seq)

	// Reopen from the persisted file and solve a scrambled layout:
	// front-CW then top-CW undoes as U' F'.
	s, err = Open(WithTablePath(path))
	require.NoError(t, err)

	scrambled := cube.Solved.Apply(types.FrontCW).Apply(types.TopCW)
	seq, err = s.Solve(scrambled.Decode().Colors())
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{types.TopCCW, types.FrontCCW}, seq)
}
