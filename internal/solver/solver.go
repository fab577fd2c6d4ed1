// Package solver turns a cube configuration into a shortest solving
// sequence by walking the distance table back to solved.
package solver

import (
	"errors"
	"fmt"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/internal/table"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

// MaxMoves bounds the solution length. Any pocket cube position is solvable
// in at most 11 quarter turns of three faces; the bound is kept well above
// that so a table defect surfaces as an explicit error instead of an
// endless walk.
const MaxMoves = 20

// Sentinel errors.
var (
	// ErrUnsolvable means the configuration is not in the reachable
	// state space: no move sequence leads to solved. Distinct from an
	// already-solved cube, which yields an empty sequence.
	ErrUnsolvable = errors.New("solver: configuration is not reachable from solved")

	// ErrMoveBound means the walk exceeded MaxMoves, which indicates a
	// corrupt or inconsistent table.
	ErrMoveBound = errors.New("solver: exceeded maximum solution length")
)

// Solve returns the shortest move sequence bringing c to the solved
// configuration. A solved input yields an empty, non-error result.
//
// Each step looks up the current configuration's discovery move and applies
// its inverse, moving one step down the BFS tree. The solved cube is never
// stored in the table, so it is checked for explicitly before each lookup;
// a lookup miss on anything else means the input was never reachable.
func Solve(t *table.Table, c cube.Cube) (types.Sequence, error) {
	var seq types.Sequence
	for !c.IsSolved() {
		m, ok := t.Lookup(c)
		if !ok {
			return nil, ErrUnsolvable
		}
		inv := m.Inverse()
		seq = append(seq, inv)
		c = c.Apply(inv)
		if len(seq) > MaxMoves {
			return nil, ErrMoveBound
		}
	}
	return seq, nil
}

// Verify proves a built or loaded table solves every configuration it
// contains within the move bound. progress, if non-nil, receives the number
// of records checked so far.
func Verify(t *table.Table, progress func(checked int)) error {
	n := t.Len()
	if n != table.NumRecords {
		return fmt.Errorf("%w: %d records, want %d", table.ErrIncomplete, n, table.NumRecords)
	}

	var prev cube.Cube
	for i := 0; i < n; i++ {
		rec := t.Record(i)
		if i > 0 && rec.Cube <= prev {
			return fmt.Errorf("table: records out of order at index %d", i)
		}
		prev = rec.Cube

		if !rec.Move.Valid() {
			return fmt.Errorf("table: invalid move code %d at index %d", rec.Move, i)
		}
		if _, err := Solve(t, rec.Cube); err != nil {
			return fmt.Errorf("record %d (cube %d): %w", i, rec.Cube, err)
		}
		if progress != nil && (i+1)%250000 == 0 {
			progress(i + 1)
		}
	}
	return nil
}
