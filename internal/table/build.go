package table

import (
	"fmt"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/internal/queue"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

// ProgressFunc receives the number of states discovered so far. Called
// periodically during Build; may be nil.
type ProgressFunc func(discovered int)

// progressEvery is how many discoveries go by between progress reports.
const progressEvery = 250000

// Build constructs the full distance table by breadth-first search from the
// solved cube.
//
// Each dequeued configuration is expanded through all six turns. A neighbor
// seen for the first time is recorded with the move that produced it and
// enqueued; rediscoveries are discarded, so every state keeps its
// first-discovered move and the walk back to solved is a shortest path.
// The solved cube itself is enqueued as the seed but never recorded: its
// rediscoveries (at depth 2 and beyond) are skipped explicitly.
//
// Discovery goes into a map keyed by configuration and the sorted record
// array is materialized once at the end, which keeps the output identical
// to maintaining a sorted array throughout without the quadratic
// shift-on-insert cost.
//
// The frontier queue is sized to the exact state count, so overflow cannot
// happen; if it ever does the build aborts with ErrFrontier rather than
// emit a truncated table.
func Build(progress ProgressFunc) (*Table, error) {
	frontier := queue.New(cube.NumStates)
	discovered := make(map[cube.Cube]types.Move, NumRecords)

	if err := frontier.Enqueue(uint32(cube.Solved)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontier, err)
	}

	for {
		v, ok := frontier.Dequeue()
		if !ok {
			break // frontier exhausted: every reachable state visited
		}
		c := cube.Cube(v)

		for _, m := range types.Moves {
			next := c.Apply(m)
			if next == cube.Solved {
				continue
			}
			if _, ok := discovered[next]; ok {
				continue
			}
			discovered[next] = m
			if err := frontier.Enqueue(uint32(next)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFrontier, err)
			}
			if progress != nil && len(discovered)%progressEvery == 0 {
				progress(len(discovered))
			}
		}
	}

	if len(discovered) != NumRecords {
		return nil, fmt.Errorf("%w: %d of %d", ErrIncomplete, len(discovered), NumRecords)
	}
	return fromRecords(discovered), nil
}
