// Package pocketcube solves the 2x2 pocket cube optimally.
//
// The solver is table-driven: a one-off breadth-first search from the
// solved cube enumerates all 3,674,160 reachable configurations and records,
// for each one, the move whose inverse leads one step back toward solved.
// The table is persisted as a sorted flat file and answers each solve query
// with a handful of binary searches, so every returned sequence is a
// shortest solution.
//
// # Quick Start
//
// Build the table once (takes a little while), then solve:
//
//	s, err := pocketcube.Open(pocketcube.WithBuildIfMissing(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seq, err := s.Solve("oooo gggg wwww bbbb yyyy rrrr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(seq.Notation()) // empty: that layout is already solved
//
// The layout string lists the 24 sticker colors (o r w y g b) in the cell
// order printed by the CLI's enter screen, with the red-yellow-blue corner
// held in the bottom-back-right position.
package pocketcube

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/internal/solver"
	"github.com/jeffmartin/pocketcube/internal/table"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

// Solver answers solve queries against a loaded distance table. Safe for
// concurrent use: the table is immutable once loaded.
type Solver struct {
	tab *table.Table
}

// Open loads the distance table and returns a ready Solver.
//
// By default the table is read from DefaultTablePath and a missing file is
// ErrNoTable. With WithBuildIfMissing the table is built and persisted
// instead, which enumerates the full state space and can take minutes.
func Open(opts ...Option) (*Solver, error) {
	c, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	tab, err := table.Load(c.tablePath)
	if errors.Is(err, os.ErrNotExist) {
		if !c.buildIfMissing {
			return nil, fmt.Errorf("%w: %s", ErrNoTable, c.tablePath)
		}
		tab, err = buildAndPersist(c)
	}
	if err != nil {
		return nil, err
	}

	return &Solver{tab: tab}, nil
}

// Build constructs the distance table from scratch and persists it,
// replacing any existing file. Returns the ready Solver.
func Build(opts ...Option) (*Solver, error) {
	c, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	tab, err := buildAndPersist(c)
	if err != nil {
		return nil, err
	}
	return &Solver{tab: tab}, nil
}

func buildAndPersist(c *config) (*table.Table, error) {
	tab, err := table.Build(c.progress)
	if err != nil {
		return nil, err
	}
	if err := tab.WriteFile(c.tablePath); err != nil {
		return nil, err
	}
	return tab, nil
}

// Solve parses a 24-color layout string and returns the shortest move
// sequence that solves it. An already-solved layout yields an empty
// sequence; a layout outside the reachable state space yields
// solver.ErrUnsolvable.
func (s *Solver) Solve(layout string) (types.Sequence, error) {
	c, err := cube.Parse(layout)
	if err != nil {
		return nil, err
	}
	return solver.Solve(s.tab, c)
}

// Verify checks the loaded table end to end: record count, strict ordering,
// valid move codes, and that every recorded configuration solves within the
// move bound. progress, if non-nil, receives the running record count.
func (s *Solver) Verify(progress func(checked int)) error {
	return solver.Verify(s.tab, progress)
}
