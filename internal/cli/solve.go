package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube"
	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/internal/solver"
	"github.com/jeffmartin/pocketcube/internal/storage"
)

var solveNoLog bool

var solveCmd = &cobra.Command{
	Use:   "solve [layout]",
	Short: "Solve a cube from its 24-color layout",
	Long: `Solve a cube given as 24 color characters (o r w y g b), in the cell
order shown by 'pocketcube enter'. Spaces are optional.

Example (a solved cube):
  pocketcube solve "oooo gggg wwww bbbb yyyy rrrr"

Each successful solve is appended to the history database unless --no-log
is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveNoLog, "no-log", false, "Do not record this solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	return solveAndReport(strings.Join(args, " "))
}

// solveAndReport parses a layout, solves it, prints the result and records
// it in the history database. Shared by the solve and enter commands.
func solveAndReport(layout string) error {
	c, err := cube.Parse(layout)
	if err != nil {
		return err
	}

	s, err := pocketcube.Open(tableOptions()...)
	if err != nil {
		if errors.Is(err, pocketcube.ErrNoTable) {
			return fmt.Errorf("%w\nRun 'pocketcube build' first", err)
		}
		return err
	}

	fmt.Println("The cube you entered:")
	fmt.Println()
	fmt.Println(renderLayout(c.Decode()))

	seq, err := s.Solve(layout)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			return fmt.Errorf("this cube cannot be reached from the solved state: %w", err)
		}
		return err
	}

	if len(seq) == 0 {
		fmt.Println("Already solved!")
	} else {
		fmt.Printf("Solution (%d moves): %s\n", len(seq), seq.Notation())
	}

	if solveNoLog {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Record(compactLayout(layout), uint32(c), seq.Notation(), len(seq))
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Recorded solve %s\n", id)
	}
	return nil
}

// compactLayout normalizes a layout string to its bare 24 characters.
func compactLayout(layout string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n':
			return -1
		}
		return r
	}, layout)
}
