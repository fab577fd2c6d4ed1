package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	Long:  `Display recent solve queries from the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, s := range solves {
		solution := s.Solution
		if s.MoveCount == 0 {
			solution = "(already solved)"
		}
		fmt.Printf("%s  %2d moves  %s\n", s.SolvedAt.Local().Format("2006-01-02 15:04:05"), s.MoveCount, solution)
		if verbose {
			fmt.Printf("    id: %s  layout: %s\n", s.SolveID, s.Layout)
		}
	}
	return nil
}
