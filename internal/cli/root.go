// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube"
	"github.com/jeffmartin/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	tablePath string
	dbPath    string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Optimal 2x2 pocket cube solver",
	Long: `Pocket Cube Solver - computes optimal solutions for the 2x2 Rubik's cube.

A one-off 'build' enumerates all 3,674,160 reachable cube states by
breadth-first search and stores a move lookup table. After that, any cube
entered by its 24 sticker colors is solved optimally in a few microseconds.

Hold your cube with the red-yellow-blue corner in the bottom-back-right
position before entering it.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "State table file path (default: ~/.pocketcube/state_table.bin)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Solve history database path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// tableOptions returns the facade options reflecting the global flags.
func tableOptions(extra ...pocketcube.Option) []pocketcube.Option {
	opts := extra
	if tablePath != "" {
		opts = append(opts, pocketcube.WithTablePath(tablePath))
	}
	return opts
}

// openDB opens the solve history database from flag or default.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
