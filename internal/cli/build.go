package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube"
	"github.com/jeffmartin/pocketcube/internal/table"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the state table",
	Long: `Build the move lookup table by breadth-first search over all
reachable cube states and persist it for later solves.

This visits 3,674,160 states and only needs to run once; every other
command loads the resulting file.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	opts := tableOptions(pocketcube.WithProgress(func(discovered int) {
		if verbose {
			fmt.Printf("  %s of %s states discovered\n",
				humanize.Comma(int64(discovered)), humanize.Comma(int64(table.NumRecords)))
		}
	}))

	fmt.Println("Building state table, this can take a while...")
	if _, err := pocketcube.Build(opts...); err != nil {
		return err
	}

	fmt.Printf("Done: %s states in %s (%s on disk)\n",
		humanize.Comma(int64(table.NumRecords)),
		time.Since(start).Round(time.Millisecond),
		humanize.Bytes(uint64(table.FileSize)))
	return nil
}
