package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube"
	"github.com/jeffmartin/pocketcube/internal/table"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the state table",
	Long: `Check the persisted state table exhaustively: record count, strict
ordering, valid move codes, and that every recorded cube actually solves
within the move bound. Slow, but proves the table is sound.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	s, err := pocketcube.Open(tableOptions()...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = s.Verify(func(checked int) {
		if verbose {
			fmt.Printf("  %s of %s records checked\n",
				humanize.Comma(int64(checked)), humanize.Comma(int64(table.NumRecords)))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Table OK: %s records verified in %s\n",
		humanize.Comma(int64(table.NumRecords)), time.Since(start).Round(time.Millisecond))
	return nil
}
