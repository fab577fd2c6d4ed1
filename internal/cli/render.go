package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube/internal/cube"
)

var renderCmd = &cobra.Command{
	Use:   "render [layout]",
	Short: "Display a cube layout",
	Long: `Render a cube as a colored unfolded net. With no argument the solved
cube is shown.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	c := cube.Solved
	if len(args) > 0 {
		var err error
		c, err = cube.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderLayout(c.Decode()))
	return nil
}

// Sticker styles, one per color character.
var stickerStyles = map[byte]lipgloss.Style{
	'o': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	'r': lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	'w': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	'y': lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	'g': lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")),
	'b': lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("15")),
}

// renderLayout colorizes the unfolded net: each sticker is drawn as its
// color character on a matching background.
func renderLayout(l *cube.Layout) string {
	var b strings.Builder
	for _, line := range strings.Split(l.String(), "\n") {
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if style, ok := stickerStyles[ch]; ok {
				b.WriteString(style.Render(string(ch)))
			} else {
				b.WriteByte(ch)
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
