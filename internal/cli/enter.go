package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeffmartin/pocketcube/internal/cube"
)

var enterCmd = &cobra.Command{
	Use:   "enter",
	Short: "Enter a cube interactively and solve it",
	Long: `Start an interactive screen for typing in the 24 sticker colors with a
live preview of the cube.

Hold your cube with the red-yellow-blue corner in the bottom-back-right
position, then type the colors (o r w y g b) in the numbered cell order.

Keys:
  o r w y g b - enter the next sticker color
  backspace   - remove the last color
  enter       - solve (once all 24 colors are in)
  q/Esc       - quit without solving`,
	RunE: runEnter,
}

func init() {
	rootCmd.AddCommand(enterCmd)
}

// Styles
var (
	enterTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	enterErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	enterHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type enterModel struct {
	cells    [24]byte
	n        int
	errText  string
	layout   string // set when a valid cube was entered
	quitting bool
}

func (m *enterModel) Init() tea.Cmd {
	return nil
}

func (m *enterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "backspace":
		if m.n > 0 {
			m.n--
		}
		m.errText = ""
		return m, nil

	case "o", "r", "w", "y", "g", "b":
		if m.n < len(m.cells) {
			m.cells[m.n] = key.String()[0]
			m.n++
			m.errText = ""
		}
		return m, nil

	case "enter":
		if m.n < len(m.cells) {
			m.errText = fmt.Sprintf("only %d of 24 colors entered", m.n)
			return m, nil
		}
		layout := string(m.cells[:])
		if _, err := cube.Parse(layout); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.layout = layout
		return m, tea.Quit
	}

	return m, nil
}

func (m *enterModel) View() string {
	if m.quitting || m.layout != "" {
		return ""
	}

	l := &cube.Layout{}
	for i := range l.Cells {
		for j := range l.Cells[i] {
			l.Cells[i][j] = '-'
		}
	}
	for i := 0; i < m.n; i++ {
		cell := cube.EntryCells[i]
		l.Cells[cell[0]][cell[1]] = m.cells[i]
	}
	if m.n < len(m.cells) {
		next := cube.EntryCells[m.n]
		l.Cells[next[0]][next[1]] = '_'
	}

	s := enterTitleStyle.Render("Enter your cube") + "\n\n"
	s += renderLayout(l) + "\n\n"
	s += fmt.Sprintf("%d/24 colors", m.n) + "\n"
	if m.errText != "" {
		s += enterErrorStyle.Render(m.errText) + "\n"
	}
	s += enterHelpStyle.Render("o/r/w/y/g/b: color  backspace: undo  enter: solve  q: quit") + "\n"
	return s
}

func runEnter(cmd *cobra.Command, args []string) error {
	m := &enterModel{}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("failed to run entry screen: %w", err)
	}
	if m.layout == "" {
		return nil // user quit
	}
	return solveAndReport(m.layout)
}
