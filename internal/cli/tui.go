package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/gridboard/pkg/board"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// isInteractive reports whether stdin and stdout are attached to a
// terminal. Interactive prompts are skipped otherwise.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// =============================================================================
// ConfirmModel - Yes/no prompt
// =============================================================================

// ConfirmModel is the bubbletea model for a yes/no confirmation.
type ConfirmModel struct {
	Prompt    string
	Confirmed bool
	Answered  bool
}

// NewConfirmModel creates a confirmation prompt with the given question.
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{Prompt: prompt}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y", "enter":
			m.Confirmed = true
			m.Answered = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.Answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.Answered {
		return ""
	}
	return m.Prompt + " " + listDimStyle.Render("[y/N]") + " "
}

// confirm runs an interactive yes/no prompt. Callers guard with
// isInteractive so scripted runs never hang.
func confirm(prompt string) (bool, error) {
	final, err := tea.NewProgram(NewConfirmModel(prompt)).Run()
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed, nil
}

// =============================================================================
// WidgetListModel - Interactive widget selection
// =============================================================================

// WidgetListModel is the bubbletea model for picking one widget from a
// dashboard, used by `widget remove` when no id is given.
type WidgetListModel struct {
	Widgets  []board.Widget
	Cursor   int
	Selected string
}

// NewWidgetListModel creates a widget picker over the given widgets.
func NewWidgetListModel(widgets []board.Widget) WidgetListModel {
	return WidgetListModel{Widgets: widgets}
}

func (m WidgetListModel) Init() tea.Cmd {
	return nil
}

func (m WidgetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Widgets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Widgets[m.Cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m WidgetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Widget"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, w := range m.Widgets {
		line := fmt.Sprintf("%s  %s  %s %dx%d",
			w.ID, w.Type, w.Position.Coordinate(), w.Size.Width, w.Size.Height)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickWidget runs the interactive widget picker and returns the chosen id,
// or "" when the user quits without selecting.
func pickWidget(widgets []board.Widget) (string, error) {
	if !isInteractive() {
		return "", fmt.Errorf("no widget id given and session is not interactive")
	}
	final, err := tea.NewProgram(NewWidgetListModel(widgets)).Run()
	if err != nil {
		return "", fmt.Errorf("widget picker: %w", err)
	}
	m, ok := final.(WidgetListModel)
	if !ok {
		return "", nil
	}
	return m.Selected, nil
}
