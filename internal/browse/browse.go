// Package browse is an interactive vocabulary browser for one case:
// type to filter the vector keys, enter prints the selection.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const pageSize = 15

type model struct {
	caseName string
	keys     []string
	filter   string
	cursor   int
	selected string
}

func newModel(caseName string, keys []string) model {
	return model{caseName: caseName, keys: keys}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) visible() []string {
	if m.filter == "" {
		return m.keys
	}
	var out []string
	needle := strings.ToUpper(m.filter)
	for _, key := range m.keys {
		if strings.Contains(key, needle) {
			out = append(out, key)
		}
	}
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.visible()
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m.selected = visible[m.cursor]
		}
		return m, tea.Quit
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(key.String()) == 1 {
			m.filter += key.String()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.caseName) + "  " + dimStyle.Render(fmt.Sprintf("%d vectors", len(m.keys))) + "\n")
	b.WriteString("filter: " + strings.ToUpper(m.filter) + "\n\n")

	visible := m.visible()
	start := 0
	if m.cursor >= pageSize {
		start = m.cursor - pageSize + 1
	}
	end := start + pageSize
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+visible[i]) + "\n")
		} else {
			b.WriteString("  " + visible[i] + "\n")
		}
	}
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  no match") + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("type to filter  enter: select  esc: quit"))
	return b.String()
}

// Run opens the browser over the given vocabulary and returns the
// selected key, or "" when the user quit without selecting.
func Run(caseName string, keys []string) (string, error) {
	p := tea.NewProgram(newModel(caseName, keys))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(model).selected, nil
}
