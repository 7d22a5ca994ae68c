package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFilter(t *testing.T) {
	m := newModel("CASE1", []string{"FOPR", "FGPR", "WOPR:OP_1"})

	next, _ := m.Update(keyMsg("w"))
	m = next.(model)

	visible := m.visible()
	if len(visible) != 1 || visible[0] != "WOPR:OP_1" {
		t.Errorf("visible = %v, want [WOPR:OP_1]", visible)
	}

	next, _ = m.Update(keyMsg("backspace"))
	m = next.(model)
	if len(m.visible()) != 3 {
		t.Errorf("visible = %v after backspace", m.visible())
	}
}

func TestSelect(t *testing.T) {
	m := newModel("CASE1", []string{"FOPR", "FGPR"})

	next, _ := m.Update(keyMsg("down"))
	m = next.(model)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(model)

	if m.selected != "FGPR" {
		t.Errorf("selected = %q, want FGPR", m.selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestView(t *testing.T) {
	m := newModel("CASE1", []string{"FOPR"})
	out := m.View()
	if !strings.Contains(out, "CASE1") || !strings.Contains(out, "FOPR") {
		t.Errorf("view missing content: %q", out)
	}
}
