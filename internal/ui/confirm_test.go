package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ConfirmModel, msgs ...tea.Msg) (ConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(ConfirmModel)
	}
	return m, cmd
}

func TestConfirmModel_Keys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		accepted bool
		quits    bool
	}{
		{"y accepts", []tea.Msg{runes("y")}, true, true},
		{"Y accepts", []tea.Msg{runes("Y")}, true, true},
		{"n declines", []tea.Msg{runes("n")}, false, true},
		{"enter takes default yes", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, true, true},
		{"right then enter declines", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter}}, false, true},
		{"toggle twice then enter accepts", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter}}, true, true},
		{"esc declines", []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}}, false, true},
		{"ctrl+c declines", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}}, false, true},
		{"toggle alone keeps waiting", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, false, false},
		{"unbound key ignored", []tea.Msg{runes("x")}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(NewConfirmModel("Title", "Body"), tt.keys...)
			if m.Accepted() != tt.accepted {
				t.Errorf("Accepted() = %v, want %v", m.Accepted(), tt.accepted)
			}
			if (cmd != nil) != tt.quits {
				t.Errorf("quit cmd = %v, want quit %v", cmd != nil, tt.quits)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := NewConfirmModel("Anti-Revoke Plugin", "Latest version: 2.0.0\r\n\r\nDo you want to go?\n")
	v := m.View()
	for _, want := range []string{"Anti-Revoke Plugin", "Latest version: 2.0.0", "Do you want to go?", "Yes", "No"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(v, "\r") {
		t.Error("View() contains carriage returns")
	}

	m, _ = press(m, runes("n"))
	if m.View() != "" {
		t.Error("View() after answer should be empty")
	}
}

func TestConfirmModel_WindowSize(t *testing.T) {
	m, cmd := press(NewConfirmModel("T", strings.Repeat("x", 200)), tea.WindowSizeMsg{Width: 40, Height: 20})
	if cmd != nil || m.width != 40 {
		t.Errorf("width = %d, cmd = %v", m.width, cmd)
	}
	if m.View() == "" {
		t.Error("View() empty before answer")
	}
}
