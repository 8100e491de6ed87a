package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmKeyMap defines keyboard shortcuts for the yes/no dialog
type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap for inline help
func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Submit}
}

// FullHelp implements help.KeyMap
func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Cancel}}
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"),
			key.WithHelp("←/→", "switch"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmModel is a modal yes/no dialog. Yes is preselected.
type ConfirmModel struct {
	Title   string
	Message string

	keys     confirmKeyMap
	help     help.Model
	yes      bool
	answered bool
	width    int
}

// NewConfirmModel creates a dialog with Yes focused.
func NewConfirmModel(title, message string) ConfirmModel {
	return ConfirmModel{
		Title:   title,
		Message: strings.ReplaceAll(message, "\r\n", "\n"),
		keys:    newConfirmKeyMap(),
		help:    help.New(),
		yes:     true,
	}
}

// Accepted reports whether the operator chose Yes. Cancelling counts as No.
func (m ConfirmModel) Accepted() bool {
	return m.answered && m.yes
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.yes, m.answered = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No):
			m.yes, m.answered = false, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.yes = !m.yes
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.answered = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.yes, m.answered = false, true
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 3).
			MarginRight(2)
	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("63")).
				Bold(true)
)

func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	yesBtn, noBtn := activeButtonStyle.Render("Yes"), buttonStyle.Render("No")
	if !m.yes {
		yesBtn, noBtn = buttonStyle.Render("Yes"), activeButtonStyle.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, noBtn)

	body := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render(m.Title),
		"",
		strings.TrimRight(m.Message, "\n"),
		"",
		buttons,
	)

	box := dialogBoxStyle
	if m.width > 0 && m.width < lipgloss.Width(body)+6 {
		box = box.Width(m.width - 2)
	}
	return box.Render(body) + "\n" + m.help.View(m.keys) + "\n"
}

// RunConfirm shows the dialog on the given terminal streams and blocks until
// the operator answers.
func RunConfirm(title, message string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(
		NewConfirmModel(title, message),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	ResetTerminalAfterTUI()
	if err != nil {
		return false, err
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Accepted(), nil
}
