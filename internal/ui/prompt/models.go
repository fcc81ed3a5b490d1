package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/layout"
	"github.com/abhisek/termcommander/internal/ui/theme"
)

type chosenMsg int

func question(message string) string {
	return theme.Correct.Render("?") + " " + theme.Body.Bold(true).Render(message)
}

func answered(message, answer string) string {
	return question(message) + " " + theme.Hint.Render(answer) + "\n"
}

// selectModel picks one option from a list.
type selectModel struct {
	message   string
	options   []string
	menu      components.Menu
	chosen    int
	cancelled bool
}

func newSelectModel(message string, options []string, initial int) selectModel {
	items := make([]components.MenuItem, len(options))
	for i, o := range options {
		i := i
		items[i] = components.MenuItem{Label: o, Action: func() tea.Cmd {
			return func() tea.Msg { return chosenMsg(i) }
		}}
	}
	return selectModel{
		message: message,
		options: options,
		menu:    components.NewMenu(items, initial),
		chosen:  -1,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chosenMsg:
		m.chosen = int(msg)
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m selectModel) render() string {
	if m.chosen >= 0 {
		return answered(m.message, m.options[m.chosen])
	}
	if m.cancelled {
		return ""
	}
	return question(m.message) + "\n" + m.menu.View() + layout.RenderFooter(layout.SelectHints) + "\n"
}

// inputModel reads one line of text.
type inputModel struct {
	message   string
	input     components.TextInput
	done      bool
	cancelled bool
}

func newInputModel(message string, validate func(string) string) inputModel {
	return inputModel{
		message: message,
		input:   components.NewTextInput("", validate),
	}
}

func (m inputModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.input.Submit() {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m inputModel) render() string {
	if m.done {
		return answered(m.message, m.Value())
	}
	if m.cancelled {
		return ""
	}
	return question(m.message) + "\n" + m.input.View() + "\n" + layout.RenderFooter(layout.InputHints) + "\n"
}

func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// confirmModel asks a yes/no question.
type confirmModel struct {
	message   string
	def       bool
	value     bool
	done      bool
	cancelled bool
}

func newConfirmModel(message string, def bool) confirmModel {
	return confirmModel{message: message, def: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(k.String()) {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "y":
		m.value, m.done = true, true
		return m, tea.Quit
	case "n":
		m.value, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.value, m.done = m.def, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m confirmModel) render() string {
	if m.done {
		return answered(m.message, yesNo(m.value))
	}
	if m.cancelled {
		return ""
	}
	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	return question(m.message) + " " + theme.Hint.Render(hint) + "\n" + layout.RenderFooter(layout.ConfirmHints) + "\n"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
