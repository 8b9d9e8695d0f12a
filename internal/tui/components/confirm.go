package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// ConfirmKeyMap binds the four answers of a per-file confirmation.
type ConfirmKeyMap struct {
	Yes  key.Binding
	No   key.Binding
	All  key.Binding
	Quit key.Binding
}

// DefaultConfirmKeyMap returns the default bindings. Enter answers no, like an
// empty line at the console prompt.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "o", "O"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "enter"),
			key.WithHelp("n/enter", "no"),
		),
		All: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp lists the bindings in display order.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.All, k.Quit}
}

type confirmStyles struct {
	Prompt lipgloss.Style
	Yes    lipgloss.Style
	No     lipgloss.Style
	Quit   lipgloss.Style
	Help   lipgloss.Style
}

func defaultConfirmStyles() confirmStyles {
	return confirmStyles{
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Yes:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		No:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Quit:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Confirm is a single-key yes/no/all/quit prompt.
type Confirm struct {
	prompt   string
	keyMap   ConfirmKeyMap
	styles   confirmStyles
	decision extscan.Decision
	answered bool
	showHelp bool
}

// NewConfirm creates a confirm prompt.
func NewConfirm(prompt string) Confirm {
	return Confirm{
		prompt:   prompt,
		keyMap:   DefaultConfirmKeyMap(),
		styles:   defaultConfirmStyles(),
		showHelp: true,
	}
}

// WithKeyMap replaces the key bindings.
func (c Confirm) WithKeyMap(k ConfirmKeyMap) Confirm {
	c.keyMap = k
	return c
}

// WithShowHelp enables or disables the help line.
func (c Confirm) WithShowHelp(show bool) Confirm {
	c.showHelp = show
	return c
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || c.answered {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keyMap.Yes):
		c.decision = extscan.DecisionYes
	case key.Matches(keyMsg, c.keyMap.No):
		c.decision = extscan.DecisionNo
	case key.Matches(keyMsg, c.keyMap.All):
		c.decision = extscan.DecisionAll
	case key.Matches(keyMsg, c.keyMap.Quit):
		c.decision = extscan.DecisionQuit
	default:
		return c, nil
	}
	c.answered = true
	return c, tea.Quit
}

// View implements tea.Model.
func (c Confirm) View() string {
	var b strings.Builder
	b.WriteString(c.styles.Prompt.Render(c.prompt))
	b.WriteString(" ")

	if c.answered {
		b.WriteString(c.answerStyle().Render(c.decision.String()))
		b.WriteString("\n")
		return b.String()
	}

	if c.showHelp {
		parts := make([]string, 0, 4)
		for _, binding := range c.keyMap.ShortHelp() {
			h := binding.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		b.WriteString(c.styles.Help.Render(strings.Join(parts, " • ")))
	}
	return b.String()
}

func (c Confirm) answerStyle() lipgloss.Style {
	switch c.decision {
	case extscan.DecisionYes, extscan.DecisionAll:
		return c.styles.Yes
	case extscan.DecisionQuit:
		return c.styles.Quit
	default:
		return c.styles.No
	}
}

// Decision returns the answer; DecisionNo until Answered.
func (c Confirm) Decision() extscan.Decision {
	return c.decision
}

// Answered returns true once a bound key was pressed.
func (c Confirm) Answered() bool {
	return c.answered
}
