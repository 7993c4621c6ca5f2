// Package playground is an interactive terminal playground for the stringx
// helpers.
package playground

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
)

// Field identifies the focused input
type Field int

const (
	FieldText Field = iota
	FieldDelimiters
)

// Model is the playground model
type Model struct {
	text       textinput.Model
	delimiters textinput.Model
	focus      Field

	trimTokens        bool
	ignoreEmptyTokens bool
	rule              stringx.CaseRule

	width int
}

// NewModel creates a playground seeded with the text defaults of cfg
func NewModel(cfg config.TextConfig) Model {
	text := textinput.New()
	text.Placeholder = "Text eingeben..."
	text.Prompt = "› "
	text.CharLimit = 4000
	text.Focus()

	delimiters := textinput.New()
	delimiters.Placeholder = "Trennzeichen"
	delimiters.Prompt = "› "
	delimiters.CharLimit = 64
	delims := cfg.Delimiters
	if delims == "" {
		delims = config.DefaultDelimiters
	}
	delimiters.SetValue(escapeDelimiters(delims))

	return Model{
		text:              text,
		delimiters:        delimiters,
		focus:             FieldText,
		trimTokens:        cfg.ShouldTrimTokens(),
		ignoreEmptyTokens: cfg.ShouldIgnoreEmptyTokens(),
		rule:              cfg.Rule(),
		width:             80,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.toggleFocus()
			return m, textinput.Blink

		case "ctrl+t":
			m.trimTokens = !m.trimTokens
			return m, nil

		case "ctrl+e":
			m.ignoreEmptyTokens = !m.ignoreEmptyTokens
			return m, nil

		case "ctrl+r":
			if m.rule == stringx.CaseUnicode {
				m.rule = stringx.CaseASCII
			} else {
				m.rule = stringx.CaseUnicode
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == FieldText {
		m.text, cmd = m.text.Update(msg)
	} else {
		m.delimiters, cmd = m.delimiters.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == FieldText {
		m.focus = FieldDelimiters
		m.text.Blur()
		m.delimiters.Focus()
		return
	}
	m.focus = FieldText
	m.delimiters.Blur()
	m.text.Focus()
}

// Focus returns the focused input
func (m Model) Focus() Field { return m.focus }

// Results holds the helper outputs for the current input
type Results struct {
	IsEmpty    bool
	UpperFirst string
	LowerFirst string
	URLPattern string
	Tokens     []string
}

// Results evaluates every helper against the current input
func (m Model) Results() Results {
	text := m.text.Value()
	return Results{
		IsEmpty:    stringx.IsEmpty(text),
		UpperFirst: stringx.UpperFirstWith(text, m.rule),
		LowerFirst: stringx.LowerFirstWith(text, m.rule),
		URLPattern: stringx.StandardURLPattern(text),
		Tokens:     stringx.TokenizeToStringArrayWith(text, m.Delimiters(), m.trimTokens, m.ignoreEmptyTokens),
	}
}

// Delimiters returns the delimiter input with \t, \n and \\ unescaped
func (m Model) Delimiters() string {
	return unescapeDelimiters(m.delimiters.Value())
}

// View renders the playground
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("textkit playground"))
	b.WriteString("\n")

	b.WriteString(m.inputBox("Text", m.text.View(), m.focus == FieldText))
	b.WriteString("\n")
	b.WriteString(m.inputBox("Delimiters", m.delimiters.View(), m.focus == FieldDelimiters))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		option("trim", m.trimTokens), "  ",
		option("ignore empty", m.ignoreEmptyTokens), "  ",
		OptionOnStyle.Render("case: "+m.rule.String()),
	))
	b.WriteString("\n\n")

	r := m.Results()
	b.WriteString(row("IsEmpty", strconv.FormatBool(r.IsEmpty)))
	b.WriteString(row("UpperFirst", strconv.Quote(r.UpperFirst)))
	b.WriteString(row("LowerFirst", strconv.Quote(r.LowerFirst)))
	b.WriteString(row("StandardURLPattern", strconv.Quote(r.URLPattern)))
	b.WriteString(row(fmt.Sprintf("Tokens (%d)", len(r.Tokens)), RenderTokens(r.Tokens)))

	b.WriteString(HelpStyle.Render("tab: Feld wechseln • ctrl+t: trim • ctrl+e: leere Tokens • ctrl+r: Case-Regel • esc: Beenden"))
	return b.String()
}

func (m Model) inputBox(label, input string, focused bool) string {
	style := BoxStyle
	if focused {
		style = FocusedBoxStyle
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(LabelStyle.Render(label) + "\n" + input)
}

func option(name string, on bool) string {
	if on {
		return OptionOnStyle.Render("[x] " + name)
	}
	return OptionOffStyle.Render("[ ] " + name)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value)) + "\n"
}

var delimiterEscapes = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

var delimiterUnescapes = strings.NewReplacer(`\\`, "\\", `\t`, "\t", `\n`, "\n", `\r`, "\r")

func escapeDelimiters(s string) string   { return delimiterEscapes.Replace(s) }
func unescapeDelimiters(s string) string { return delimiterUnescapes.Replace(s) }

// Run starts the playground on the terminal
func Run(cfg config.TextConfig) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
