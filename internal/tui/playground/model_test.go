package playground

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(Model)
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(config.TextConfig{})

	if m.Focus() != FieldText {
		t.Errorf("focus = %v, want text", m.Focus())
	}
	if m.Delimiters() != config.DefaultDelimiters {
		t.Errorf("Delimiters() = %q, want %q", m.Delimiters(), config.DefaultDelimiters)
	}
	if !m.trimTokens || !m.ignoreEmptyTokens {
		t.Error("trim and ignore-empty should default to on")
	}
	if m.rule != stringx.CaseUnicode {
		t.Errorf("rule = %v, want unicode", m.rule)
	}
}

func TestModel_Results(t *testing.T) {
	m := typeText(t, NewModel(config.TextConfig{}), "/hello, world")

	r := m.Results()
	if r.IsEmpty {
		t.Error("IsEmpty = true, want false")
	}
	if r.URLPattern != "hello, world" {
		t.Errorf("URLPattern = %q", r.URLPattern)
	}
	if want := []string{"/hello", "world"}; !reflect.DeepEqual(r.Tokens, want) {
		t.Errorf("Tokens = %q, want %q", r.Tokens, want)
	}
}

func TestModel_Toggles(t *testing.T) {
	m := typeText(t, NewModel(config.TextConfig{Delimiters: ","}), "éa, , b")
	if want := []string{"éa", "b"}; !reflect.DeepEqual(m.Results().Tokens, want) {
		t.Errorf("Tokens = %q, want %q", m.Results().Tokens, want)
	}

	m, _ = press(t, m, tea.KeyCtrlT)
	m, _ = press(t, m, tea.KeyCtrlE)
	if want := []string{"éa", " ", " b"}; !reflect.DeepEqual(m.Results().Tokens, want) {
		t.Errorf("Tokens = %q, want %q", m.Results().Tokens, want)
	}

	if got := m.Results().UpperFirst; got != "Éa, , b" {
		t.Errorf("UpperFirst(unicode) = %q", got)
	}
	m, _ = press(t, m, tea.KeyCtrlR)
	if got := m.Results().UpperFirst; got != "éa, , b" {
		t.Errorf("UpperFirst(ascii) = %q", got)
	}
}

func TestModel_EditDelimiters(t *testing.T) {
	m := typeText(t, NewModel(config.TextConfig{Delimiters: ","}), "a|b,c")

	m, _ = press(t, m, tea.KeyTab)
	if m.Focus() != FieldDelimiters {
		t.Fatalf("focus = %v, want delimiters", m.Focus())
	}
	m = typeText(t, m, "|")

	if m.Delimiters() != ",|" {
		t.Errorf("Delimiters() = %q, want \",|\"", m.Delimiters())
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(m.Results().Tokens, want) {
		t.Errorf("Tokens = %q, want %q", m.Results().Tokens, want)
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := press(t, NewModel(config.TextConfig{}), tea.KeyEsc)
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}

func TestModel_View(t *testing.T) {
	m := typeText(t, NewModel(config.TextConfig{}), "x")
	view := m.View()

	for _, want := range []string{"textkit playground", "IsEmpty", "UpperFirst", "StandardURLPattern", "Tokens (1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestDelimiterEscaping(t *testing.T) {
	for _, s := range []string{",; \t\n", `a\b`, ""} {
		if got := unescapeDelimiters(escapeDelimiters(s)); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestRenderTokens(t *testing.T) {
	if !strings.Contains(RenderTokens(nil), "no tokens") {
		t.Error("empty token list should render a placeholder")
	}
	if out := RenderTokens([]string{"alpha", ""}); !strings.Contains(out, "alpha") || !strings.Contains(out, `""`) {
		t.Errorf("RenderTokens() = %q", out)
	}
}
