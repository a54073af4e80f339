package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{Title: "sample.bin", Data: []byte("Hello, pager! 0123456789"), Config: hexpp.Default()})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
}

func TestPagerRendersDumpWithoutTitle(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(m.content, "Length:") {
		t.Fatalf("dump title should be replaced by the header, got %q", m.content)
	}
	if !strings.HasPrefix(m.content, "0000:    48 65 6c 6c") {
		t.Fatalf("unexpected content %q", m.content)
	}
	view := m.View()
	if !strings.Contains(view, "sample.bin") || !strings.Contains(view, "24 (0x18) bytes") {
		t.Fatalf("header missing from view:\n%s", view)
	}
}

func TestPagerToggles(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('a'))
	if m.cfg.ASCII || strings.Contains(m.content, "Hello") {
		t.Fatalf("expected ascii panel off, got %q", m.content)
	}

	m = update(t, m, runeKey('w'))
	if m.cfg.Width != 32 {
		t.Fatalf("expected width 32, got %d", m.cfg.Width)
	}
	if strings.Count(m.content, "\n") != 0 {
		t.Fatalf("expected a single 32 byte row, got %q", m.content)
	}

	m = update(t, m, runeKey('c'))
	if !m.compact || strings.HasPrefix(m.content, "0000:") {
		t.Fatalf("expected compact rendering, got %q", m.content)
	}
	if !strings.Contains(m.View(), "compact") {
		t.Fatal("header should show compact mode")
	}
}

func TestPagerQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestNextWidth(t *testing.T) {
	cases := map[int]int{8: 16, 16: 32, 32: 8, 0: 16, 5: 16}
	for in, want := range cases {
		if got := nextWidth(in); got != want {
			t.Fatalf("nextWidth(%d): expected %d, got %d", in, want, got)
		}
	}
}
