// Package pager is an interactive, scrollable hex dump viewer.
package pager

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// widthSteps are the row widths cycled by the width key.
var widthSteps = []int{8, 16, 32}

type Options struct {
	Title  string
	Data   []byte
	Config hexpp.Config
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
	// InputTTY reads keys from the controlling terminal, for data piped
	// through stdin.
	InputTTY bool
}

type Model struct {
	title    string
	data     []byte
	cfg      hexpp.Config
	compact  bool
	content  string
	viewport viewport.Model
	ready    bool
	keys     KeyMap
	styles   Styles
}

// New builds a pager model. The title line of the dump is replaced by the
// pager header.
func New(opts Options) Model {
	cfg := opts.Config
	cfg.Title = false
	m := Model{
		title:  opts.Title,
		data:   opts.Data,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	m.content = m.render()
	return m
}

// Run shows the pager until the user quits.
func Run(opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	switch {
	case opts.Input != nil:
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	case opts.InputTTY:
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if _, err := tea.NewProgram(New(opts), programOpts...).Run(); err != nil {
		return errdef.Wrap(errdef.CodeUI, err, "run pager")
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleASCII):
			m.cfg.ASCII = !m.cfg.ASCII
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.CycleWidth):
			m.cfg.Width = nextWidth(m.cfg.Width)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.ToggleCompact):
			m.compact = !m.compact
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m *Model) refresh() {
	m.content = m.render()
	if m.ready {
		m.viewport.SetContent(m.content)
	}
}

func (m Model) render() string {
	cfg := m.cfg
	if m.compact {
		cfg = cfg.Compact()
	}
	return hexpp.RenderWith(m.data, cfg)
}

func (m Model) headerView() string {
	mode := fmt.Sprintf("width %d", m.cfg.Width)
	if m.compact {
		mode = "compact"
	}
	title := m.title
	if title == "" {
		title = "stdin"
	}
	size := len(m.data)
	return m.styles.Header.Render(fmt.Sprintf("%s  %d (0x%x) bytes  %s", title, size, size, mode))
}

func (m Model) footerView() string {
	hints := make([]string, 0, len(m.keys.hints())+1)
	for _, b := range m.keys.hints() {
		h := b.Help()
		hints = append(hints, m.styles.HintKey.Render(h.Key)+" "+h.Desc)
	}
	if m.ready {
		hints = append(hints, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}
	return m.styles.Footer.Render(strings.Join(hints, "  "))
}

func nextWidth(current int) int {
	for i, w := range widthSteps {
		if w == current {
			return widthSteps[(i+1)%len(widthSteps)]
		}
	}
	return hexpp.DefaultWidth
}
