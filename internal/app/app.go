package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/router"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/screens/home"
	"github.com/abhisek/thermoviz/internal/screens/welcome"
	"github.com/abhisek/thermoviz/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Deps home.Deps

	// Version is shown on the right of the header.
	Version string

	// SkipWelcome opens the home menu directly.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	version string
	width   int
	height  int
}

// newAppModel creates the model, starting on the splash screen unless
// opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(opts.Deps) }

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}
	return AppModel{
		router:  router.New(first),
		version: opts.Version,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.version != "" {
		status = "v" + m.version
	}
	header := layout.RenderHeader(title, status, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
