package home

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/thermoviz/internal/problemgen"
	"github.com/abhisek/thermoviz/internal/router"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/screens/chat"
	"github.com/abhisek/thermoviz/internal/screens/enthalpy"
	"github.com/abhisek/thermoviz/internal/screens/fundamentals"
	"github.com/abhisek/thermoviz/internal/screens/heating"
	hessscreen "github.com/abhisek/thermoviz/internal/screens/hess"
	"github.com/abhisek/thermoviz/internal/screens/history"
	practicescreen "github.com/abhisek/thermoviz/internal/screens/practice"
	"github.com/abhisek/thermoviz/internal/screens/settings"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/tutor"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
)

// Deps are the services the home menu hands to the screens it opens.
// Nil services disable the items that need them.
type Deps struct {
	Tutor            *tutor.Service
	Generator        problemgen.Generator
	Settings         store.SettingsRepo
	Events           store.EventRepo
	AutoplayInterval time.Duration
	LatestVersion    string
}

// Menu indices.
const (
	itemFundamentals = iota
	itemHeating
	itemEnthalpy
	itemHess
	itemPractice
	itemTutor
	itemHistory
	itemSettings
	itemExit
)

var menuLabels = []string{
	"FUNDAMENTALS",
	"HEATING & COOLING",
	"ENTHALPY DIAGRAM",
	"HESS'S LAW",
	"PRACTICE PROBLEMS",
	"ASK CHEVIN",
	"TUTOR HISTORY",
	"TUTOR SETTINGS",
	"EXIT",
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	disabled   map[int]bool
	configured bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	disabled := map[int]bool{
		itemTutor:    deps.Tutor == nil,
		itemHistory:  deps.Events == nil,
		itemSettings: deps.Settings == nil,
	}
	h.disabled = disabled

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := make([]components.MenuItem, len(menuLabels))
	for i, label := range menuLabels {
		items[i] = components.MenuItem{Label: label, Key: strconv.Itoa(i + 1), Disabled: disabled[i]}
	}
	items[itemFundamentals].Action = push(func() screen.Screen { return fundamentals.New() })
	items[itemHeating].Action = push(func() screen.Screen { return heating.New(deps.AutoplayInterval) })
	items[itemEnthalpy].Action = push(func() screen.Screen { return enthalpy.New() })
	items[itemHess].Action = push(func() screen.Screen { return hessscreen.New() })
	items[itemPractice].Action = push(func() screen.Screen { return practicescreen.New(deps.Generator) })
	items[itemTutor].Action = push(func() screen.Screen { return chat.New(deps.Tutor) })
	items[itemHistory].Action = push(func() screen.Screen { return history.New(deps.Events) })
	items[itemSettings].Action = push(func() screen.Screen { return settings.New(deps.Settings) })
	items[itemExit].Action = func() tea.Cmd { return tea.Quit }

	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

// refresh re-reads whether the tutor has a key.
func (h *HomeScreen) refresh() {
	h.configured = h.deps.Tutor != nil && h.deps.Tutor.Configured(context.Background())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(settings.KeyChangedMsg); ok {
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Nine bordered buttons need 27 rows on their own.
	compact := height < 44 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	variant := MascotIdle
	if !h.configured {
		variant = MascotAlert
	}
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenu(menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if !h.configured && h.deps.Tutor != nil {
		sections = append(sections, renderKeyBanner(cw))
	}
	if h.deps.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(h.deps.LatestVersion, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.Frame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "1-9", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
	}
}
