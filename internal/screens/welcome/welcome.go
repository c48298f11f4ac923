package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/router"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Heat, energy and enthalpy, one step at a time."

// thermometerRows is the height of the mercury column.
const thermometerRows = 8

// steam frames drift above the thermometer once it is hot
var steamFrames = []string{"~ ~ ~", " ~ ~ ", "~ ~ ~"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// level is how many mercury rows are filled at the current point of the
// animation. The column fills completely by phase2End.
func (w *WelcomeScreen) level() int {
	if w.elapsed >= phase2End {
		return thermometerRows
	}
	return int(w.elapsed * thermometerRows / phase2End)
}

func (w *WelcomeScreen) renderThermometer() string {
	glass := lipgloss.NewStyle().Foreground(theme.TextDim)
	hot := lipgloss.NewStyle().Foreground(theme.Primary)

	var lines []string
	if w.elapsed >= phase1End && w.level() == thermometerRows {
		frame := steamFrames[w.tickCount%len(steamFrames)]
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, glass.Render(" ╭─╮ "))

	filled := w.level()
	for row := 0; row < thermometerRows; row++ {
		if thermometerRows-row <= filled {
			lines = append(lines, glass.Render(" │")+hot.Render("█")+glass.Render("│ "))
		} else {
			lines = append(lines, glass.Render(" │ │ "))
		}
	}
	lines = append(lines, glass.Render("╭┘")+hot.Render("█")+glass.Render("└╮"))
	lines = append(lines, glass.Render("│")+hot.Render("███")+glass.Render("│"))
	lines = append(lines, glass.Render("╰───╯"))
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderThermometer()}

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
