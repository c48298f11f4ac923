// Package heating is the heating and cooling curve screen with autoplay
// and a molecular view.
package heating

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/autoplay"
	"github.com/abhisek/thermoviz/internal/diagram"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const frameInterval = 120 * time.Millisecond

// generations hands out tick tags. A tick whose tag is not the screen's
// current one belongs to a stopped run and is dropped.
var generations atomic.Uint64

type stepMsg struct{ gen uint64 }

type frameMsg struct{ gen uint64 }

// Screen shows the temperature slider, the curve with a marker, and the
// particle box for the current phase.
type Screen struct {
	seq      autoplay.Sequence
	interval time.Duration
	playing  bool
	stepGen  uint64
	frameGen uint64
	box      *box
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Leaver = (*Screen)(nil)

// New creates the screen at room temperature. A non-positive interval
// means autoplay.DefaultInterval.
func New(interval time.Duration) *Screen {
	if interval <= 0 {
		interval = autoplay.DefaultInterval
	}
	return &Screen{
		seq:      autoplay.NewSequence(thermo.DefaultTemperature, autoplay.DefaultSpeed, false),
		interval: interval,
		box:      newBox(generations.Add(1)),
	}
}

// Temperature is the current slider value.
func (s *Screen) Temperature() float64 { return s.seq.Temp }

// Cooling reports whether the curve is shown for heat removal.
func (s *Screen) Cooling() bool { return s.seq.Cooling }

// Playing reports whether autoplay is running.
func (s *Screen) Playing() bool { return s.playing }

func (s *Screen) Init() tea.Cmd {
	s.frameGen = generations.Add(1)
	return s.frameTick()
}

func (s *Screen) Title() string { return "Heating & Cooling" }

func (s *Screen) KeyHints() []layout.KeyHint {
	play := "Play"
	if s.playing {
		play = "Pause"
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "±1 °C"},
		{Key: "PgUp/PgDn", Description: "±10 °C"},
		{Key: "Space", Description: play},
		{Key: "+/-", Description: "Speed"},
		{Key: "c", Description: "Heat/Cool"},
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) stepTick() tea.Cmd {
	gen := s.stepGen
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (s *Screen) frameTick() tea.Cmd {
	gen := s.frameGen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (s *Screen) play() tea.Cmd {
	if s.seq.Done() {
		return nil
	}
	s.playing = true
	s.stepGen = generations.Add(1)
	return s.stepTick()
}

func (s *Screen) stop() {
	s.playing = false
	s.stepGen = generations.Add(1)
}

// Leave pauses autoplay and retires the particle animation. Ticks already
// in flight carry old tags and are dropped.
func (s *Screen) Leave() {
	s.stop()
	s.frameGen = generations.Add(1)
}

func (s *Screen) setTemp(temp float64) {
	s.seq.Temp = thermo.ClampTemperature(temp)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		if !s.playing || msg.gen != s.stepGen {
			return s, nil
		}
		var done bool
		s.seq, done = s.seq.Next()
		if done {
			s.stop()
			return s, nil
		}
		return s, s.stepTick()

	case frameMsg:
		if msg.gen != s.frameGen {
			return s, nil
		}
		s.box.step(s.molecular())
		return s, s.frameTick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			s.setTemp(s.seq.Temp - 1)
		case "right", "l":
			s.setTemp(s.seq.Temp + 1)
		case "pgdown", "down", "j":
			s.setTemp(s.seq.Temp - 10)
		case "pgup", "up", "k":
			s.setTemp(s.seq.Temp + 10)
		case "space", " ":
			if s.playing {
				s.stop()
				return s, nil
			}
			return s, s.play()
		case "+", "=":
			s.seq.Speed = autoplay.Faster(s.seq.Speed)
		case "-", "_":
			s.seq.Speed = autoplay.Slower(s.seq.Speed)
		case "c":
			s.stop()
			s.seq.Cooling = !s.seq.Cooling
		case "r":
			s.stop()
			s.setTemp(thermo.DefaultTemperature)
		}
	}
	return s, nil
}

func (s *Screen) molecular() thermo.Molecular {
	return thermo.MolecularParams(thermo.ClassifyPhase(s.seq.Temp), s.seq.Temp)
}

func (s *Screen) View(width, height int) string {
	temp := s.seq.Temp
	phase := thermo.ClassifyPhase(temp)
	process := thermo.ProcessInfo(temp, s.seq.Cooling)
	curveColor := theme.Hex(thermo.CurveColor(s.seq.Cooling))

	var b strings.Builder

	mode := "Heating"
	if s.seq.Cooling {
		mode = "Cooling"
	}
	state := "paused"
	if s.playing {
		state = "playing"
	}
	head := fmt.Sprintf("  %s  %s  %s",
		lipgloss.NewStyle().Foreground(curveColor).Bold(true).Render(mode),
		theme.Body.Render(fmt.Sprintf("%.1f °C", temp)),
		theme.Hint.Render(fmt.Sprintf("autoplay %s at %.1f °C/tick", state, s.seq.Speed)))
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString("  " + components.Slider(temp, thermo.MinTemp, thermo.MaxTemp, min(width-4, 72), theme.Hex(thermo.ColorMarker)))
	b.WriteString("\n\n")

	// Process card beside the particle box.
	info := strings.Join([]string{
		theme.Heading.Render("Phase: " + string(phase)),
		theme.Body.Render(process.Name),
		theme.Hint.Render(process.Energy),
	}, "\n")
	mol := s.molecular()
	particles := s.box.render(mol)
	if width >= 90 {
		infoWidth := max(width-boxCols-10, 20)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			"  "+lipgloss.NewStyle().Width(infoWidth).Render(info), "  ", particles))
	} else {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Width(max(width-2, 20)).Render(info))
	}
	b.WriteString("\n")

	used := lipgloss.Height(b.String())
	if chart := diagram.Heating(temp, s.seq.Cooling, width-2, height-used); chart != nil {
		b.WriteString(chart.Render())
	} else {
		b.WriteString(theme.Hint.Render("  Enlarge the terminal to see the heating curve."))
	}
	return b.String()
}
