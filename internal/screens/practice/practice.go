// Package practice is the practice problems screen.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	domain "github.com/abhisek/thermoviz/internal/practice"
	"github.com/abhisek/thermoviz/internal/problemgen"
	"github.com/abhisek/thermoviz/internal/screen"
	"github.com/abhisek/thermoviz/internal/ui/components"
	"github.com/abhisek/thermoviz/internal/ui/layout"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const generateTimeout = 45 * time.Second

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// problemReadyMsg carries the result of an async generation.
type problemReadyMsg struct {
	Problem *domain.Problem
	Err     error
}

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

// Screen lists the problems for the selected topic. One problem is
// selected at a time and the answer field edits its answer.
type Screen struct {
	session    *domain.Session
	generator  problemgen.Generator
	selected   int
	input      components.TextInput
	generating bool
	spinner    int
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New opens the built-in catalog. gen may be nil, which disables
// generated problems.
func New(gen problemgen.Generator) *Screen {
	return &Screen{
		session:   domain.NewSession(domain.Catalog()),
		generator: gen,
		input:     components.NewTextInput("Your answer", true, 16),
	}
}

func (s *Screen) Init() tea.Cmd { return s.input.Init() }

func (s *Screen) Title() string { return "Practice" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Problem"},
		{Key: "Enter", Description: "Check"},
		{Key: "?", Description: "Hint"},
		{Key: "x", Description: "Explain"},
		{Key: "f", Description: "Formulas"},
		{Key: "t", Description: "Topic"},
		{Key: "ctrl+r", Description: "Reset"},
	}
	if s.generator != nil {
		hints = append(hints, layout.KeyHint{Key: "g", Description: "New problem"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Session exposes the answer state.
func (s *Screen) Session() *domain.Session { return s.session }

// Current returns the selected problem.
func (s *Screen) Current() (domain.Problem, bool) {
	problems := s.session.Problems()
	if len(problems) == 0 {
		return domain.Problem{}, false
	}
	return problems[min(s.selected, len(problems)-1)], true
}

func (s *Screen) selectProblem(i int) {
	n := len(s.session.Problems())
	if n == 0 {
		s.selected = 0
		return
	}
	s.selected = max(0, min(i, n-1))
	s.syncInput()
}

// syncInput loads the selected problem's saved answer into the field.
func (s *Screen) syncInput() {
	if p, ok := s.Current(); ok {
		s.input.SetValue(s.session.Attempt(p.ID).Answer)
	} else {
		s.input.Reset()
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = "Could not generate a problem: " + msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.session.Add(*msg.Problem)
		for i, p := range s.session.Problems() {
			if p.ID == msg.Problem.ID {
				s.selectProblem(i)
				break
			}
		}
		return s, nil

	case spinnerTickMsg:
		if !s.generating {
			return s, nil
		}
		s.spinner = (s.spinner + 1) % len(spinnerFrames)
		return s, s.spinnerTick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	p, ok := s.Current()

	switch msg.String() {
	case "up", "shift+tab":
		s.selectProblem(s.selected - 1)
		return s, nil
	case "down", "tab":
		s.selectProblem(s.selected + 1)
		return s, nil
	case "enter":
		if ok {
			if res, graded := s.session.Submit(p.ID); graded {
				s.input.Submit(res == domain.Correct)
			}
		}
		return s, nil
	case "?":
		if ok {
			s.session.ToggleHint(p.ID)
		}
		return s, nil
	case "x":
		if ok {
			s.session.ToggleExplanation(p.ID)
		}
		return s, nil
	case "f":
		s.session.ToggleFormulas()
		return s, nil
	case "t":
		topics := domain.Topics()
		next := topics[0]
		for i, t := range topics {
			if t == s.session.Topic() {
				next = topics[(i+1)%len(topics)]
			}
		}
		s.session.SetTopic(next)
		s.selectProblem(0)
		return s, nil
	case "ctrl+r":
		if ok {
			s.session.Reset(p.ID)
			s.input.Reset()
		}
		return s, nil
	case "g":
		return s, s.generate()
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if ok && s.input.Value() != before {
		s.session.SetAnswer(p.ID, s.input.Value())
	}
	return s, cmd
}

func (s *Screen) generate() tea.Cmd {
	if s.generator == nil || s.generating {
		return nil
	}
	s.generating = true
	s.errMsg = ""

	input := problemgen.GenerateInput{Topic: s.session.Topic()}
	for _, p := range s.session.Problems() {
		input.PriorQuestions = append(input.PriorQuestions, p.Question)
	}
	gen := s.generator
	return tea.Batch(func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		p, err := gen.Generate(ctx, input)
		return problemReadyMsg{Problem: p, Err: err}
	}, s.spinnerTick())
}

func (s *Screen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return spinnerTickMsg(t) })
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	correct, submitted := s.session.Score()
	bar := components.NewProgressBar("", s.session.Progress()/100, true, max(min(width-40, 40), 10))
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		theme.Heading.Render("Topic: "+s.session.Topic().Label()),
		bar.View(),
		theme.Hint.Render(fmt.Sprintf("%d/%d correct", correct, submitted))))
	b.WriteString("\n")

	problems := s.session.Problems()
	if len(problems) == 0 {
		b.WriteString(theme.Hint.Render("  No problems for this topic yet."))
		if s.generator != nil {
			b.WriteString(theme.Hint.Render(" Press g to generate one."))
		}
		b.WriteString("\n")
	}

	for i, p := range problems {
		att := s.session.Attempt(p.ID)
		mark := theme.Hint.Render("○")
		if att.Submitted {
			if att.Result == domain.Correct {
				mark = theme.Correct.Render("✓")
			} else {
				mark = theme.Incorrect.Render("✗")
			}
		}
		label := fmt.Sprintf("%d. [%s] %s", i+1, p.Difficulty, truncate(p.Question, max(width-16, 20)))
		if i == s.selected {
			b.WriteString("  " + mark + " " + theme.Selected.Render(label) + "\n")
		} else {
			b.WriteString("  " + mark + " " + theme.Unselected.Render(label) + "\n")
		}
	}

	if p, ok := s.Current(); ok {
		b.WriteString("\n")
		b.WriteString(s.renderProblem(p, width))
	}

	if s.generating {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Primary).
			Render(spinnerFrames[s.spinner]+" Generating a new problem..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + theme.Incorrect.Render(s.errMsg))
	}

	if s.session.ShowFormulas() {
		b.WriteString("\n\n" + theme.Heading.Render("  Formula reference") + "\n")
		for _, f := range domain.Formulas() {
			b.WriteString(fmt.Sprintf("  %s  %s\n    %s\n",
				theme.Body.Bold(true).Render(f.Name+":"), f.Formula, theme.Hint.Render(f.Note)))
		}
	}
	return b.String()
}

func (s *Screen) renderProblem(p domain.Problem, width int) string {
	att := s.session.Attempt(p.ID)
	body := lipgloss.NewStyle().Width(max(width-6, 20))

	var b strings.Builder
	b.WriteString(body.Render(theme.Body.Render(p.Question)))
	b.WriteString("\n\n")

	unit := ""
	if p.Unit != "" {
		unit = " " + theme.Hint.Render(p.Unit)
	}
	b.WriteString("Answer: " + s.input.View() + unit)
	if att.Submitted {
		if att.Result == domain.Correct {
			b.WriteString("  " + theme.Correct.Render("Correct!"))
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Incorrect. The answer is "+p.CorrectAnswer()))
		}
	}
	b.WriteString("\n")

	if att.ShowHint && p.Hint != "" {
		b.WriteString("\n" + theme.Hint.Render("Hint: "+p.Hint) + "\n")
	}
	if att.ShowExplanation {
		if p.Formula != "" {
			b.WriteString("\n" + theme.Heading.Render("Formula: ") + p.Formula + "\n")
		}
		b.WriteString(body.Render(theme.Body.Render(p.Explanation)) + "\n")
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(theme.Card.Render(b.String()))
}

// truncate flattens s to one line of at most n runes.
func truncate(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
