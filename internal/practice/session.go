package practice

import "strings"

// Attempt is the learner's state for one problem.
type Attempt struct {
	Answer          string
	Submitted       bool
	Result          Result
	ShowExplanation bool
	ShowHint        bool
}

// Session is the mutable overlay on top of a problem set. It is owned by a
// single screen and is not safe for concurrent use.
type Session struct {
	problems     []Problem
	topic        Topic
	attempts     map[string]*Attempt
	showFormulas bool
}

// NewSession starts a session over problems with TopicAll selected.
func NewSession(problems []Problem) *Session {
	return &Session{
		problems: append([]Problem(nil), problems...),
		topic:    TopicAll,
		attempts: make(map[string]*Attempt),
	}
}

// Topic returns the selected topic.
func (s *Session) Topic() Topic { return s.topic }

// SetTopic changes the filter and discards every attempt.
func (s *Session) SetTopic(t Topic) {
	s.topic = t
	s.attempts = make(map[string]*Attempt)
}

// Problems returns the problems visible under the current topic.
func (s *Session) Problems() []Problem {
	return Filter(s.problems, s.topic)
}

// Add appends a problem, e.g. one produced by the generator. A problem with
// an id already in the session replaces the old one and clears its attempt.
func (s *Session) Add(p Problem) {
	for i := range s.problems {
		if s.problems[i].ID == p.ID {
			s.problems[i] = p
			delete(s.attempts, p.ID)
			return
		}
	}
	s.problems = append(s.problems, p)
}

// Problem looks up a problem by id.
func (s *Session) Problem(id string) (Problem, bool) {
	for _, p := range s.problems {
		if p.ID == id {
			return p, true
		}
	}
	return Problem{}, false
}

// Attempt returns a copy of the attempt for id.
func (s *Session) Attempt(id string) Attempt {
	if a, ok := s.attempts[id]; ok {
		return *a
	}
	return Attempt{}
}

func (s *Session) attempt(id string) *Attempt {
	a, ok := s.attempts[id]
	if !ok {
		a = &Attempt{}
		s.attempts[id] = a
	}
	return a
}

// SetAnswer records the typed answer. Editing a submitted answer withdraws
// the submission.
func (s *Session) SetAnswer(id, text string) {
	a := s.attempt(id)
	a.Answer = text
	if a.Submitted {
		a.Submitted = false
		a.Result = Incorrect
	}
}

// CanSubmit reports whether id has a non-empty, unsubmitted answer.
func (s *Session) CanSubmit(id string) bool {
	a, ok := s.attempts[id]
	return ok && !a.Submitted && strings.TrimSpace(a.Answer) != ""
}

// Submit grades the current answer for id. The second result is false when
// there was nothing to submit.
func (s *Session) Submit(id string) (Result, bool) {
	p, ok := s.Problem(id)
	if !ok || !s.CanSubmit(id) {
		return Incorrect, false
	}
	a := s.attempts[id]
	a.Result = p.Grade(a.Answer)
	a.Submitted = true
	return a.Result, true
}

// ToggleExplanation shows or hides the worked explanation for id.
func (s *Session) ToggleExplanation(id string) {
	a := s.attempt(id)
	a.ShowExplanation = !a.ShowExplanation
}

// ToggleHint shows or hides the hint for id.
func (s *Session) ToggleHint(id string) {
	a := s.attempt(id)
	a.ShowHint = !a.ShowHint
}

// Reset clears the answer, submission and explanation for id.
func (s *Session) Reset(id string) {
	delete(s.attempts, id)
}

// ResetAll clears every attempt but keeps the topic.
func (s *Session) ResetAll() {
	s.attempts = make(map[string]*Attempt)
}

// ShowFormulas reports whether the formula panel is open.
func (s *Session) ShowFormulas() bool { return s.showFormulas }

// ToggleFormulas opens or closes the formula panel.
func (s *Session) ToggleFormulas() { s.showFormulas = !s.showFormulas }

// Progress is the percentage of visible problems that are submitted.
func (s *Session) Progress() float64 {
	visible := s.Problems()
	if len(visible) == 0 {
		return 0
	}
	done := 0
	for _, p := range visible {
		if a, ok := s.attempts[p.ID]; ok && a.Submitted {
			done++
		}
	}
	return float64(done) * 100 / float64(len(visible))
}

// Score counts correct submissions among visible problems.
func (s *Session) Score() (correct, submitted int) {
	for _, p := range s.Problems() {
		if a, ok := s.attempts[p.ID]; ok && a.Submitted {
			submitted++
			if a.Result == Correct {
				correct++
			}
		}
	}
	return correct, submitted
}
