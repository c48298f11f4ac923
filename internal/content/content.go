// Package content serves the static fundamentals lessons embedded in the
// binary.
package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// SpecificHeatUnit is the unit of every SpecificHeat value.
const SpecificHeatUnit = "J/g·°C"

//go:embed fundamentals.yaml
var fundamentalsYAML []byte

// Bullet is a term with its definition.
type Bullet struct {
	Term string `yaml:"term" json:"term"`
	Text string `yaml:"text" json:"text"`
}

// Formula is a displayed equation with a legend for its symbols.
type Formula struct {
	Expression string `yaml:"expression" json:"expression"`
	Legend     string `yaml:"legend" json:"legend"`
}

// Section is one lesson card.
type Section struct {
	ID         string   `yaml:"id" json:"id"`
	Title      string   `yaml:"title" json:"title"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Bullets    []Bullet `yaml:"bullets,omitempty" json:"bullets,omitempty"`
	Formula    *Formula `yaml:"formula,omitempty" json:"formula,omitempty"`
}

// SpecificHeat is a reference heat capacity in SpecificHeatUnit.
type SpecificHeat struct {
	Substance string  `yaml:"substance" json:"substance"`
	Value     float64 `yaml:"value" json:"value"`
}

// Topic is a home-menu entry.
type Topic struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Fundamentals is the whole lesson document.
type Fundamentals struct {
	Title         string         `yaml:"title" json:"title"`
	Tagline       string         `yaml:"tagline" json:"tagline"`
	Intro         string         `yaml:"intro" json:"intro"`
	Topics        []Topic        `yaml:"topics" json:"topics"`
	Sections      []Section      `yaml:"sections" json:"sections"`
	SpecificHeats []SpecificHeat `yaml:"specific_heats" json:"specificHeats"`
}

var load = sync.OnceValues(func() (*Fundamentals, error) {
	return Parse(fundamentalsYAML)
})

// Load returns the embedded lessons, parsed once.
func Load() (*Fundamentals, error) {
	return load()
}

// MustLoad is Load for callers that cannot continue without content.
func MustLoad() *Fundamentals {
	f, err := Load()
	if err != nil {
		panic(err)
	}
	return f
}

// Parse decodes and checks a fundamentals document.
func Parse(data []byte) (*Fundamentals, error) {
	var f Fundamentals
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fundamentals: %w", err)
	}
	seen := make(map[string]bool, len(f.Sections))
	for i, s := range f.Sections {
		if s.ID == "" || s.Title == "" {
			return nil, fmt.Errorf("section %d: id and title are required", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return &f, nil
}

// Section finds a section by id.
func (f *Fundamentals) Section(id string) (Section, bool) {
	for _, s := range f.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SpecificHeat looks up a substance, ignoring case.
func (f *Fundamentals) SpecificHeat(substance string) (float64, bool) {
	for _, h := range f.SpecificHeats {
		if strings.EqualFold(h.Substance, substance) {
			return h.Value, true
		}
	}
	return 0, false
}

// Text renders a section as unwrapped plain text.
func (s Section) Text() string {
	var b strings.Builder
	for i, p := range s.Paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	for _, bl := range s.Bullets {
		fmt.Fprintf(&b, "\n  • %s: %s", bl.Term, bl.Text)
	}
	if s.Formula != nil {
		fmt.Fprintf(&b, "\n\n    %s\n  %s", s.Formula.Expression, s.Formula.Legend)
	}
	return b.String()
}
