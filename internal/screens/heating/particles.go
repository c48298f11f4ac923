package heating

import (
	"math"
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/abhisek/thermoviz/internal/ui/theme"
)

const (
	boxCols   = 28
	boxRows   = 7
	particleN = 24
)

type particle struct {
	x, y   float64
	vx, vy float64
	homeX  float64
	homeY  float64
}

// box is the molecular view: particles on a lattice that loosen as the
// link strength drops.
type box struct {
	rng       *rand.Rand
	particles []particle
}

func newBox(seed uint64) *box {
	b := &box{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	perRow := 6
	for i := range particleN {
		hx := 2 + float64(i%perRow)*float64(boxCols-4)/float64(perRow-1)
		hy := 1 + float64(i/perRow)*float64(boxRows-2)/float64(particleN/perRow-1)
		b.particles = append(b.particles, particle{
			x: hx, y: hy, homeX: hx, homeY: hy,
			vx: b.rng.Float64()*2 - 1,
			vy: b.rng.Float64()*2 - 1,
		})
	}
	return b
}

// step advances one animation frame under m.
func (b *box) step(m thermo.Molecular) {
	for i := range b.particles {
		p := &b.particles[i]
		noiseX := (b.rng.Float64()*2 - 1) * m.Vibration * 0.3
		noiseY := (b.rng.Float64()*2 - 1) * m.Vibration * 0.15

		if m.LinkStrength >= 0.5 {
			// Bound in the lattice: vibrate about home.
			p.x = p.homeX + noiseX
			p.y = p.homeY + noiseY
			continue
		}

		p.x += p.vx*m.Speed*0.4 + noiseX
		p.y += p.vy*m.Speed*0.2 + noiseY
		// Weak links pull particles back towards the lattice.
		p.x += (p.homeX - p.x) * m.LinkStrength * 0.2
		p.y += (p.homeY - p.y) * m.LinkStrength * 0.2

		if p.x < 0 {
			p.x, p.vx = -p.x, math.Abs(p.vx)
		}
		if p.x > boxCols-1 {
			p.x, p.vx = 2*(boxCols-1)-p.x, -math.Abs(p.vx)
		}
		if p.y < 0 {
			p.y, p.vy = -p.y, math.Abs(p.vy)
		}
		if p.y > boxRows-1 {
			p.y, p.vy = 2*(boxRows-1)-p.y, -math.Abs(p.vy)
		}
	}
}

func (b *box) render(m thermo.Molecular) string {
	grid := make([][]rune, boxRows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", boxCols))
	}
	for _, p := range b.particles {
		x := min(max(int(math.Round(p.x)), 0), boxCols-1)
		y := min(max(int(math.Round(p.y)), 0), boxRows-1)
		grid[y][x] = '●'
	}

	dot := lipgloss.NewStyle().Foreground(theme.Hex(m.Color))
	border := lipgloss.NewStyle().Foreground(theme.Border)
	var sb strings.Builder
	sb.WriteString(border.Render("┌" + strings.Repeat("─", boxCols) + "┐"))
	sb.WriteString("\n")
	for _, row := range grid {
		sb.WriteString(border.Render("│"))
		sb.WriteString(dot.Render(string(row)))
		sb.WriteString(border.Render("│"))
		sb.WriteString("\n")
	}
	sb.WriteString(border.Render("└" + strings.Repeat("─", boxCols) + "┘"))
	return sb.String()
}
