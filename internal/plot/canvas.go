package plot

import (
	"errors"
	"strings"

	"charm.land/lipgloss/v2"
)

// ErrOutOfBounds is returned when a write falls outside the canvas.
var ErrOutOfBounds = errors.New("position out of bounds")

// Point is a cell position.
type Point struct {
	X, Y int
}

// Canvas is a fixed-size grid of runes with an optional colour per cell.
// Colours are hex strings such as "#ff5722". Canvas is not safe for
// concurrent writes.
type Canvas struct {
	cells  [][]rune
	colors [][]string
	width  int
	height int
}

// New returns a blank canvas, or nil when either dimension is not positive.
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]rune, height)
	colors := make([][]string, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		colors[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells, colors: colors, width: width, height: height}
}

// Size returns the width and height in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the rune at (x, y), or a space outside the canvas.
func (c *Canvas) Get(x, y int) rune {
	if !c.inBounds(x, y) {
		return ' '
	}
	return c.cells[y][x]
}

// Color returns the colour at (x, y).
func (c *Canvas) Color(x, y int) string {
	if !c.inBounds(x, y) {
		return ""
	}
	return c.colors[y][x]
}

// Set writes r with color at (x, y).
func (c *Canvas) Set(x, y int, r rune, color string) error {
	if !c.inBounds(x, y) {
		return ErrOutOfBounds
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
	return nil
}

func (c *Canvas) setClipped(x, y int, r rune, color string) {
	_ = c.Set(x, y, r, color)
}

// Clear resets every cell to an uncoloured space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
			c.colors[y][x] = ""
		}
	}
}

// HLine draws a horizontal run from x1 to x2 inclusive, clipped.
func (c *Canvas) HLine(x1, x2, y int, r rune, color string) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.setClipped(x, y, r, color)
	}
}

// VLine draws a vertical run from y1 to y2 inclusive, clipped.
func (c *Canvas) VLine(x, y1, y2 int, r rune, color string) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.setClipped(x, y, r, color)
	}
}

// Line draws from p1 to p2 with Bresenham's algorithm. The glyph follows
// the local slope: '─' flat, '│' steep, '╱' or '╲' diagonal.
func (c *Canvas) Line(p1, p2 Point, color string) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	xInc, yInc := 1, 1
	if p1.X > p2.X {
		xInc = -1
	}
	if p1.Y > p2.Y {
		yInc = -1
	}

	glyph := lineGlyph(p2.X-p1.X, p2.Y-p1.Y)
	x, y := p1.X, p1.Y
	if dx > dy {
		e := dx / 2
		for x != p2.X {
			c.setClipped(x, y, glyph, color)
			e -= dy
			if e < 0 {
				y += yInc
				e += dx
			}
			x += xInc
		}
	} else {
		e := dy / 2
		for y != p2.Y {
			c.setClipped(x, y, glyph, color)
			e -= dx
			if e < 0 {
				x += xInc
				e += dy
			}
			y += yInc
		}
	}
	c.setClipped(p2.X, p2.Y, glyph, color)
}

// lineGlyph picks a stroke character for a segment with the given deltas
// (screen Y grows downward).
func lineGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0 || adx >= 3*ady:
		return '─'
	case adx == 0 || ady >= 3*adx:
		return '│'
	case (dx > 0) == (dy < 0):
		return '╱'
	default:
		return '╲'
	}
}

// Polyline connects consecutive points.
func (c *Canvas) Polyline(points []Point, color string) {
	for i := 1; i < len(points); i++ {
		c.Line(points[i-1], points[i], color)
	}
	if len(points) == 1 {
		c.setClipped(points[0].X, points[0].Y, '·', color)
	}
}

// Arrow draws a vertical arrow at column x from y1 to y2 with a head at
// y2. Equal endpoints draw nothing.
func (c *Canvas) Arrow(x, y1, y2 int, color string) {
	if y1 == y2 {
		return
	}
	c.VLine(x, y1, y2, '│', color)
	head := '▼'
	if y2 < y1 {
		head = '▲'
	}
	c.setClipped(x, y2, head, color)
}

// HArrow draws a horizontal arrow on row y from x1 to x2 with a head at x2.
func (c *Canvas) HArrow(x1, x2, y int, color string) {
	if x1 == x2 {
		return
	}
	c.HLine(x1, x2, y, '─', color)
	head := '▶'
	if x2 < x1 {
		head = '◀'
	}
	c.setClipped(x2, y, head, color)
}

// Text writes s starting at (x, y), clipping cells outside the canvas.
func (c *Canvas) Text(x, y int, s, color string) {
	for _, r := range s {
		c.setClipped(x, y, r, color)
		x++
	}
}

// TextCentered writes s centred on column x.
func (c *Canvas) TextCentered(x, y int, s, color string) {
	c.Text(x-len([]rune(s))/2, y, s, color)
}

// String returns the canvas without colour, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y, row := range c.cells {
		sb.WriteString(string(row))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render returns the canvas with runs of equal colour styled by lipgloss.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y, row := range c.cells {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.colors[y][x] == c.colors[y][start] {
				continue
			}
			sb.WriteString(styled(string(row[start:x]), c.colors[y][start]))
			start = x
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func styled(s, color string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
