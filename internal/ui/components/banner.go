package components

import (
	"strings"
)

// glyphs is a 5x5 block font covering the letters the app needs.
var glyphs = map[rune][5]string{
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  "},
	'H': {"#   #", "#   #", "#####", "#   #", "#   #"},
	'E': {"#####", "#    ", "#### ", "#    ", "#####"},
	'R': {"#### ", "#   #", "#### ", "#  # ", "#   #"},
	'M': {"#   #", "## ##", "# # #", "#   #", "#   #"},
	'O': {" ### ", "#   #", "#   #", "#   #", " ### "},
	'V': {"#   #", "#   #", "#   #", " # # ", "  #  "},
	'I': {"#####", "  #  ", "  #  ", "  #  ", "#####"},
	'Z': {"#####", "   # ", "  #  ", " #   ", "#####"},
	' ': {"   ", "   ", "   ", "   ", "   "},
}

// BlockText renders text in the block font. Unknown runes are skipped.
func BlockText(text string) string {
	var rows [5]strings.Builder
	first := true
	for _, r := range strings.ToUpper(text) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(strings.ReplaceAll(g[i], "#", "█"))
		}
		first = false
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}

// BlockTextWidth is the rendered width of text in the block font.
func BlockTextWidth(text string) int {
	w, n := 0, 0
	for _, r := range strings.ToUpper(text) {
		if g, ok := glyphs[r]; ok {
			w += len([]rune(g[0]))
			n++
		}
	}
	if n > 1 {
		w += n - 1
	}
	return w
}
