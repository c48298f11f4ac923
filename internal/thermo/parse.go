package thermo

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads the longest decimal number at the start of text,
// ignoring leading whitespace, the way a browser's parseFloat does:
// "125400 J" gives 125400 and "abc" gives NaN. A leading Unicode minus
// sign is accepted as '-'. The second result is false when no number
// was found.
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimLeft(text, " \t\r\n")
	s = strings.Replace(s, "−", "-", 1)

	end := numericPrefix(s)
	if end == 0 {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// ParseFloat only fails here on overflow; it still returns ±Inf.
		if math.IsInf(v, 0) {
			return v, true
		}
		return math.NaN(), false
	}
	return v, true
}

// ParseEnergy is ParseNumber with the diagram convention that anything
// unparseable or non-finite ("1e400", "Infinity") means 0.
func ParseEnergy(text string) float64 {
	v, ok := ParseNumber(text)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns the length of the leading float literal in s, or 0.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
