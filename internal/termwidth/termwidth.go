package termwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the terminal cell width of s.
func Width(s string) int {
	if s == "" {
		return 0
	}
	w := runewidth.StringWidth(s)
	if w == 0 {
		w = uniseg.StringWidth(s)
	}
	return w
}

// Truncate returns the longest prefix of s, cut on grapheme cluster
// boundaries, that fits in max cells.
func Truncate(s string, max int) string {
	if s == "" || max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}

	g := uniseg.NewGraphemes(s)
	used := 0
	var sb strings.Builder
	for g.Next() {
		c := g.Str()
		w := Width(c)
		if used+w > max {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// Pad right-pads s with spaces to w cells. Wider input is returned as is.
func Pad(s string, w int) string {
	n := w - Width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
