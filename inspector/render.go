package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/simpstr/internal/termwidth"
)

const labelWidth = 6

// View renders the text, its hex dump and its counts, one per line.
func (m Model) View() string {
	lines := []string{
		m.renderTextLine(),
		m.renderHexLine(),
		m.renderStatsLine(),
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) contentWidth() int {
	if m.width <= labelWidth {
		return 0
	}
	return m.width - labelWidth
}

func (m Model) label(s string) string {
	return m.cfg.Style.Label.Render(termwidth.Pad(s, labelWidth))
}

func (m Model) renderTextLine() string {
	if m.text.IsEmpty() {
		return m.label("text") + m.cfg.Style.Empty.Render("(empty)")
	}
	s := m.text.String()
	if m.width > 0 {
		s = termwidth.Truncate(s, m.contentWidth())
	}
	return m.label("text") + m.cfg.Style.Text.Render(s)
}

func (m Model) renderHexLine() string {
	p := m.text.Bytes()
	if m.width > 0 {
		// Each byte takes two hex digits plus a separator.
		if max := (m.contentWidth() + 1) / 3; len(p) > max {
			p = p[:max]
		}
	}

	var sb strings.Builder
	sb.WriteString(m.label("hex"))
	for i, b := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.byteStyle(b).Render(fmt.Sprintf("%02x", b)))
	}
	return sb.String()
}

func (m Model) renderStatsLine() string {
	st := m.Stats()
	return m.label("") + m.cfg.Style.Stats.Render(fmt.Sprintf(
		"bytes %d  chars %d  runes %d  width %d",
		st.Bytes, st.Chars, st.Runes, st.Width,
	))
}

func (m Model) byteStyle(b byte) lipgloss.Style {
	switch {
	case b&0x80 == 0:
		return m.cfg.Style.ASCII
	case b&0xC0 == 0x80:
		return m.cfg.Style.Cont
	default:
		return m.cfg.Style.Lead
	}
}
