package inspector

import (
	"bytes"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/simpstr/utf8text"
)

// Model is a Bubble Tea component that edits and inspects a utf8text.Text.
type Model struct {
	cfg Config

	text  utf8text.Text
	stash utf8text.Text

	version uint64
	focused bool

	width, height int
}

// New returns a focused Model holding cfg.Text. A zero KeyMap is replaced
// with DefaultKeyMap.
func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{
		cfg:     cfg,
		text:    utf8text.FromString(cfg.Text),
		focused: true,
	}
}

// Text returns a copy of the inspected text.
func (m Model) Text() utf8text.Text { return m.text.Clone() }

// Stashed returns a copy of the stashed text.
func (m Model) Stashed() utf8text.Text { return m.stash.Clone() }

func (m Model) Stats() Stats { return statsOf(m.text) }

// Version increments on every text change.
func (m Model) Version() uint64 { return m.version }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Update handles window size and key messages. Keys are ignored while blurred.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Backspace):
		m.mutate(deleteLast)
	case key.Matches(msg, km.Clear):
		m.mutate(func(t *utf8text.Text) { t.Clear() })
	case key.Matches(msg, km.Double):
		m.mutate(func(t *utf8text.Text) { *t = utf8text.Concat(*t, *t) })
	case key.Matches(msg, km.Stash):
		if m.text.IsEmpty() {
			return
		}
		m.mutate(func(t *utf8text.Text) { m.stash = t.Take() })
	case key.Matches(msg, km.Restore):
		m.mutate(func(t *utf8text.Text) { t.Assign(m.stash) })
	case msg.Type == tea.KeySpace:
		m.mutate(func(t *utf8text.Text) { t.Append(utf8text.FromString(" ")) })
	case msg.Type == tea.KeyRunes && !msg.Alt:
		s := string(msg.Runes)
		m.mutate(func(t *utf8text.Text) { t.Append(utf8text.FromString(s)) })
	}
}

// mutate applies fn and reports the change when the content differs.
func (m *Model) mutate(fn func(t *utf8text.Text)) {
	prev, prevAlloc := m.text.Bytes(), m.text.Allocated()
	fn(&m.text)
	if prevAlloc == m.text.Allocated() && bytes.Equal(prev, m.text.Bytes()) {
		return
	}
	m.version++
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			Version: m.version,
			Stats:   statsOf(m.text),
			Text:    m.text.String(),
		})
	}
}

// deleteLast drops the final UTF-8 sequence, or a single byte when the tail
// is not valid UTF-8.
func deleteLast(t *utf8text.Text) {
	p := t.Bytes()
	if len(p) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(p)
	*t = utf8text.FromBytes(p[:len(p)-size])
}
