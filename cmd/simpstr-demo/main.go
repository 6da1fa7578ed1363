package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/simpstr"
	"github.com/iw2rmb/simpstr/inspector"
)

const sampleText = "héllo, 世界"

type model struct {
	inspector inspector.Model
}

func newModel(text string) model {
	cfg := inspector.Config{
		Text:  text,
		Style: inspector.DefaultStyle(),
		OnChange: func(ev inspector.ChangeEvent) {
			slog.Debug("text changed",
				"version", ev.Version,
				"bytes", ev.Stats.Bytes,
				"chars", ev.Stats.Chars,
				"runes", ev.Stats.Runes,
			)
		},
	}
	return model{inspector: inspector.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.inspector = m.inspector.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inspector, cmd = m.inspector.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.inspector.View() + "\n\n" + fmt.Sprintf("simpstr %s  ctrl+l clear  ctrl+d double  ctrl+s stash  ctrl+r restore  esc quit", simpstr.VersionTag())
}

func main() {
	if os.Getenv("SIMPSTR_DEBUG") != "" {
		f, err := tea.LogToFile("simpstr-debug.log", "simpstr")
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	text := sampleText
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	p := tea.NewProgram(newModel(text), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
