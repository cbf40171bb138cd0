// ABOUTME: Interactive event-viewer app driven through the session.Driver facade
// ABOUTME: Rolling event log, fuzzy filtering, glamour help overlay, suspend/resume

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tuicore/pkg/tui"
	"github.com/mauromedda/tuicore/pkg/tui/fuzzy"
	"github.com/mauromedda/tuicore/pkg/tui/key"
	"github.com/mauromedda/tuicore/pkg/tui/session"
)

const maxLogEntries = 500

const helpMarkdown = `# tuicore-demo

An event viewer for the tuicore session library.

## Keys

- **q** / **Ctrl+C** — quit
- **/** — fuzzy-filter the event log (Enter to keep, Esc to clear)
- **?** — toggle this help
- **Ctrl+Z** — suspend to the shell (fg to resume)
`

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// app consumes session events and draws a rolling log. It is written
// against the Driver facade, so the same loop runs interactively and
// headless.
type app struct {
	drv session.Driver
	ses *session.Session // nil when headless

	entries []string
	ticks   int
	frames  int
	focused bool

	filtering bool
	filter    string
	showHelp  bool
	helpText  string
	helpWidth int

	quit bool
}

func newApp(drv session.Driver) *app {
	a := &app{drv: drv, focused: true}
	if s, ok := drv.(*session.Session); ok {
		a.ses = s
	}
	return a
}

// run is the event loop: Next until quit, drawing on Render events.
func (a *app) run(ctx context.Context) error {
	for !a.quit {
		ev, err := a.drv.Next(ctx)
		if err != nil {
			return fmt.Errorf("waiting for event: %w", err)
		}
		if err := a.handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) handle(ev session.Event) error {
	switch e := ev.(type) {
	case session.InitEvent:
		a.log("init")
	case session.TickEvent:
		a.ticks++
	case session.RenderEvent:
		a.frames++
		return a.drv.Draw(a.draw)
	case session.KeyEvent:
		return a.handleKey(e.Key)
	case session.MouseEvent:
		a.log(fmt.Sprintf("mouse %s %s at (%d, %d)", e.Mouse.Button, e.Mouse.Action, e.Mouse.X, e.Mouse.Y))
	case session.PasteEvent:
		a.log(fmt.Sprintf("paste %d bytes", len(e.Text)))
	case session.FocusGainedEvent:
		a.focused = true
		a.log("focus gained")
	case session.FocusLostEvent:
		a.focused = false
		a.log("focus lost")
	case session.ResizeEvent:
		a.log(fmt.Sprintf("resize to %dx%d", e.Width, e.Height))
	case session.ErrorEvent:
		a.log(errorStyle.Render(fmt.Sprintf("input error: %v", e.Err)))
	}
	return nil
}

func (a *app) handleKey(k key.Key) error {
	if a.filtering {
		switch k.Type {
		case key.KeyEscape:
			a.filtering = false
			a.filter = ""
		case key.KeyEnter:
			a.filtering = false
		case key.KeyBackspace:
			if len(a.filter) > 0 {
				a.filter = a.filter[:len(a.filter)-1]
			}
		case key.KeyRune:
			if !k.Ctrl && !k.Alt {
				a.filter += string(k.Rune)
			}
		}
		return nil
	}

	switch {
	case k.Type == key.KeyRune && k.Ctrl && k.Rune == 'c':
		a.quit = true
	case k.Type == key.KeyRune && k.Ctrl && k.Rune == 'z':
		return a.suspend()
	case k.Type == key.KeyRune && !k.Ctrl && !k.Alt && k.Rune == 'q':
		a.quit = true
	case k.Type == key.KeyRune && !k.Ctrl && !k.Alt && k.Rune == '/':
		a.filtering = true
		a.filter = ""
	case k.Type == key.KeyRune && !k.Ctrl && !k.Alt && k.Rune == '?':
		a.showHelp = !a.showHelp
	case k.Type == key.KeyEscape:
		a.showHelp = false
		a.filter = ""
	default:
		a.log("key " + k.String())
	}
	return nil
}

// suspend hands the terminal back to the shell until the process is
// resumed with fg.
func (a *app) suspend() error {
	if a.ses == nil {
		return nil
	}
	if err := a.ses.Suspend(); err != nil {
		return err
	}
	// Execution continues here after SIGCONT.
	return a.ses.Resume()
}

func (a *app) log(entry string) {
	a.entries = append(a.entries, entry)
	if len(a.entries) > maxLogEntries {
		a.entries = a.entries[len(a.entries)-maxLogEntries:]
	}
}

// visible returns the log entries to show, fuzzy-filtered when a filter
// is active, newest first, at most n.
func (a *app) visible(n int) []string {
	entries := a.entries
	if a.filter != "" {
		matches := fuzzy.Find(a.filter, entries)
		entries = make([]string, len(matches))
		for i, m := range matches {
			entries[i] = m.Str
		}
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}

func (a *app) draw(f *tui.Frame) error {
	w, h := f.Size()

	if a.showHelp {
		f.WriteLines(strings.Split(a.renderHelp(w), "\n"))
		return nil
	}

	f.WriteLine(titleStyle.Render("tuicore-demo") + footerStyle.Render("  press ? for help"))
	f.WriteLine("")

	for _, entry := range a.visible(h - 4) {
		f.WriteLine(eventStyle.Render(entry))
	}

	focus := "focused"
	if !a.focused {
		focus = "unfocused"
	}
	footer := footerStyle.Render(fmt.Sprintf("ticks %d · frames %d · %s", a.ticks, a.frames, focus))
	if a.filtering {
		footer = filterStyle.Render("/" + a.filter + "▌")
	} else if a.filter != "" {
		footer = filterStyle.Render("filter: "+a.filter) + "  " + footer
	}
	f.SetLine(h-1, footer)
	return nil
}

// renderHelp renders the help markdown once per width.
func (a *app) renderHelp(width int) string {
	if a.helpText != "" && a.helpWidth == width {
		return a.helpText
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}

	a.helpText = strings.TrimRight(out, "\n ")
	a.helpWidth = width
	return a.helpText
}
