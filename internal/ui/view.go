package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flashtools/flashlog/internal/state"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderCommandBar())
	b.WriteByte('\n')
	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.vp.View())
	}
	b.WriteByte('\n')
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderHeader() string {
	sep := m.styles.Header.Render("  ")

	var phase string
	switch m.snapshot.Phase {
	case state.PhaseConnected:
		phase = m.styles.Connected.Render("● " + m.snapshot.Phase.String())
	case state.PhaseListening:
		phase = m.styles.Listening.Render("○ " + m.snapshot.Phase.String())
	default:
		phase = m.styles.Stopped.Render("○ " + m.snapshot.Phase.String())
	}

	parts := []string{
		m.styles.HeaderValue.Render("flashlog"),
		phase,
	}
	if m.snapshot.Addr != "" {
		parts = append(parts,
			m.styles.HeaderLabel.Render("on ")+m.styles.HeaderValue.Render(m.snapshot.Addr))
	}
	parts = append(parts,
		m.styles.HeaderLabel.Render("buffered ")+
			m.styles.HeaderValue.Render(fmt.Sprintf("%d", m.pipe.BufferLen())),
		m.styles.HeaderLabel.Render("shown ")+
			m.styles.HeaderValue.Render(fmt.Sprintf("%d", m.shown)),
	)
	if dropped := m.pipe.Dropped(); dropped > 0 {
		parts = append(parts,
			m.styles.Stopped.Render(fmt.Sprintf("dropped %d (press r)", dropped)))
	}
	if m.snapshot.LastError != nil {
		parts = append(parts,
			m.styles.Stopped.Render("ERR ")+
				m.styles.Header.Render(truncate(m.snapshot.LastError.Error(), 48)))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar shows the active input while editing, key hints
// otherwise.
func (m Model) renderCommandBar() string {
	switch m.editing {
	case editKeyword:
		return m.keywordInput.View()
	case editExcludes:
		return m.excludesInput.View()
	}

	type hint struct{ key, desc string }
	follow := "follow"
	if m.follow {
		follow = "unfollow"
	}
	hints := []hint{
		{"/", "filter"},
		{"e", "excludes"},
		{"r", "refilter"},
		{"c", "clear"},
		{"f", follow},
		{"?", "help"},
		{"q", "quit"},
	}

	segments := make([]string, 0, len(hints)+2)
	for _, h := range hints {
		segments = append(segments,
			m.styles.HintKey.Render(h.key)+m.styles.Hint.Render(":"+h.desc))
	}
	if keyword := m.pipe.Keyword(); keyword != "" {
		segments = append(segments,
			m.styles.HintKey.Render("/"+truncate(keyword, 18)))
	}
	if excluded := m.pipe.ExcludedSenders(); len(excluded) > 0 {
		segments = append(segments,
			m.styles.Hint.Render(fmt.Sprintf("excluding %d", len(excluded))))
	}
	return strings.Join(segments, "  ")
}

func (m Model) renderStatusLine() string {
	if m.follow {
		return m.styles.Hint.Render("following tail")
	}
	return m.styles.Hint.Render(fmt.Sprintf("scroll %3.0f%%", m.vp.ScrollPercent()*100))
}

func (m Model) renderHelp() string {
	rows := []string{
		"",
		"  /        edit the text filter (enter applies, esc cancels)",
		"  e        edit the excluded sender list, comma separated",
		"  r        refilter the buffered history with current settings",
		"  c        clear the log buffer and the display",
		"  f        toggle follow mode",
		"  ↑/↓      scroll (pgup/pgdn for pages)",
		"  ?        close this help",
		"  q        quit",
		"",
		"  Excluded senders hide matching lines; the text filter shows",
		"  only lines containing the keyword. Exclusion wins when both",
		"  apply. Hidden lines stay buffered and reappear on refilter",
		"  when the settings change.",
	}
	text := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Width(m.vp.Width).
		Height(m.vp.Height).
		Render(text)
}

// truncate shortens a string to max characters with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
