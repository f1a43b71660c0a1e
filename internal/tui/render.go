package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/apptbook/internal/booking"
)

const maxCardWidth = 64

func (m *Model) View() string {
	card := cardStyle.Width(m.cardWidth()).Render(m.renderBody())
	footer := m.renderFooter()
	if m.width <= 0 || m.height <= 0 {
		return card + "\n" + footer
	}
	bodyHeight := max(1, m.height-lipgloss.Height(footer))
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, card)
	return body + "\n" + footer
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return maxCardWidth
	}
	return max(24, min(maxCardWidth, m.width-4))
}

func (m *Model) renderBody() string {
	inner := m.cardWidth() - cardStyle.GetHorizontalFrameSize()
	lines := []string{titleStyle.Render(truncate(m.title, inner)), ""}

	n := m.form.Notice()
	if n.Error != "" {
		lines = append(lines, errorBannerStyle.Render(truncate(n.Error, inner-2)), "")
	}
	if n.Success != "" {
		lines = append(lines, successBannerStyle.Render(truncate(n.Success, inner-2)), "")
	}

	for _, f := range booking.Fields {
		lines = append(lines, m.renderLabel(f))
		if f == booking.FieldDoctor {
			lines = append(lines, m.renderDoctorSelect(inner)...)
		} else {
			lines = append(lines, m.inputs[f].View())
		}
		lines = append(lines, "")
	}

	btn := buttonStyle
	if m.focus == focusButton {
		btn = buttonFocusedStyle
	}
	lines = append(lines, btn.Render(buttonLabel))
	return strings.Join(lines, "\n")
}

func (m *Model) renderLabel(f booking.Field) string {
	if m.focus == int(f) {
		return labelFocusedStyle.Render(f.Label())
	}
	return labelStyle.Render(f.Label())
}

func (m *Model) renderDoctorSelect(width int) []string {
	opts := m.doctor.Options()
	focused := m.focus == int(booking.FieldDoctor)
	if !focused {
		label := opts[m.doctor.cursor]
		style := optionStyle
		if m.doctor.cursor == 0 {
			style = placeholderStyle
		}
		return []string{"  " + style.Render(truncate(label, width-2))}
	}

	lines := make([]string, 0, len(opts)+1)
	for i, label := range opts {
		prefix := "  "
		style := optionStyle
		if i == 0 {
			style = placeholderStyle
		}
		if i == m.doctor.cursor {
			prefix = "> "
			style = optionSelectedStyle
		}
		lines = append(lines, prefix+style.Render(truncate(label, width-2)))
	}
	if q := m.doctor.Query(); q != "" {
		lines = append(lines, placeholderStyle.Render("search: "+truncate(q, width-8)))
	}
	return lines
}

func (m *Model) renderFooter() string {
	line := m.help.View(m.keys)
	width := m.width
	if width <= 0 {
		return line
	}
	return footerStyle.Render(padRight(ansi.Truncate(line, width, ""), width))
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
