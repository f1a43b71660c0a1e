package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay0
	colorBorder  = colorSurface1
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	labelFocusedStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	placeholderStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	inputTextStyle    = lipgloss.NewStyle().Foreground(colorText)

	optionStyle         = lipgloss.NewStyle().Foreground(colorText)
	optionSelectedStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorError).
				Bold(true).
				Padding(0, 1)
	successBannerStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorSuccess).
				Bold(true).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2)
	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorTeal).
				Bold(true).
				Padding(0, 2)

	footerStyle = lipgloss.NewStyle().Background(colorMantle)
)
