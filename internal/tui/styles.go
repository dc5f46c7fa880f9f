package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "!"
)

// Painter renders text with a style only in ModeStyled.
type Painter struct {
	mode Mode
}

func NewPainter(mode Mode) Painter {
	return Painter{mode: mode}
}

func (p Painter) Styled() bool { return p.mode == ModeStyled }

func (p Painter) Render(style lipgloss.Style, text string) string {
	if p.mode != ModeStyled {
		return text
	}
	return style.Render(text)
}

func (p Painter) Title(text string) string   { return p.Render(TitleStyle, text) }
func (p Painter) Success(text string) string { return p.Render(SuccessStyle, text) }
func (p Painter) Warning(text string) string { return p.Render(WarningStyle, text) }
func (p Painter) Error(text string) string   { return p.Render(ErrorStyle, text) }
func (p Painter) Muted(text string) string   { return p.Render(MutedStyle, text) }
