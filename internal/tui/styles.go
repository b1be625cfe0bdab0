// Package tui provides the terminal user interface for almanac.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"almanac/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	TitleStyle         lipgloss.Style
	PeriodStyle        lipgloss.Style
	ViewTabStyle       lipgloss.Style
	ViewTabActiveStyle lipgloss.Style

	// Day-of-week headings shared by both views
	WeekdayStyle      lipgloss.Style
	WeekdayTodayStyle lipgloss.Style

	// Month view day numbers
	DayStyle         lipgloss.Style
	DayOutsideStyle  lipgloss.Style
	DayTodayStyle    lipgloss.Style
	DaySelectedStyle lipgloss.Style
	MoreStyle        lipgloss.Style

	// Week view chrome
	TimeColumnStyle lipgloss.Style
	SlotEmptyStyle  lipgloss.Style

	// Footer
	HelpStyle    lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	ConfirmStyle lipgloss.Style

	// Modal
	ModalStyle            lipgloss.Style
	ModalTitleStyle       lipgloss.Style
	ModalLabelStyle       lipgloss.Style
	ModalInputStyle       lipgloss.Style
	ModalInputFocusStyle  lipgloss.Style
	ModalPickerStyle      lipgloss.Style
	ModalPickerFocusStyle lipgloss.Style
	ModalHintStyle        lipgloss.Style
	ViolationStyle        lipgloss.Style
	ModalBackdropColor    lipgloss.Color
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.PeriodStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg)

	s.ViewTabStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.ViewTabActiveStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.WeekdayStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFgMuted)

	s.WeekdayTodayStyle = s.WeekdayStyle.
		Foreground(s.colorAccent)

	s.DayStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.DayOutsideStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.DayTodayStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnToday).
		Background(s.colorToday).
		Bold(true)

	s.DaySelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.MoreStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Width(timeColWidth).
		Align(lipgloss.Right)

	s.SlotEmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.ConfirmStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnWarning).
		Background(s.colorWarning).
		Bold(true).
		Padding(0, 1)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Modal.Border).
		Background(palette.Modal.Bg).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(palette.Modal.Bg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Muted).
		Background(palette.Modal.Bg).
		Width(modalLabelWidth)

	s.ModalInputStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Text).
		Background(palette.Modal.Bg)

	s.ModalInputFocusStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Text).
		Background(s.colorBgSelection)

	s.ModalPickerStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Text).
		Background(palette.Modal.Bg)

	s.ModalPickerFocusStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Muted).
		Background(palette.Modal.Bg)

	s.ViolationStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(palette.Modal.Bg)

	s.ModalBackdropColor = palette.Modal.Backdrop

	return s
}

// EventStyle builds the block style for an event from its stored color.
func (s *Styles) EventStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.EventFg(color)).
		Background(s.palette.EventBg(color))
}

// SwatchStyle previews a raw color, used by the form's color picker.
func (s *Styles) SwatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(s.palette.Modal.Bg)
}
