package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"almanac/internal/calendar"
)

// renderFormModal draws the create/edit event form.
func (m Model) renderFormModal() string {
	f := m.form
	if f == nil {
		return ""
	}

	title := "New Event"
	if f.mode == calendar.ModalEdit {
		title = "Edit Event"
	}

	innerW := m.modalWidth() - 4 // frame padding
	fieldW := innerW - modalLabelWidth

	rows := []string{
		m.styles.ModalTitleStyle.Render(title),
		"",
		m.formRow("Title", f.focus == focusTitle, m.inputView(&f.title, f.focus == focusTitle, fieldW)),
		m.formRow("Description", f.focus == focusDescription, m.inputView(&f.description, f.focus == focusDescription, fieldW)),
		m.formRow("Start", f.focus == focusStart, m.inputView(&f.start, f.focus == focusStart, fieldW)),
		m.formRow("End", f.focus == focusEnd, m.inputView(&f.end, f.focus == focusEnd, fieldW)),
		m.formRow("Category", f.focus == focusCategory, m.pickerView(categoryLabel(f.categories[f.category]), f.focus == focusCategory)),
		m.formRow("Color", f.focus == focusColor, m.colorPickerView(f.colors[f.color], f.focus == focusColor)),
	}

	if len(f.violations) > 0 {
		rows = append(rows, "")
		for _, v := range f.violations {
			rows = append(rows, m.styles.ViolationStyle.Render("! "+v))
		}
	}

	rows = append(rows, "",
		m.styles.ModalHintStyle.Render("enter save   tab next field   esc cancel"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.styles.ModalStyle.Width(m.modalWidth()).Render(body)
}

// renderConfirmModal draws the delete confirmation.
func (m Model) renderConfirmModal() string {
	if m.confirming == nil {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitleStyle.Render("Delete Event"),
		"",
		m.styles.ModalInputStyle.Render(m.confirming.Title),
		"",
		m.styles.ConfirmStyle.Render("y delete")+
			m.styles.ModalHintStyle.Render("   n keep"),
	)
	return m.styles.ModalStyle.Width(m.modalWidth()).Render(body)
}

func (m Model) modalWidth() int {
	w := 56
	if w > m.width-4 {
		w = m.width - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) formRow(label string, focused bool, field string) string {
	labelStyle := m.styles.ModalLabelStyle
	if focused {
		labelStyle = labelStyle.Foreground(m.styles.colorAccent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), field)
}

func (m Model) inputView(in *textinput.Model, focused bool, w int) string {
	style := m.styles.ModalInputStyle
	if focused {
		style = m.styles.ModalInputFocusStyle
	}
	return style.Width(w).MaxWidth(w).Render(in.View())
}

func (m Model) pickerView(value string, focused bool) string {
	style := m.styles.ModalPickerStyle
	if focused {
		style = m.styles.ModalPickerFocusStyle
		return style.Render("‹ " + value + " ›")
	}
	return style.Render("  " + value)
}

func (m Model) colorPickerView(color string, focused bool) string {
	swatch := m.styles.SwatchStyle(color).Render("██ ")
	return swatch + m.pickerView(color, focused)
}

func categoryLabel(value string) string {
	if value == "" {
		return "None"
	}
	return value
}
