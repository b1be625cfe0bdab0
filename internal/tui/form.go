package tui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/calendar"
	"almanac/internal/config"
	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// Form-level messages for fields the domain validation never sees because
// they fail to parse at all.
const (
	msgStartInvalid = "Start date is invalid"
	msgEndInvalid   = "End date is invalid"
)

// Form field focus order.
const (
	focusTitle = iota
	focusDescription
	focusStart
	focusEnd
	focusCategory
	focusColor
	focusCount
)

// eventForm is the state behind the create/edit modal.
type eventForm struct {
	mode     calendar.ModalMode
	original *event.Event // nil in create mode

	title       textinput.Model
	description textinput.Model
	start       textinput.Model
	end         textinput.Model

	categories []string
	category   int
	colors     []string
	color      int

	focus      int
	violations []string
}

func newCreateForm(cfg *config.Config, day time.Time) *eventForm {
	f := newForm(cfg)
	f.mode = calendar.ModalCreate

	morning := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
	f.start.SetValue(dateutil.FormatDateTime(morning))
	f.end.SetValue(dateutil.FormatDateTime(morning.Add(time.Hour)))
	f.color = pickIndex(&f.colors, cfg.Calendar.DefaultColor)
	f.title.Focus()
	return f
}

func newEditForm(cfg *config.Config, ev *event.Event) *eventForm {
	f := newForm(cfg)
	f.mode = calendar.ModalEdit
	f.original = ev

	f.title.SetValue(ev.Title)
	f.description.SetValue(ev.Description)
	f.start.SetValue(dateutil.FormatDateTime(ev.StartDate))
	f.end.SetValue(dateutil.FormatDateTime(ev.EndDate))
	f.category = pickIndex(&f.categories, ev.Category)
	f.color = pickIndex(&f.colors, ev.Color)
	f.title.Focus()
	return f
}

func newForm(cfg *config.Config) *eventForm {
	title := textinput.New()
	title.Placeholder = "Event title"
	title.CharLimit = event.MaxTitleLen
	title.Prompt = ""

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = event.MaxDescriptionLen
	description.Prompt = ""

	start := textinput.New()
	start.Placeholder = dateutil.LayoutDateTime
	start.Prompt = ""

	end := textinput.New()
	end.Placeholder = dateutil.LayoutDateTime
	end.Prompt = ""

	return &eventForm{
		title:       title,
		description: description,
		start:       start,
		end:         end,
		categories:  append([]string{""}, cfg.Calendar.Categories...),
		colors:      slices.Clone(cfg.Calendar.Colors),
	}
}

// pickIndex returns the index of value in *opts, inserting it when absent.
// The empty value maps to the first slot for option lists led by "".
func pickIndex(opts *[]string, value string) int {
	if value == "" {
		return 0
	}
	if i := slices.Index(*opts, value); i >= 0 {
		return i
	}
	*opts = append(*opts, value)
	return len(*opts) - 1
}

func (f *eventForm) focusNext() {
	f.setFocus((f.focus + 1) % focusCount)
}

func (f *eventForm) focusPrev() {
	f.setFocus((f.focus + focusCount - 1) % focusCount)
}

func (f *eventForm) setFocus(focus int) {
	f.focus = focus
	for i, in := range f.inputs() {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *eventForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.description, &f.start, &f.end}
}

// onPicker reports whether focus sits on the category or color picker.
func (f *eventForm) onPicker() bool {
	return f.focus == focusCategory || f.focus == focusColor
}

// cycle steps the focused picker through its options.
func (f *eventForm) cycle(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	switch f.focus {
	case focusCategory:
		f.category = (f.category + step + len(f.categories)) % len(f.categories)
	case focusColor:
		f.color = (f.color + step + len(f.colors)) % len(f.colors)
	}
}

// update forwards input to the focused text field.
func (f *eventForm) update(msg tea.Msg) tea.Cmd {
	inputs := f.inputs()
	if f.focus >= len(inputs) {
		return nil
	}
	var cmd tea.Cmd
	*inputs[f.focus], cmd = inputs[f.focus].Update(msg)
	return cmd
}

// parseDates reads the two date fields. Empty fields stay zero so the
// domain validation reports them as missing; malformed fields produce a
// form-level violation.
func (f *eventForm) parseDates() (start, end time.Time, violations []string) {
	if v := strings.TrimSpace(f.start.Value()); v != "" {
		t, err := dateutil.ParseDateTime(v)
		if err != nil {
			violations = append(violations, msgStartInvalid)
		} else {
			start = t
		}
	}
	if v := strings.TrimSpace(f.end.Value()); v != "" {
		t, err := dateutil.ParseDateTime(v)
		if err != nil {
			violations = append(violations, msgEndInvalid)
		} else {
			end = t
		}
	}
	return start, end, violations
}

// draft builds the create payload. Field rules stay with the manager; only
// unparseable dates are rejected here.
func (f *eventForm) draft() (event.Draft, []string) {
	start, end, violations := f.parseDates()
	if len(violations) > 0 {
		return event.Draft{}, violations
	}
	return event.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		StartDate:   start,
		EndDate:     end,
		Color:       f.colors[f.color],
		Category:    f.categories[f.category],
	}, nil
}

// patch builds the delta between the form and the original event. Untouched
// fields stay nil.
func (f *eventForm) patch() (event.Patch, []string) {
	start, end, violations := f.parseDates()
	if len(violations) > 0 {
		return event.Patch{}, violations
	}

	var p event.Patch
	if v := f.title.Value(); v != f.original.Title {
		p.Title = &v
	}
	if v := f.description.Value(); v != f.original.Description {
		p.Description = &v
	}
	if !start.Equal(f.original.StartDate) {
		p.StartDate = &start
	}
	if !end.Equal(f.original.EndDate) {
		p.EndDate = &end
	}
	if v := f.colors[f.color]; v != f.original.Color {
		p.Color = &v
	}
	if v := f.categories[f.category]; v != f.original.Category {
		p.Category = &v
	}
	return p, nil
}
