// Package tui renders the appointment booking form as a Bubble Tea model.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/apptbook/internal/booking"
	"github.com/jask/apptbook/internal/doctors"
	"github.com/jask/apptbook/internal/logging"
)

const (
	fieldCount  = int(booking.FieldTime) + 1
	focusButton = fieldCount
	focusCount  = fieldCount + 1

	defaultTitle = "Book an Appointment"
	buttonLabel  = "Book Appointment"
)

// Ticker schedules fn after d. tea.Tick is the production ticker.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Model is the appointment form widget.
type Model struct {
	form   *booking.Form
	inputs [fieldCount]textinput.Model
	doctor doctorSelect
	focus  int

	title  string
	keys   keyMap
	help   help.Model
	tick   Ticker
	log    *logging.Logger
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithTicker replaces tea.Tick, mainly so tests can fire dismissals directly.
func WithTicker(t Ticker) Option {
	return func(m *Model) {
		if t != nil {
			m.tick = t
		}
	}
}

// New builds the form over the supplied doctor list. onBook is called once
// per successful submission and may be nil.
func New(docs []doctors.Doctor, onBook booking.BookFunc, opts ...Option) *Model {
	m := &Model{
		form:   booking.New(onBook),
		doctor: newDoctorSelect(docs),
		title:  defaultTitle,
		keys:   newKeyMap(),
		help:   help.New(),
		tick:   tea.Tick,
		log:    logging.Discard(),
	}
	for _, f := range booking.Fields {
		if f == booking.FieldDoctor {
			continue
		}
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = f.Placeholder()
		in.PlaceholderStyle = placeholderStyle
		in.TextStyle = inputTextStyle
		in.CharLimit = 120
		m.inputs[f] = in
	}
	for _, opt := range opts {
		opt(m)
	}
	m.setFocus(0)
	return m
}

// Form exposes the underlying state machine.
func (m *Model) Form() *booking.Form { return m.form }

// Close tears the widget down. Pending banner dismissals become no-ops.
func (m *Model) Close() { m.form.Close() }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.Closed() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w := max(10, m.cardWidth()-8)
		for i := range m.inputs {
			m.inputs[i].Width = w
		}
		return m, nil
	case dismissMsg:
		if m.form.Dismiss(msg.token) {
			m.log.Debug("success banner dismissed")
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	}

	switch m.focus {
	case focusButton:
		if msg.Type == tea.KeySpace {
			return m, m.submit()
		}
		return m, nil
	case int(booking.FieldDoctor):
		m.handleDoctorKey(msg)
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleDoctorKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyLeft:
		m.doctor.Move(-1)
	case tea.KeyRight:
		m.doctor.Move(1)
	case tea.KeyBackspace:
		m.doctor.Backspace()
	case tea.KeyRunes, tea.KeySpace:
		m.doctor.Type(string(msg.Runes))
	default:
		return
	}
	m.form.SetDoctor(m.doctor.Value())
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus >= fieldCount || m.focus == int(booking.FieldDoctor) {
		return nil
	}
	field := booking.Field(m.focus)
	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	if v := m.inputs[field].Value(); v != m.form.Get(field) {
		m.form.Set(field, v)
	}
	return cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	i = (i%focusCount + focusCount) % focusCount
	if m.focus < fieldCount {
		m.inputs[m.focus].Blur()
	}
	if m.focus == int(booking.FieldDoctor) {
		m.doctor.ResetQuery()
	}
	m.focus = i
	m.keys.Option.SetEnabled(i == int(booking.FieldDoctor))
	if i < fieldCount && i != int(booking.FieldDoctor) {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	out, err := m.form.Submit()
	switch {
	case err == nil:
		m.log.Info("appointment submitted",
			"doctor", out.Booked.Doctor,
			"date", out.Booked.Date,
			"time", out.Booked.Time,
		)
		m.syncFromForm()
		tok := out.Dismiss
		return m.tick(out.DismissAfter, func(time.Time) tea.Msg {
			return dismissMsg{token: tok}
		})
	case errors.Is(err, booking.ErrIncomplete):
		m.log.Debug("submission rejected", "reason", "incomplete")
	default:
		m.log.Warn("booking callback failed", "err", err)
	}
	return nil
}

// syncFromForm copies the form's field values back into the widgets.
func (m *Model) syncFromForm() {
	for _, f := range booking.Fields {
		if f == booking.FieldDoctor {
			m.doctor.SetValue(m.form.Get(f))
			continue
		}
		m.inputs[f].SetValue(m.form.Get(f))
	}
}
