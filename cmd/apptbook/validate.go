package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/apptbook/internal/booking"
	"github.com/jask/apptbook/internal/doctors"
	"github.com/jask/apptbook/internal/tui"
)

// runValidation drives the form headlessly through an incomplete and a
// complete submission and checks the callback, reset and dismiss behaviour.
func runValidation() error {
	var booked []booking.Appointment
	var pending []func(time.Time) tea.Msg
	var delays []time.Duration

	docs := []doctors.Doctor{{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology"}}
	m := tui.New(docs, func(a booking.Appointment) error {
		booked = append(booked, a)
		return nil
	}, tui.WithTicker(func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		delays = append(delays, d)
		pending = append(pending, fn)
		return nil
	}))
	defer m.Close()

	want := booking.Appointment{Name: "Jane", Email: "jane@x.com", Doctor: "Dr. Smith", Date: "2024-05-01", Time: "09:30"}
	form := m.Form()

	form.SetEmail(want.Email)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(booked) != 0 {
		return fmt.Errorf("incomplete form invoked callback")
	}
	if got := form.Notice().Error; got != booking.IncompleteMessage {
		return fmt.Errorf("incomplete banner = %q, want %q", got, booking.IncompleteMessage)
	}

	for _, f := range booking.Fields {
		form.Set(f, fieldOf(want, f))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(booked) != 1 {
		return fmt.Errorf("callback calls = %d, want 1", len(booked))
	}
	if booked[0] != want {
		return fmt.Errorf("callback got %+v, want %+v", booked[0], want)
	}
	if form.Fields() != (booking.Appointment{}) {
		return fmt.Errorf("fields not reset: %+v", form.Fields())
	}
	if form.Notice().Success != booking.SuccessMessage {
		return errors.New("success banner missing after booking")
	}
	if len(delays) != 1 || delays[0] != booking.DismissDelay {
		return fmt.Errorf("dismiss delays = %v, want [%v]", delays, booking.DismissDelay)
	}

	m.Update(pending[0](time.Now()))
	if form.Notice().Success != "" {
		return errors.New("success banner not dismissed")
	}
	return nil
}

func fieldOf(a booking.Appointment, f booking.Field) string {
	switch f {
	case booking.FieldName:
		return a.Name
	case booking.FieldEmail:
		return a.Email
	case booking.FieldDoctor:
		return a.Doctor
	case booking.FieldDate:
		return a.Date
	case booking.FieldTime:
		return a.Time
	default:
		return ""
	}
}
