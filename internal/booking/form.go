// Package booking holds the appointment form state machine: field values,
// presence validation, submission, and the transient notification banners.
//
// It has no rendering concerns. Front ends drive it with Set/Submit and
// schedule the returned dismiss token after Outcome.DismissAfter.
package booking

import (
	"errors"
	"fmt"
	"time"
)

const (
	// SuccessMessage is shown after a successful submission.
	SuccessMessage = "Appointment booked successfully!"
	// IncompleteMessage is shown when Submit finds an empty field.
	IncompleteMessage = "All fields are required!"
	// DismissDelay is how long the success banner stays visible.
	DismissDelay = 3000 * time.Millisecond
)

// ErrIncomplete is returned by Submit when any field is empty.
var ErrIncomplete = errors.New("booking: all fields are required")

// CallbackError wraps a failure returned by the booking callback.
type CallbackError struct {
	Err error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("booking: callback: %v", e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// Appointment is the snapshot handed to the booking callback.
type Appointment struct {
	Name   string
	Email  string
	Doctor string
	Date   string
	Time   string
}

// Complete reports whether every field holds a value.
func (a Appointment) Complete() bool {
	return a.Name != "" && a.Email != "" && a.Doctor != "" && a.Date != "" && a.Time != ""
}

// BookFunc receives the captured fields of a successful submission.
type BookFunc func(Appointment) error

// Notice is the banner state. A successful Submit clears Error before
// setting Success; a failed one sets Error and leaves Success alone.
type Notice struct {
	Error   string
	Success string
}

// Token identifies the success banner a scheduled dismiss belongs to.
type Token uint64

// Outcome describes a successful submission.
type Outcome struct {
	Booked       Appointment
	Dismiss      Token
	DismissAfter time.Duration
}

// Form is the appointment form. The zero value is not usable; call New.
type Form struct {
	fields Appointment
	notice Notice
	onBook BookFunc

	seq    Token
	live   Token
	closed bool
}

// New returns an empty form. onBook may be nil.
func New(onBook BookFunc) *Form {
	return &Form{onBook: onBook}
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() Appointment { return f.fields }

// Notice returns the current banner state.
func (f *Form) Notice() Notice { return f.notice }

// Closed reports whether Close has been called.
func (f *Form) Closed() bool { return f.closed }

// Set updates one field. It never validates and never touches the banners.
// It returns false for an unknown field.
func (f *Form) Set(field Field, value string) bool {
	p := f.slot(field)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (f *Form) SetName(v string)   { f.fields.Name = v }
func (f *Form) SetEmail(v string)  { f.fields.Email = v }
func (f *Form) SetDoctor(v string) { f.fields.Doctor = v }
func (f *Form) SetDate(v string)   { f.fields.Date = v }
func (f *Form) SetTime(v string)   { f.fields.Time = v }

// Get returns the value of one field.
func (f *Form) Get(field Field) string {
	if p := f.slot(field); p != nil {
		return *p
	}
	return ""
}

func (f *Form) slot(field Field) *string {
	switch field {
	case FieldName:
		return &f.fields.Name
	case FieldEmail:
		return &f.fields.Email
	case FieldDoctor:
		return &f.fields.Doctor
	case FieldDate:
		return &f.fields.Date
	case FieldTime:
		return &f.fields.Time
	default:
		return nil
	}
}

// Submit validates and books the current fields.
//
// With any field empty it sets the error banner and returns ErrIncomplete;
// the success banner and the fields are left as they are. Otherwise it
// clears the error, sets the success banner, calls the callback with a
// snapshot and resets the fields. A callback failure is returned as a
// *CallbackError: the fields are kept and the error banner replaces the
// success banner.
func (f *Form) Submit() (Outcome, error) {
	if !f.fields.Complete() {
		f.notice.Error = IncompleteMessage
		return Outcome{}, ErrIncomplete
	}

	f.notice.Error = ""
	f.notice.Success = SuccessMessage

	snapshot := f.fields
	if f.onBook != nil {
		if err := f.onBook(snapshot); err != nil {
			cerr := &CallbackError{Err: err}
			f.notice.Success = ""
			f.notice.Error = "Could not book appointment: " + err.Error()
			f.live = 0
			return Outcome{}, cerr
		}
	}

	f.fields = Appointment{}

	f.seq++
	f.live = f.seq
	return Outcome{Booked: snapshot, Dismiss: f.live, DismissAfter: DismissDelay}, nil
}

// Dismiss clears the success banner if tok belongs to the latest successful
// submission. Tokens from superseded submissions and any token after Close
// are ignored. It reports whether the banner was cleared.
func (f *Form) Dismiss(tok Token) bool {
	if f.closed || tok == 0 || tok != f.live {
		return false
	}
	f.live = 0
	f.notice.Success = ""
	return true
}

// Close tears the form down and cancels any pending dismiss.
func (f *Form) Close() {
	f.closed = true
	f.live = 0
}
