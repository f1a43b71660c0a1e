package booking

import "strings"

// Field names one input of the form.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldDoctor
	FieldDate
	FieldTime
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldDoctor, FieldDate, FieldTime}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldDoctor:
		return "doctor"
	case FieldDate:
		return "date"
	case FieldTime:
		return "time"
	default:
		return ""
	}
}

// Label is the human-readable caption rendered above the input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldEmail:
		return "Email"
	case FieldDoctor:
		return "Select Doctor"
	case FieldDate:
		return "Select Date"
	case FieldTime:
		return "Select Time"
	default:
		return ""
	}
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldName:
		return "Enter your name"
	case FieldEmail:
		return "Enter your email"
	case FieldDate:
		return "YYYY-MM-DD"
	case FieldTime:
		return "HH:MM"
	default:
		return ""
	}
}

// ParseField maps a field name such as "email" back to its Field.
func ParseField(name string) (Field, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Fields {
		if f.String() == n {
			return f, true
		}
	}
	return 0, false
}
