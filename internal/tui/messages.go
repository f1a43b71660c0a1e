package tui

import "github.com/jask/apptbook/internal/booking"

// dismissMsg fires when the success banner's display time runs out.
type dismissMsg struct {
	token booking.Token
}
