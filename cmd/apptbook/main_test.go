package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jask/apptbook/internal/booking"
	"github.com/jask/apptbook/internal/logging"
)

func TestRunValidation(t *testing.T) {
	if err := runValidation(); err != nil {
		t.Fatalf("runValidation: %v", err)
	}
}

func TestLogBookingRecordsReference(t *testing.T) {
	var buf bytes.Buffer
	book := logBooking(logging.New(&buf, "info"))

	err := book(booking.Appointment{Name: "Jane", Email: "jane@x.com", Doctor: "Dr. Smith", Date: "2024-05-01", Time: "09:30"})
	if err != nil {
		t.Fatalf("logBooking: %v", err)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["doctor"] != "Dr. Smith" {
		t.Fatalf("doctor = %v", rec["doctor"])
	}
	if ref, _ := rec["reference"].(string); len(ref) != 36 {
		t.Fatalf("reference = %q, want a UUID", ref)
	}
	if _, ok := rec["email"]; ok {
		t.Fatal("email should not be logged")
	}
}
