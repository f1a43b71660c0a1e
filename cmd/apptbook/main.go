package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/apptbook/internal/booking"
	"github.com/jask/apptbook/internal/config"
	"github.com/jask/apptbook/internal/doctors"
	"github.com/jask/apptbook/internal/logging"
	"github.com/jask/apptbook/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $XDG_CONFIG_HOME/apptbook/config.toml)")
	validate := flag.Bool("validate", false, "run non-TUI validation of the booking form")
	flag.Parse()

	if *validate {
		if err := runValidation(); err != nil {
			fmt.Fprintln(os.Stderr, "validation failed:", err)
			os.Exit(1)
		}
		fmt.Println("validation ok")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := logging.Open(cfg.Log.File)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.Log.Level)

	docs, err := doctors.Load(cfg.Doctors.Path)
	if err != nil {
		log.Fatalf("doctors: %v", err)
	}
	if len(docs) == 0 {
		logger.Warn("doctor directory is empty", "path", cfg.Doctors.Path)
	}
	logger.Info("starting", "doctors", len(docs), "config", *configPath)

	model := tui.New(docs, logBooking(logger),
		tui.WithTitle(cfg.UI.Title),
		tui.WithLogger(logger),
	)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
	}
}

// logBooking is the embedding program's booking callback. Appointments are
// not persisted; each one is recorded in the log under a fresh reference.
func logBooking(logger *logging.Logger) booking.BookFunc {
	return func(a booking.Appointment) error {
		logger.Info("appointment booked",
			"reference", uuid.NewString(),
			"doctor", a.Doctor,
			"date", a.Date,
			"time", a.Time,
		)
		return nil
	}
}
