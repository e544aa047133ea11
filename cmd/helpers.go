package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/atelier-dev/atelier/internal/configs"
	"github.com/atelier-dev/atelier/internal/coordinator"
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/atelier-dev/atelier/internal/store"
	"github.com/atelier-dev/atelier/internal/ui"
)

// openSettingsStore loads the application settings document without
// constructing the full coordinator. Config commands use this directly.
func openSettingsStore(lg logger.Logger) (*store.Store, error) {
	settings, err := configs.DefaultSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state locations: %w", err)
	}
	if err := settings.EnsureConfigDir(); err != nil {
		return nil, err
	}

	st := store.New(settings.SettingsPath, lg)
	st.Load()
	return st, nil
}

// bootCoordinator runs both startup phases and hands back a ready
// coordinator backed by the on-disk state documents.
func bootCoordinator(lg logger.Logger) (*coordinator.Coordinator, error) {
	settings, err := configs.DefaultSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state locations: %w", err)
	}
	if err := settings.EnsureConfigDir(); err != nil {
		return nil, err
	}

	st := store.New(settings.SettingsPath, lg)
	st.Load()

	c, err := coordinator.New(st, settings.VaultsPath, lg)
	if err != nil {
		return nil, err
	}
	c.Initialize()
	return c, nil
}

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a function that
// should be deferred to clean up.
func startSpinner(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debugFlag {
		s.Start()
		// Ensure log output is discarded unless in verbose mode
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if s.FinalMSG != "" {
			s.FinalMSG = ui.EnsureNewline(s.FinalMSG)
		}

		if !verbose && !debugFlag {
			log.SetOutput(os.Stdout)
			s.Stop()
		} else if s.FinalMSG != "" {
			// The spinner never ran, so print the message manually.
			fmt.Print(s.FinalMSG)
		}
	}

	return s, cleanup
}
