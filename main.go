// Package main is the entry point for the hama clock application.
package main

import (
	"fmt"
	"os"

	_ "time/tzdata" // zone catalog works without system tzdata

	"github.com/hama/hamaclock/internal/app"
	"github.com/hama/hamaclock/internal/tui"
	"github.com/hama/hamaclock/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}

	eventBroker := events.NewBroker()
	appInstance := app.New(homeDir, eventBroker)

	p := tea.NewProgram(tui.New(appInstance, eventBroker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
