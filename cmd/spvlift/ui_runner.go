package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"spvlift/internal/driver"
	"spvlift/internal/ui"
)

type liftOutcome struct {
	results []driver.Result
	err     error
}

// runLiftWithUI runs a batch lift behind a Bubble Tea progress screen. The
// lift itself runs in the background; the UI consumes its events until the
// channel closes.
func runLiftWithUI(ctx context.Context, title, dir string, opts driver.Options) ([]driver.Result, error) {
	files, err := driver.ListModuleFiles(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan liftOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		results, err := driver.LiftDir(ctx, dir, opts)
		outcomeCh <- liftOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
