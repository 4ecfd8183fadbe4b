package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xavierguihot/scalafmt/internal/driver"
	"github.com/xavierguihot/scalafmt/internal/ui"
)

type renderOutcome struct {
	results []driver.Result
	err     error
}

func runRenderWithUI(ctx context.Context, title string, paths []string, opts driver.Options) ([]driver.Result, error) {
	files, err := driver.ListPlanFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan renderOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Observer = func(ev driver.Event) {
			events <- ev
		}
		res, err := driver.RenderPaths(ctx, paths, optsCopy)
		outcomeCh <- renderOutcome{results: res, err: err}
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
