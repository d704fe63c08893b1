package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashtools/flashlog/internal/pipeline"
	"github.com/flashtools/flashlog/internal/state"
)

// Options configure the TUI sink.
type Options struct {
	Context   context.Context
	Pipeline  *pipeline.Pipeline
	Store     *state.Store
	ThemeName string
}

// Run blocks until the user quits or the context is cancelled.
func Run(opts Options) error {
	if opts.Pipeline == nil {
		return fmt.Errorf("ui requires a pipeline")
	}
	if opts.Store == nil {
		return fmt.Errorf("ui requires a status store")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Cancellation is the normal shutdown path, not a failure.
		if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
