// Package tui provides the text-based user interface for the schemakit explore command.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

// Run starts the explorer UI and blocks until the user quits.
func Run(opts *options.Options, provider *schema.Provider, includeDataSources bool) error {
	model := newModel(opts, provider, includeDataSources)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return errors.WithStackTrace(err)
	}

	if m, ok := finalModel.(Model); ok && m.err != nil {
		return m.err
	}

	return nil
}
