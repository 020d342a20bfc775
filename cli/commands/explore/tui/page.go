package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schemakit/schemakit/codegen"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

// backMsg tells the root model to close the page and return to the list.
type backMsg struct{}

// pageKeyMap holds the page key bindings: the original tool's p/f/c/o/b actions mapped onto keys.
type pageKeyMap struct {
	CopyFull     key.Binding
	CopyRequired key.Binding
	Save         key.Binding
	Back         key.Binding
	Quit         key.Binding
}

func newPageKeyMap() pageKeyMap {
	return pageKeyMap{
		CopyFull: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		CopyRequired: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy required-only"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save to file"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pageModel shows the generated skeleton of one resource with copy/save actions.
type pageModel struct {
	name     string
	full     string
	required string
	viewport viewport.Model
	keys     pageKeyMap
	opts     *options.Options
	status   string
}

func newPageModel(opts *options.Options, provider *schema.Provider, selected item, width int, height int) (*pageModel, error) {
	full, required, err := renderTemplates(opts, provider, selected)
	if err != nil {
		return nil, err
	}

	page := &pageModel{
		name:     selected.name,
		full:     full,
		required: required,
		viewport: viewport.New(width, height-pageHeaderHeight-pageFooterHeight),
		keys:     newPageKeyMap(),
		opts:     opts,
	}

	page.viewport.SetContent(full)

	return page, nil
}

const (
	pageHeaderHeight = 2
	pageFooterHeight = 2
)

// resize adjusts the viewport dimensions in place, keeping the scroll position.
func (page *pageModel) resize(width int, height int) {
	page.viewport.Width = width
	page.viewport.Height = height - pageHeaderHeight - pageFooterHeight
}

func (page *pageModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, page.keys.CopyFull):
			page.status = page.copyToClipboard(page.full, "full")
			return nil
		case key.Matches(msg, page.keys.CopyRequired):
			page.status = page.copyToClipboard(page.required, "required-only")
			return nil
		case key.Matches(msg, page.keys.Save):
			page.status = page.saveToFile()
			return nil
		case key.Matches(msg, page.keys.Back):
			return func() tea.Msg { return backMsg{} }
		case key.Matches(msg, page.keys.Quit):
			return tea.Quit
		}
	}

	newViewport, cmd := page.viewport.Update(msg)
	page.viewport = newViewport

	return cmd
}

func (page *pageModel) copyToClipboard(contents string, flavor string) string {
	if err := clipboard.WriteAll(contents); err != nil {
		return fmt.Sprintf("Clipboard unavailable: %v", err)
	}

	return fmt.Sprintf("Copied %s skeleton of %s to the clipboard.", flavor, page.name)
}

func (page *pageModel) saveToFile() string {
	path := page.name + ".tf"

	err := codegen.WriteToFile(page.opts.Logger, page.opts.WorkingDir, codegen.GenerateConfig{
		Path:     path,
		IfExists: codegen.ExistsOverwrite,
		Contents: page.full,
	})
	if err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}

	return fmt.Sprintf("Saved %s.", path)
}

func (page *pageModel) view() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(titleForegroundColor)).
		Background(lipgloss.Color(titleBackgroundColor)).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().Faint(true)

	header := titleStyle.Render(page.name) + "\n"

	footer := helpStyle.Render("c copy • r copy required • s save • esc back • q quit")
	if page.status != "" {
		footer = page.status + "\n" + footer
	}

	return fmt.Sprintf("%s\n%s\n%s", header, page.viewport.View(), footer)
}
