package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schemakit/schemakit/codegen"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

const (
	titleForegroundColor = "#A8ACB1"
	titleBackgroundColor = "#1D252F"
)

// item is one entry of the resource list.
type item struct {
	name string
	kind schema.Kind
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return i.kind.String() }
func (i item) FilterValue() string { return i.name }

// Model is the root explorer model: the filterable resource list, with an optional page model on
// top once a resource has been chosen.
type Model struct {
	list     list.Model
	page     *pageModel
	opts     *options.Options
	provider *schema.Provider
	choose   key.Binding
	width    int
	height   int
	err      error
}

func newModel(opts *options.Options, provider *schema.Provider, includeDataSources bool) Model {
	var items []list.Item

	for _, name := range provider.ResourceNames() {
		items = append(items, item{name: name, kind: schema.KindResource})
	}

	if includeDataSources {
		for _, name := range provider.DataSourceNames() {
			items = append(items, item{name: name, kind: schema.KindDataSource})
		}
	}

	delegate := list.NewDefaultDelegate()

	model := list.New(items, delegate, 0, 0)
	model.Title = fmt.Sprintf("%s schema (%d entries)", provider.Name, len(items))
	model.SetFilteringEnabled(true)
	model.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(titleForegroundColor)).
		Background(lipgloss.Color(titleBackgroundColor)).
		Padding(0, 1)

	return Model{
		list:     model,
		opts:     opts,
		provider: provider,
		choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show skeleton"),
		),
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := lipgloss.NewStyle().Padding(1, 2).GetFrameSize()
		model.width, model.height = msg.Width, msg.Height
		model.list.SetSize(msg.Width-h, msg.Height-v)

		if model.page != nil {
			model.page.resize(msg.Width, msg.Height)
		}

		return model, nil

	case backMsg:
		model.page = nil
		return model, nil

	case tea.KeyMsg:
		if model.page != nil {
			break
		}

		// Don't match any of the keys below if we're actively filtering.
		if model.list.FilterState() == list.Filtering {
			break
		}

		if key.Matches(msg, model.choose) {
			if selected, ok := model.list.SelectedItem().(item); ok {
				page, err := newPageModel(model.opts, model.provider, selected, model.width, model.height)
				if err != nil {
					model.err = err
					return model, tea.Quit
				}

				model.page = page

				return model, nil
			}
		}
	}

	if model.page != nil {
		cmd := model.page.update(msg)
		return model, cmd
	}

	newList, cmd := model.list.Update(msg)
	model.list = newList

	return model, cmd
}

// View implements tea.Model.
func (model Model) View() string {
	if model.page != nil {
		return model.page.view()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(model.list.View())
}

// renderTemplates renders both flavors of the skeleton for the given item.
func renderTemplates(opts *options.Options, provider *schema.Provider, selected item) (full string, required string, err error) {
	sch, kind, found := provider.Lookup(selected.name)
	if !found {
		return "", "", fmt.Errorf("schema for %s disappeared from the loaded provider", selected.name)
	}

	full, err = codegen.Template(opts.Provider, selected.name, kind, sch, codegen.RenderOptions{WithDescriptions: true})
	if err != nil {
		return "", "", err
	}

	required, err = codegen.Template(opts.Provider, selected.name, kind, sch, codegen.RenderOptions{RequiredOnly: true})
	if err != nil {
		return "", "", err
	}

	return full, required, nil
}
