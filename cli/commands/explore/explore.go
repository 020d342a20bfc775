// Package explore implements the `schemakit explore` command, an interactive schema browser.
package explore

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/cli/commands/explore/tui"
	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

// CommandName is the name of the explore command.
const CommandName = "explore"

const flagNameData = "data"

// ErrNotATerminal is returned when explore is started without an interactive terminal.
var ErrNotATerminal = errors.Errorf("the explorer needs an interactive terminal, use 'schemakit list' and 'schemakit generate' instead")

// NewCommand returns the explore CLI command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Browse the schema and generate skeletons interactively",
		Description: `Opens a filterable list of the provider's resources. Selecting one shows its generated HCL
skeleton, which can be copied to the clipboard (full or required-only) or saved to a file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagNameData,
				Aliases: []string{"d"},
				Usage:   "Include data sources",
			},
		},
		Action: func(ctx *cli.Context) error {
			return Run(opts, ctx.Bool(flagNameData))
		},
	}
}

// Run starts the explorer TUI. It refuses to start when interactivity is disabled or stdin is not
// a terminal.
func Run(opts *options.Options, includeDataSources bool) error {
	if opts.NonInteractive || !isatty.IsTerminal(os.Stdin.Fd()) {
		return ErrNotATerminal
	}

	provider, err := schema.Load(opts.SchemaPath, opts.Provider, opts.ProviderAddress())
	if err != nil {
		return err
	}

	return tui.Run(opts, provider, includeDataSources)
}
