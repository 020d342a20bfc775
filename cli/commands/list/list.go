// Package list implements the `schemakit list` command.
package list

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

// CommandName is the name of the list command.
const CommandName = "list"

const flagNameData = "data"

// NewCommand returns the list CLI command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "List resource names from the exported schema",
		ArgsUsage: "[query]",
		Description: `Prints the resource names of the provider, one per line, optionally narrowed down to the
names containing the given query (compared case-insensitively).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagNameData,
				Aliases: []string{"d"},
				Usage:   "Include data sources",
			},
		},
		Action: func(ctx *cli.Context) error {
			return Run(opts, ctx.Args().First(), ctx.Bool(flagNameData))
		},
	}
}

// Run prints the provider's names matching the query to the configured writer.
func Run(opts *options.Options, query string, includeDataSources bool) error {
	provider, err := schema.Load(opts.SchemaPath, opts.Provider, opts.ProviderAddress())
	if err != nil {
		return err
	}

	names := provider.Names(includeDataSources)
	if query != "" {
		names = provider.Filter(query, includeDataSources)
	}

	if len(names) == 0 {
		opts.Logger.Infof("No names match %q.", query)
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(opts.Writer, name)
	}

	return nil
}
