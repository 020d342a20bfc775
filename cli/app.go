// Package cli configures the schemakit CLI app.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/cli/commands/explore"
	"github.com/schemakit/schemakit/cli/commands/fetch"
	"github.com/schemakit/schemakit/cli/commands/generate"
	"github.com/schemakit/schemakit/cli/commands/list"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/util"
)

// Version is overridden at build time via -ldflags.
var Version = "0.2.0"

// Global flag names.
const (
	FlagNameWorkingDir     = "working-dir"
	FlagNameTerraformPath  = "terraform-path"
	FlagNameSchemaPath     = "schema-path"
	FlagNameProvider       = "provider"
	FlagNameLogLevel       = "log-level"
	FlagNameNonInteractive = "non-interactive"
)

// NewApp creates the schemakit CLI app.
func NewApp(opts *options.Options) *cli.App {
	return &cli.App{
		Name:  "schemakit",
		Usage: "Fetch, explore, and scaffold Terraform provider schemas",
		Description: `Schemakit exports the machine-readable schema of a Terraform provider and turns it into
ready-to-fill HCL configuration.

Workflow:
  1. Run 'schemakit fetch' in a directory with a terraform block requiring the provider
  2. Run 'schemakit list [query]' to find the resource you are after
  3. Run 'schemakit generate <resource>' (or 'schemakit explore') to render a skeleton`,
		Version:   Version,
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    FlagNameWorkingDir,
				Aliases: []string{"w"},
				Usage:   "Directory in which terraform commands run",
				EnvVars: []string{"SCHEMAKIT_WORKING_DIR"},
			},
			&cli.StringFlag{
				Name:    FlagNameTerraformPath,
				Usage:   "Path to the terraform binary",
				EnvVars: []string{"SCHEMAKIT_TF_PATH"},
				Value:   options.TerraformDefaultPath,
			},
			&cli.StringFlag{
				Name:    FlagNameSchemaPath,
				Aliases: []string{"s"},
				Usage:   "Path of the exported schema JSON file",
				EnvVars: []string{"SCHEMAKIT_SCHEMA_PATH"},
			},
			&cli.StringFlag{
				Name:    FlagNameProvider,
				Aliases: []string{"p"},
				Usage:   "Provider whose schema is fetched and explored",
				EnvVars: []string{"SCHEMAKIT_PROVIDER"},
				Value:   options.DefaultProvider,
			},
			&cli.StringFlag{
				Name:    FlagNameLogLevel,
				Usage:   "Log level (trace, debug, info, warn, error)",
				EnvVars: []string{"SCHEMAKIT_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    FlagNameNonInteractive,
				Usage:   "Disable interactive features",
				EnvVars: []string{"SCHEMAKIT_NON_INTERACTIVE"},
			},
		},
		Before: beforeRunningCommand(opts),
		Commands: []*cli.Command{
			fetch.NewCommand(opts),
			list.NewCommand(opts),
			generate.NewCommand(opts),
			explore.NewCommand(opts),
		},
	}
}

// beforeRunningCommand copies the parsed global flags into the options and normalizes them, so
// every command action works with fully resolved options.
func beforeRunningCommand(opts *options.Options) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		level, err := util.ParseLogLevel(ctx.String(FlagNameLogLevel))
		if err != nil {
			return err
		}

		opts.LogLevel = level
		opts.Logger = util.CreateLogEntry("", level)
		opts.Logger.Logger.SetOutput(ctx.App.ErrWriter)

		opts.WorkingDir = ctx.String(FlagNameWorkingDir)
		opts.TerraformPath = ctx.String(FlagNameTerraformPath)
		opts.SchemaPath = ctx.String(FlagNameSchemaPath)
		opts.Provider = ctx.String(FlagNameProvider)
		opts.NonInteractive = ctx.Bool(FlagNameNonInteractive)

		return opts.Normalize()
	}
}
