// Package generate implements the `schemakit generate` command.
package generate

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/codegen"
	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/schema"
)

// CommandName is the name of the generate command.
const CommandName = "generate"

const (
	flagNameRequiredOnly   = "required-only"
	flagNameNoDescriptions = "no-descriptions"
	flagNameOutput         = "output"
	flagNameIfExists       = "if-exists"
)

// NewCommand returns the generate CLI command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Render an HCL skeleton for a resource or data source",
		ArgsUsage: "<name>",
		Description: `Renders a commented HCL configuration skeleton for the given resource or data source,
with every attribute pre-filled with a placeholder value. The skeleton is printed to stdout
unless --output is given.

Example:
  schemakit generate azurerm_storage_account --required-only --output storage.tf`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagNameRequiredOnly,
				Aliases: []string{"r"},
				Usage:   "Only include required attributes and blocks",
			},
			&cli.BoolFlag{
				Name:  flagNameNoDescriptions,
				Usage: "Leave out attribute descriptions",
			},
			&cli.StringFlag{
				Name:    flagNameOutput,
				Aliases: []string{"o"},
				Usage:   "Write the skeleton to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  flagNameIfExists,
				Usage: "What to do when the output file exists: error, skip or overwrite",
				Value: codegen.ExistsErrorStr,
			},
		},
		Action: func(ctx *cli.Context) error {
			if !ctx.Args().Present() {
				return errors.Errorf("missing resource name argument, try 'schemakit list' to find one")
			}

			renderOpts := codegen.RenderOptions{
				WithDescriptions: !ctx.Bool(flagNameNoDescriptions),
				RequiredOnly:     ctx.Bool(flagNameRequiredOnly),
			}

			ifExists, err := codegen.GenerateConfigExistsFromString(ctx.String(flagNameIfExists))
			if err != nil {
				return err
			}

			return Run(opts, ctx.Args().First(), renderOpts, ctx.String(flagNameOutput), ifExists)
		},
	}
}

// Run renders the skeleton for the named resource and writes it to the output file, or to the
// configured writer when no output file is given.
func Run(opts *options.Options, name string, renderOpts codegen.RenderOptions, output string, ifExists codegen.GenerateConfigExists) error {
	provider, err := schema.Load(opts.SchemaPath, opts.Provider, opts.ProviderAddress())
	if err != nil {
		return err
	}

	sch, kind, found := provider.Lookup(name)
	if !found {
		return errors.WithStackTrace(NotFoundError{Name: name, Provider: opts.Provider})
	}

	contents, err := codegen.Template(opts.Provider, name, kind, sch, renderOpts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := fmt.Fprint(opts.Writer, contents)
		return errors.WithStackTrace(err)
	}

	return codegen.WriteToFile(opts.Logger, opts.WorkingDir, codegen.GenerateConfig{
		Path:     output,
		IfExists: ifExists,
		Contents: contents,
	})
}

// NotFoundError is returned when the named resource is in neither the resource nor the data source
// schemas of the provider.
type NotFoundError struct {
	Name     string
	Provider string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("no resource or data source named %q in the %s schema, try 'schemakit list %s'", err.Name, err.Provider, err.Name)
}
