// Package fetch implements the `schemakit fetch` command: initialize the working directory, export
// the provider schema as JSON, and delete the downloaded provider plugin binaries.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/shell"
	"github.com/schemakit/schemakit/tf"
	"github.com/schemakit/schemakit/util"
)

// CommandName is the name of the fetch command.
const CommandName = "fetch"

const flagNameKeepProviders = "keep-providers"

// NewCommand returns the fetch CLI command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Export the provider schema and reclaim the plugin cache",
		Description: `Runs 'terraform init' in the working directory, exports the provider schema with
'terraform providers schema -json' redirected into the schema file, and then deletes the
downloaded provider plugin binaries to reclaim disk space.

If init fails, the export never runs. If the export fails, a partially written schema file is
left in place for inspection and the plugin binaries are kept. Either failure exits with
status 1.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagNameKeepProviders,
				Usage: "Keep the downloaded provider plugin binaries after a successful export",
			},
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts, ctx.Bool(flagNameKeepProviders))
		},
	}
}

// Run executes the fetch sequence: init, export, cleanup. Each step only runs if the previous one
// succeeded.
func Run(ctx context.Context, opts *options.Options, keepProviders bool) error {
	if err := tf.PopulateTerraformVersion(ctx, opts); err != nil {
		// init will surface the real problem with a friendlier message.
		opts.Logger.Debugf("Unable to determine terraform version: %v", err)
	} else {
		opts.Logger.Debugf("Using %s %s", opts.TerraformPath, opts.TerraformVersion)
	}

	opts.Logger.Infof("Initializing working directory %s", opts.WorkingDir)

	if err := shell.RunTerraformCommand(ctx, opts, tf.CommandNameInit); err != nil {
		return errors.ErrorWithExitCode{
			Err:      errors.WithStackTrace(InitError{Err: err}),
			ExitCode: 1,
		}
	}

	if err := exportSchema(ctx, opts); err != nil {
		return err
	}

	if keepProviders {
		opts.Logger.Infof("Keeping provider binaries as requested.")
		return nil
	}

	return RemoveProviderBinaries(opts)
}

// exportSchema runs `terraform providers schema -json` with stdout redirected into the schema
// file. The file is created (truncated) before the command starts, mirroring shell redirection, so
// a failed export leaves a partial file behind.
func exportSchema(ctx context.Context, opts *options.Options) error {
	if err := util.EnsureDirectory(filepath.Dir(opts.SchemaPath)); err != nil {
		return err
	}

	schemaFile, err := os.Create(opts.SchemaPath)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	opts.Logger.Infof("Exporting %s provider schema to %s", opts.Provider, opts.SchemaPath)

	exportErr := shell.RunTerraformCommandWithStdout(ctx, opts, schemaFile, tf.CommandNameProviders, tf.CommandNameSchema, tf.FlagNameJSON)
	closeErr := schemaFile.Close()

	if exportErr != nil {
		return errors.ErrorWithExitCode{
			Err:      errors.WithStackTrace(SchemaExportError{Err: exportErr, Path: opts.SchemaPath}),
			ExitCode: 1,
		}
	}

	return errors.WithStackTrace(closeErr)
}

// RemoveProviderBinaries recursively deletes the provider plugin cache downloaded by init. A
// missing cache directory is not an error: it is reported and skipped.
func RemoveProviderBinaries(opts *options.Options) error {
	providersDir := util.JoinPath(opts.WorkingDir, tf.DataDir, tf.ProvidersDirName)

	if !util.IsDir(providersDir) {
		opts.Logger.Infof("Provider directory %s does not exist; nothing to clean up.", providersDir)
		return nil
	}

	if err := os.RemoveAll(providersDir); err != nil {
		return errors.WithStackTrace(err)
	}

	opts.Logger.Infof("Removed downloaded provider binaries at %s.", providersDir)

	return nil
}

// Custom error types

// InitError means `terraform init` exited with a non-zero status.
type InitError struct {
	Err error
}

func (err InitError) Error() string {
	return fmt.Sprintf("terraform init failed: %v", err.Err)
}

func (err InitError) Unwrap() error {
	return err.Err
}

// SchemaExportError means `terraform providers schema` exited with a non-zero status. Any
// partially written schema file is left in place.
type SchemaExportError struct {
	Err  error
	Path string
}

func (err SchemaExportError) Error() string {
	return fmt.Sprintf("schema export failed (partial output may remain at %s): %v", err.Path, err.Err)
}

func (err SchemaExportError) Unwrap() error {
	return err.Err
}
