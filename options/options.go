// Package options provides a set of options that configure the behavior of the schemakit program.
package options

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/util"
)

const (
	// TerraformDefaultPath just takes terraform from the PATH.
	TerraformDefaultPath = "terraform"

	// DefaultProvider is the provider the original tooling was built around.
	DefaultProvider = "azurerm"

	// DefaultSchemaDir is the directory under the working directory where exported schemas land.
	DefaultSchemaDir = "schema"

	defaultLogLevel = logrus.InfoLevel
)

// Options represents options that configure the behavior of the schemakit program.
type Options struct {
	// Location of the terraform binary.
	TerraformPath string

	// Version of terraform (obtained by running 'terraform version').
	TerraformVersion *version.Version

	// The directory in which terraform commands run. This is where `terraform init` downloads
	// provider plugins to.
	WorkingDir string

	// Location of the exported provider schema JSON file.
	SchemaPath string

	// Name of the provider whose schema is fetched and explored, e.g. "azurerm".
	Provider string

	// Whether interactive features (the explorer TUI, prompts) are allowed.
	NonInteractive bool

	// Environment variables for child processes.
	Env map[string]string

	// The logger to use for all logging.
	Logger *logrus.Entry

	// Current log level.
	LogLevel logrus.Level

	// Stdout of the program and of child commands whose output is forwarded.
	Writer io.Writer

	// Stderr of the program and of child commands.
	ErrWriter io.Writer
}

// NewOptions returns options with defaults filled in.
func NewOptions() *Options {
	return &Options{
		TerraformPath: TerraformDefaultPath,
		Provider:      DefaultProvider,
		Env:           parseEnvironmentVariables(os.Environ()),
		Logger:        util.CreateLogEntry("", defaultLogLevel),
		LogLevel:      defaultLogLevel,
		Writer:        os.Stdout,
		ErrWriter:     os.Stderr,
	}
}

// NewOptionsForTest returns options suitable for unit tests: debug logging to stderr and the given
// working directory already normalized.
func NewOptionsForTest(workingDir string) (*Options, error) {
	opts := NewOptions()
	opts.WorkingDir = filepath.ToSlash(workingDir)
	opts.NonInteractive = true
	opts.LogLevel = logrus.DebugLevel
	opts.Logger = util.CreateLogEntry("test", logrus.DebugLevel)

	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	return opts, nil
}

// Normalize fills in derived fields: absolute working dir and the default schema path. Must be called
// once flags are parsed, before the options are used.
func (opts *Options) Normalize() error {
	if opts.WorkingDir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return errors.WithStackTrace(err)
		}

		opts.WorkingDir = currentDir
	}

	opts.WorkingDir = filepath.ToSlash(opts.WorkingDir)

	if opts.Provider == "" {
		opts.Provider = DefaultProvider
	}

	if opts.SchemaPath == "" {
		opts.SchemaPath = util.JoinPath(opts.WorkingDir, DefaultSchemaDir, opts.Provider+"_schema.json")
	} else {
		schemaPath, err := util.CanonicalPath(opts.SchemaPath, opts.WorkingDir)
		if err != nil {
			return err
		}

		opts.SchemaPath = schemaPath
	}

	return nil
}

// Clone returns a copy of the options. The Env map is shared, as callers only ever add process-scoped
// variables before spawning a command.
func (opts *Options) Clone() *Options {
	optsCopy := *opts
	return &optsCopy
}

// ProviderAddress returns the registry address the provider schema is keyed by in the exported JSON,
// e.g. "registry.terraform.io/hashicorp/azurerm".
func (opts *Options) ProviderAddress() string {
	return fmt.Sprintf("registry.terraform.io/hashicorp/%s", opts.Provider)
}

func parseEnvironmentVariables(environment []string) map[string]string {
	environmentMap := make(map[string]string)

	for _, envVar := range environment {
		if key, value, ok := strings.Cut(envVar, "="); ok {
			environmentMap[key] = value
		}
	}

	return environmentMap
}
