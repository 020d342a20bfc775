package generate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/schemakit/schemakit/cli/commands/generate"
	"github.com/schemakit/schemakit/codegen"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/util"
)

const schemaFixture = `{
  "format_version": "1.0",
  "provider_schemas": {
    "registry.terraform.io/hashicorp/azurerm": {
      "resource_schemas": {
        "azurerm_resource_group": {
          "version": 0,
          "block": {
            "attributes": {
              "location": {"type": "string", "required": true, "description": "The Azure Region where the Resource Group should exist."},
              "name": {"type": "string", "required": true},
              "tags": {"type": ["map", "string"], "optional": true}
            }
          }
        }
      }
    }
  }
}`

func newGenerateOptions(t *testing.T) (*options.Options, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()

	opts, err := options.NewOptionsForTest(dir)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(opts.SchemaPath), 0o755))
	require.NoError(t, os.WriteFile(opts.SchemaPath, []byte(schemaFixture), 0o644))

	stdout := new(bytes.Buffer)
	opts.Writer = stdout

	return opts, stdout
}

func TestRunGenerateToStdout(t *testing.T) {
	t.Parallel()

	opts, stdout := newGenerateOptions(t)

	renderOpts := codegen.RenderOptions{WithDescriptions: true}
	require.NoError(t, generate.Run(opts, "azurerm_resource_group", renderOpts, "", codegen.ExistsError))

	rendered := stdout.String()
	assert.Contains(t, rendered, `resource "azurerm_resource_group" "example" {`)
	assert.Contains(t, rendered, "# The Azure Region where the Resource Group should exist.")
	assert.Regexp(t, `location\s*= ""`, rendered)
	assert.Regexp(t, `tags\s*= \{\}`, rendered)
}

func TestRunGenerateRequiredOnly(t *testing.T) {
	t.Parallel()

	opts, stdout := newGenerateOptions(t)

	renderOpts := codegen.RenderOptions{RequiredOnly: true}
	require.NoError(t, generate.Run(opts, "azurerm_resource_group", renderOpts, "", codegen.ExistsError))

	assert.NotContains(t, stdout.String(), "tags")
}

func TestRunGenerateToFile(t *testing.T) {
	t.Parallel()

	opts, stdout := newGenerateOptions(t)

	require.NoError(t, generate.Run(opts, "azurerm_resource_group", codegen.RenderOptions{}, "rg.tf", codegen.ExistsError))
	assert.Empty(t, stdout.String())

	target := filepath.Join(opts.WorkingDir, "rg.tf")
	require.True(t, util.FileExists(target))

	contents, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `resource "azurerm_resource_group" "example" {`)

	// The default exists-behavior refuses to clobber.
	err = generate.Run(opts, "azurerm_resource_group", codegen.RenderOptions{}, "rg.tf", codegen.ExistsError)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Skip leaves the existing file untouched.
	require.NoError(t, generate.Run(opts, "azurerm_resource_group", codegen.RenderOptions{RequiredOnly: true}, "rg.tf", codegen.ExistsSkip))

	unchanged, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(contents), string(unchanged))

	// Overwrite replaces it.
	require.NoError(t, generate.Run(opts, "azurerm_resource_group", codegen.RenderOptions{RequiredOnly: true}, "rg.tf", codegen.ExistsOverwrite))

	replaced, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(replaced), "tags")
}

func TestGenerateCommandIfExistsFlag(t *testing.T) {
	t.Parallel()

	opts, _ := newGenerateOptions(t)

	app := &cli.App{Commands: []*cli.Command{generate.NewCommand(opts)}}

	require.NoError(t, app.Run([]string{"schemakit", "generate", "--output", "rg.tf", "azurerm_resource_group"}))

	// The default if_exists value is error.
	err := app.Run([]string{"schemakit", "generate", "--output", "rg.tf", "azurerm_resource_group"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, app.Run([]string{"schemakit", "generate", "--output", "rg.tf", "--if-exists", "skip", "azurerm_resource_group"}))
	require.NoError(t, app.Run([]string{"schemakit", "generate", "--output", "rg.tf", "--if-exists", "overwrite", "azurerm_resource_group"}))

	err = app.Run([]string{"schemakit", "generate", "--output", "rg.tf", "--if-exists", "replace", "azurerm_resource_group"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid value for if_exists")
}

func TestRunGenerateUnknownResource(t *testing.T) {
	t.Parallel()

	opts, _ := newGenerateOptions(t)

	err := generate.Run(opts, "azurerm_nonexistent", codegen.RenderOptions{}, "", codegen.ExistsError)
	require.Error(t, err)

	var notFound generate.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "schemakit list")
}
