package options_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/schemakit/options"
)

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts := options.NewOptions()
	opts.WorkingDir = dir
	require.NoError(t, opts.Normalize())

	assert.Equal(t, filepath.ToSlash(dir), opts.WorkingDir)
	assert.Equal(t, "azurerm", opts.Provider)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "schema", "azurerm_schema.json")), opts.SchemaPath)
}

func TestNormalizeExplicitSchemaPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts := options.NewOptions()
	opts.WorkingDir = dir
	opts.SchemaPath = "exported.json"
	require.NoError(t, opts.Normalize())

	// Relative paths are resolved against the working dir.
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "exported.json")), opts.SchemaPath)
}

func TestNormalizeCustomProvider(t *testing.T) {
	t.Parallel()

	opts := options.NewOptions()
	opts.WorkingDir = t.TempDir()
	opts.Provider = "google"
	require.NoError(t, opts.Normalize())

	assert.Contains(t, opts.SchemaPath, "google_schema.json")
	assert.Equal(t, "registry.terraform.io/hashicorp/google", opts.ProviderAddress())
}

func TestClone(t *testing.T) {
	t.Parallel()

	opts, err := options.NewOptionsForTest(t.TempDir())
	require.NoError(t, err)

	optsCopy := opts.Clone()
	optsCopy.Provider = "aws"

	assert.Equal(t, "azurerm", opts.Provider)
	assert.Equal(t, "aws", optsCopy.Provider)
}

func TestNewOptionsEnv(t *testing.T) {
	t.Setenv("SCHEMAKIT_TEST_MARKER", "present")

	opts := options.NewOptions()
	assert.Equal(t, "present", opts.Env["SCHEMAKIT_TEST_MARKER"])
}
