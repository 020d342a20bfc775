package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/schemakit/schema"
)

const (
	testProvider = "azurerm"
	testAddress  = "registry.terraform.io/hashicorp/azurerm"
)

func loadTestProvider(t *testing.T) *schema.Provider {
	t.Helper()

	provider, err := schema.Load(filepath.Join("testdata", "azurerm_schema.json"), testProvider, testAddress)
	require.NoError(t, err)

	return provider
}

func TestLoad(t *testing.T) {
	t.Parallel()

	provider := loadTestProvider(t)

	assert.Equal(t, testProvider, provider.Name)
	assert.Equal(t, []string{"azurerm_resource_group", "azurerm_storage_account"}, provider.ResourceNames())
	assert.Equal(t, []string{"azurerm_client_config"}, provider.DataSourceNames())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := schema.Load(filepath.Join(t.TempDir(), "nope.json"), testProvider, testAddress)
	require.Error(t, err)

	var notFound schema.SchemaFileNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "schemakit fetch")
}

func TestLoadUnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := schema.Load(filepath.Join("testdata", "azurerm_schema.json"), "google", "registry.terraform.io/hashicorp/google")
	require.Error(t, err)

	var notFound schema.ProviderNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "google", notFound.Provider)
}

func TestLoadNullProviderEntry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.json")
	contents := `{"format_version":"1.0","provider_schemas":{"registry.terraform.io/hashicorp/azurerm":null}}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := schema.Load(path, testProvider, testAddress)
	require.Error(t, err)

	var notFound schema.ProviderNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestNames(t *testing.T) {
	t.Parallel()

	provider := loadTestProvider(t)

	assert.Len(t, provider.Names(false), 2)
	// Data sources come after resources.
	assert.Equal(t, "azurerm_client_config", provider.Names(true)[2])
}

func TestFilter(t *testing.T) {
	t.Parallel()

	provider := loadTestProvider(t)

	testCases := []struct {
		query              string
		includeDataSources bool
		expected           []string
	}{
		{"group", false, []string{"azurerm_resource_group"}},
		{"GROUP", false, []string{"azurerm_resource_group"}},
		{"azurerm", true, []string{"azurerm_resource_group", "azurerm_storage_account", "azurerm_client_config"}},
		{"client", false, nil},
		{"client", true, []string{"azurerm_client_config"}},
		{"no-such-thing", true, nil},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, provider.Filter(testCase.query, testCase.includeDataSources), "query %q", testCase.query)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	provider := loadTestProvider(t)

	sch, kind, found := provider.Lookup("azurerm_storage_account")
	require.True(t, found)
	assert.Equal(t, schema.KindResource, kind)
	assert.Equal(t, int64(4), sch.Version)
	assert.Contains(t, sch.Block.Attributes, "account_tier")

	_, kind, found = provider.Lookup("azurerm_client_config")
	require.True(t, found)
	assert.Equal(t, schema.KindDataSource, kind)

	_, _, found = provider.Lookup("azurerm_does_not_exist")
	assert.False(t, found)
}
