package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/util"
)

// Kind distinguishes resources from data sources.
type Kind int

const (
	KindResource Kind = iota
	KindDataSource
)

// BlockLabel returns the top-level HCL block keyword for the kind.
func (kind Kind) BlockLabel() string {
	if kind == KindDataSource {
		return "data"
	}

	return "resource"
}

func (kind Kind) String() string {
	if kind == KindDataSource {
		return "data source"
	}

	return "resource"
}

// Provider holds the loaded schema of a single provider and answers name lookups over it.
type Provider struct {
	Name        string
	Address     string
	resources   map[string]*Schema
	dataSources map[string]*Schema
}

// Load reads an exported providers schema file and extracts the schema of the provider registered
// under the given registry address.
func Load(path string, providerName string, providerAddress string) (*Provider, error) {
	if util.FileNotExists(path) {
		return nil, errors.WithStackTrace(SchemaFileNotFoundError{Path: path})
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	file := new(File)
	if err := json.Unmarshal(contents, file); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "failed to parse schema file %s", path)
	}

	// A null entry for the address parses as a nil schema; treat it the same as an absent one.
	providerSchema, ok := file.ProviderSchemas[providerAddress]
	if !ok || providerSchema == nil {
		return nil, errors.WithStackTrace(ProviderNotFoundError{Provider: providerName, Address: providerAddress, Path: path})
	}

	provider := &Provider{
		Name:        providerName,
		Address:     providerAddress,
		resources:   providerSchema.ResourceSchemas,
		dataSources: providerSchema.DataSourceSchemas,
	}

	if len(provider.resources) == 0 && len(provider.dataSources) == 0 {
		return nil, errors.WithStackTrace(EmptySchemaError{Provider: providerName, Path: path})
	}

	return provider, nil
}

// ResourceNames returns the sorted names of all resources.
func (provider *Provider) ResourceNames() []string {
	return sortedKeys(provider.resources)
}

// DataSourceNames returns the sorted names of all data sources.
func (provider *Provider) DataSourceNames() []string {
	return sortedKeys(provider.dataSources)
}

// Names returns the sorted resource names, followed by the sorted data source names when requested.
func (provider *Provider) Names(includeDataSources bool) []string {
	names := provider.ResourceNames()
	if includeDataSources {
		names = append(names, provider.DataSourceNames()...)
	}

	return names
}

// Filter returns the names containing the given query, compared case-insensitively.
func (provider *Provider) Filter(query string, includeDataSources bool) []string {
	return util.FilterList(provider.Names(includeDataSources), func(name string) bool {
		return util.ContainsFold(name, query)
	})
}

// Lookup finds the schema for the given name, checking resources before data sources.
func (provider *Provider) Lookup(name string) (*Schema, Kind, bool) {
	if schema, ok := provider.resources[name]; ok {
		return schema, KindResource, true
	}

	if schema, ok := provider.dataSources[name]; ok {
		return schema, KindDataSource, true
	}

	return nil, KindResource, false
}

func sortedKeys(schemas map[string]*Schema) []string {
	keys := make([]string, 0, len(schemas))
	for key := range schemas {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Custom error types

// SchemaFileNotFoundError is returned when the schema file has not been exported yet.
type SchemaFileNotFoundError struct {
	Path string
}

func (err SchemaFileNotFoundError) Error() string {
	return fmt.Sprintf("Schema file not found at %s. Run 'schemakit fetch' to export it.", err.Path)
}

// ProviderNotFoundError is returned when the schema file does not contain the requested provider.
type ProviderNotFoundError struct {
	Provider string
	Address  string
	Path     string
}

func (err ProviderNotFoundError) Error() string {
	return fmt.Sprintf("No schema found for provider %q (%s) in %s.", err.Provider, err.Address, err.Path)
}

// EmptySchemaError is returned when the provider schema has neither resources nor data sources.
type EmptySchemaError struct {
	Provider string
	Path     string
}

func (err EmptySchemaError) Error() string {
	return fmt.Sprintf("No resources or data sources found for provider %q in %s.", err.Provider, err.Path)
}
