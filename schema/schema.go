// Package schema models the JSON document produced by `terraform providers schema -json` and
// provides lookups over the resources and data sources of a single provider.
package schema

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/schemakit/schemakit/errors"
)

// Nesting modes of a BlockType.
const (
	NestingSingle = "single"
	NestingGroup  = "group"
	NestingList   = "list"
	NestingSet    = "set"
	NestingMap    = "map"
)

// File is the top-level document of the providers schema JSON output.
type File struct {
	FormatVersion   string                     `json:"format_version"`
	ProviderSchemas map[string]*ProviderSchema `json:"provider_schemas"`
}

// ProviderSchema describes the full configuration surface of one provider.
type ProviderSchema struct {
	Provider          *Schema            `json:"provider,omitempty"`
	ResourceSchemas   map[string]*Schema `json:"resource_schemas,omitempty"`
	DataSourceSchemas map[string]*Schema `json:"data_source_schemas,omitempty"`
}

// Schema is the versioned schema of a single resource or data source.
type Schema struct {
	Version int64  `json:"version"`
	Block   *Block `json:"block,omitempty"`
}

// Block is a configuration block: a set of attributes plus nested block types.
type Block struct {
	Attributes  map[string]*Attribute `json:"attributes,omitempty"`
	BlockTypes  map[string]*BlockType `json:"block_types,omitempty"`
	Description string                `json:"description,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty"`
}

// Attribute is a single configurable value within a block. Type is the cty type in its JSON
// serialization, decoded lazily via CtyType.
type Attribute struct {
	Type        json.RawMessage `json:"type,omitempty"`
	Description string          `json:"description,omitempty"`
	Default     json.RawMessage `json:"default,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Optional    bool            `json:"optional,omitempty"`
	Computed    bool            `json:"computed,omitempty"`
	Sensitive   bool            `json:"sensitive,omitempty"`
	Deprecated  bool            `json:"deprecated,omitempty"`
}

// CtyType decodes the attribute's type. Attributes without a type (nested-attribute style schemas)
// decode as cty.NilType without an error.
func (attr *Attribute) CtyType() (cty.Type, error) {
	if len(attr.Type) == 0 {
		return cty.NilType, nil
	}

	ctyType, err := ctyjson.UnmarshalType(attr.Type)
	if err != nil {
		return cty.NilType, errors.WithStackTrace(err)
	}

	return ctyType, nil
}

// Status returns the attribute's requiredness as terraform documents it: required, optional or computed.
func (attr *Attribute) Status() string {
	switch {
	case attr.Required:
		return "required"
	case attr.Optional:
		return "optional"
	default:
		return "computed"
	}
}

// BlockType is a nested block within a Block, e.g. the `identity` block of an azurerm resource.
type BlockType struct {
	NestingMode string `json:"nesting_mode,omitempty"`
	Block       *Block `json:"block,omitempty"`
	MinItems    int    `json:"min_items,omitempty"`
	MaxItems    int    `json:"max_items,omitempty"`
}

// Required returns true if at least one instance of the nested block must be present.
func (blockType *BlockType) Required() bool {
	return blockType.MinItems > 0
}
