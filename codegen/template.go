// Package codegen renders HCL configuration skeletons from provider schemas and writes generated
// files to disk.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/schema"
)

// The instance label given to every generated block.
const templateInstanceName = "example"

// RenderOptions controls what ends up in a generated template.
type RenderOptions struct {
	// WithDescriptions includes attribute and block descriptions as comments.
	WithDescriptions bool

	// RequiredOnly drops optional and computed attributes, and nested blocks that may be omitted.
	RequiredOnly bool
}

// Template renders an HCL skeleton for the named resource or data source. Attributes and nested
// blocks are emitted in alphabetical order, each preceded by a comment describing its type and
// requiredness. Deprecated attributes are omitted.
func Template(provider string, name string, kind schema.Kind, sch *schema.Schema, opts RenderOptions) (string, error) {
	file := hclwrite.NewEmptyFile()
	body := file.Body().AppendNewBlock(kind.BlockLabel(), []string{name, templateInstanceName}).Body()

	if sch.Block != nil {
		if err := appendBlockContents(body, provider, sch.Block, opts); err != nil {
			return "", err
		}
	}

	return string(hclwrite.Format(file.Bytes())), nil
}

func appendBlockContents(body *hclwrite.Body, provider string, block *schema.Block, opts RenderOptions) error {
	for _, attrName := range sortedAttributeNames(block) {
		if err := appendAttribute(body, provider, attrName, block.Attributes[attrName], opts); err != nil {
			return err
		}
	}

	for _, blockTypeName := range sortedBlockTypeNames(block) {
		if err := appendBlockType(body, provider, blockTypeName, block.BlockTypes[blockTypeName], opts); err != nil {
			return err
		}
	}

	return nil
}

func appendAttribute(body *hclwrite.Body, provider string, name string, attr *schema.Attribute, opts RenderOptions) error {
	// Deprecated attributes have no place in a template for new configuration.
	if attr.Deprecated {
		return nil
	}

	if opts.RequiredOnly && !attr.Required {
		return nil
	}

	ctyType, err := attr.CtyType()
	if err != nil {
		return errors.WithStackTraceAndPrefix(err, "invalid type for attribute %s", name)
	}

	if opts.WithDescriptions && attr.Description != "" {
		appendDescription(body, attr.Description)
	}

	appendComment(body, attributeComment(attr, ctyType))

	if traversal := referencePlaceholder(provider, name); traversal != nil && len(attr.Default) == 0 {
		body.SetAttributeTraversal(name, traversal)
		return nil
	}

	value, err := placeholderValue(attr, ctyType)
	if err != nil {
		return err
	}

	body.SetAttributeValue(name, value)

	return nil
}

func attributeComment(attr *schema.Attribute, ctyType cty.Type) string {
	comment := fmt.Sprintf("%s, type: %s", attr.Status(), schema.TypeString(ctyType))

	if attr.Sensitive {
		comment += ", sensitive"
	}

	if len(attr.Default) > 0 {
		comment += fmt.Sprintf(", default: %s", string(attr.Default))
	}

	return comment
}

// referencePlaceholder turns foo_bar_name / foo_bar_id attributes into references to a sibling
// resource, e.g. resource_group_name = azurerm_resource_group.example.name.
func referencePlaceholder(provider string, attrName string) hcl.Traversal {
	for _, suffix := range []string{"_name", "_id"} {
		base := strings.TrimSuffix(attrName, suffix)
		if base == attrName || base == "" {
			continue
		}

		return hcl.Traversal{
			hcl.TraverseRoot{Name: provider + "_" + base},
			hcl.TraverseAttr{Name: templateInstanceName},
			hcl.TraverseAttr{Name: strings.TrimPrefix(suffix, "_")},
		}
	}

	return nil
}

func placeholderValue(attr *schema.Attribute, ctyType cty.Type) (cty.Value, error) {
	if len(attr.Default) > 0 {
		var defaultVal ctyjson.SimpleJSONValue
		if err := defaultVal.UnmarshalJSON(attr.Default); err != nil {
			return cty.NilVal, errors.WithStackTrace(err)
		}

		return defaultVal.Value, nil
	}

	switch {
	case ctyType == cty.String:
		return cty.StringVal(""), nil
	case ctyType == cty.Bool:
		return cty.False, nil
	case ctyType == cty.Number:
		return cty.Zero, nil
	case ctyType.IsListType() || ctyType.IsSetType() || ctyType.IsTupleType():
		return cty.EmptyTupleVal, nil
	case ctyType.IsMapType() || ctyType.IsObjectType():
		return cty.EmptyObjectVal, nil
	default:
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
}

func appendBlockType(body *hclwrite.Body, provider string, name string, blockType *schema.BlockType, opts RenderOptions) error {
	if opts.RequiredOnly && !blockType.Required() {
		return nil
	}

	nested := blockType.Block
	if nested == nil {
		nested = &schema.Block{}
	}

	if opts.WithDescriptions && nested.Description != "" {
		appendDescription(body, nested.Description)
	}

	appendComment(body, blockTypeComment(blockType))

	switch blockType.NestingMode {
	case schema.NestingList, schema.NestingSet:
		appendComment(body, repeatComment(blockType))

		count := blockType.MinItems
		if count == 0 {
			appendComment(body, "This block is optional; remove it if not needed")
			count = 1
		}

		for i := 0; i < count; i++ {
			if err := appendNestedBlock(body, provider, name, nil, nested, opts); err != nil {
				return err
			}
		}

		return nil
	case schema.NestingMap:
		appendComment(body, "Repeat with one labeled block per key")
		return appendNestedBlock(body, provider, name, []string{"example_key"}, nested, opts)
	default:
		// single and group nesting render one inline block.
		return appendNestedBlock(body, provider, name, nil, nested, opts)
	}
}

func appendNestedBlock(body *hclwrite.Body, provider string, name string, labels []string, nested *schema.Block, opts RenderOptions) error {
	nestedBody := body.AppendNewBlock(name, labels).Body()
	return appendBlockContents(nestedBody, provider, nested, opts)
}

func blockTypeComment(blockType *schema.BlockType) string {
	nesting := blockType.NestingMode
	if nesting == "" {
		nesting = schema.NestingSingle
	}

	comment := fmt.Sprintf("nesting: %s, min: %d", nesting, blockType.MinItems)
	if blockType.MaxItems > 0 {
		comment += fmt.Sprintf(", max: %d", blockType.MaxItems)
	}

	return comment
}

func repeatComment(blockType *schema.BlockType) string {
	comment := fmt.Sprintf("Repeat this block as needed (min: %d", blockType.MinItems)
	if blockType.MaxItems > 0 {
		comment += fmt.Sprintf(", max: %d", blockType.MaxItems)
	}

	return comment + ")"
}

func appendDescription(body *hclwrite.Body, description string) {
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			appendComment(body, line)
		}
	}
}

func appendComment(body *hclwrite.Body, text string) {
	body.AppendUnstructuredTokens(hclwrite.Tokens{
		{Type: hclsyntax.TokenComment, Bytes: []byte("# " + text + "\n")},
	})
}

func sortedAttributeNames(block *schema.Block) []string {
	names := make([]string, 0, len(block.Attributes))
	for name := range block.Attributes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func sortedBlockTypeNames(block *schema.Block) []string {
	names := make([]string, 0, len(block.BlockTypes))
	for name := range block.BlockTypes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
