package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/schemakit/schemakit/schema"
)

func TestAttributeCtyType(t *testing.T) {
	t.Parallel()

	attr := &schema.Attribute{Type: json.RawMessage(`["map","string"]`)}

	ctyType, err := attr.CtyType()
	require.NoError(t, err)
	assert.Equal(t, cty.Map(cty.String), ctyType)
}

func TestAttributeCtyTypeEmpty(t *testing.T) {
	t.Parallel()

	ctyType, err := (&schema.Attribute{}).CtyType()
	require.NoError(t, err)
	assert.Equal(t, cty.NilType, ctyType)
}

func TestAttributeCtyTypeInvalid(t *testing.T) {
	t.Parallel()

	attr := &schema.Attribute{Type: json.RawMessage(`["frob"]`)}

	_, err := attr.CtyType()
	assert.Error(t, err)
}

func TestAttributeStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		attr     schema.Attribute
		expected string
	}{
		{schema.Attribute{Required: true}, "required"},
		{schema.Attribute{Optional: true}, "optional"},
		{schema.Attribute{Optional: true, Computed: true}, "optional"},
		{schema.Attribute{Computed: true}, "computed"},
		{schema.Attribute{}, "computed"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, testCase.attr.Status())
	}
}

func TestBlockTypeRequired(t *testing.T) {
	t.Parallel()

	assert.True(t, (&schema.BlockType{MinItems: 1}).Required())
	assert.False(t, (&schema.BlockType{}).Required())
}
