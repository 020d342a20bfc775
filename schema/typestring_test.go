package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/schemakit/schemakit/schema"
)

func TestTypeString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		ctyType  cty.Type
		expected string
	}{
		{cty.String, "string"},
		{cty.Bool, "bool"},
		{cty.Number, "number"},
		{cty.List(cty.String), "list(string)"},
		{cty.Set(cty.Number), "set(number)"},
		{cty.Map(cty.String), "map(string)"},
		{cty.List(cty.Map(cty.String)), "list(map(string))"},
		{cty.Object(map[string]cty.Type{"name": cty.String}), "object({...})"},
		{cty.Tuple([]cty.Type{cty.String, cty.Number}), "tuple([...])"},
		{cty.NilType, "unknown"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, schema.TypeString(testCase.ctyType))
	}
}
