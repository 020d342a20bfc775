package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// TypeString renders a cty type the way terraform configuration spells it: string, bool, number,
// list(string), map(object({...})) and so on. Object and tuple element types are elided, matching
// the level of detail useful in a generated template comment.
func TypeString(ctyType cty.Type) string {
	switch {
	case ctyType == cty.NilType:
		return "unknown"
	case ctyType.IsPrimitiveType():
		return ctyType.FriendlyName()
	case ctyType.IsListType():
		return fmt.Sprintf("list(%s)", TypeString(ctyType.ElementType()))
	case ctyType.IsSetType():
		return fmt.Sprintf("set(%s)", TypeString(ctyType.ElementType()))
	case ctyType.IsMapType():
		return fmt.Sprintf("map(%s)", TypeString(ctyType.ElementType()))
	case ctyType.IsObjectType():
		return "object({...})"
	case ctyType.IsTupleType():
		return "tuple([...])"
	default:
		return ctyType.FriendlyName()
	}
}
