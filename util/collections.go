package util

import (
	"slices"
	"strings"
)

// ListContainsElement returns true if the given list contains the given element.
func ListContainsElement[S ~[]E, E comparable](list S, element E) bool {
	return slices.Contains(list, element)
}

// FilterList returns a copy of the given list with only the elements for which the filter function
// returns true.
func FilterList[S ~[]E, E any](list S, filter func(item E) bool) S {
	var out S

	for _, item := range list {
		if filter(item) {
			out = append(out, item)
		}
	}

	return out
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s string, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
