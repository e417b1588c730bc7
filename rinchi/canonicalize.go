package rinchi

import "sort"

// SortGroup returns a copy of ids in ascending byte-wise order.
//
// Duplicates are kept. The input slice is not modified.
func SortGroup(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
