package rinchi

import "strings"

// Render assembles the encoded reaction from already sorted groups.
//
// first and second are the reactant/product groups in the order chosen by
// ReactantsFirst; agents are always last. Empty groups contribute nothing.
func Render(first, second, agents []string) string {
	n := len(Header) + 2*len(GroupSeparator) + len(Terminator)
	for _, g := range [][]string{first, second, agents} {
		for _, id := range g {
			n += len(id) + len(ComponentSeparator)
		}
	}

	var sb strings.Builder
	sb.Grow(n)
	sb.WriteString(Header)
	writeGroup(&sb, first)
	sb.WriteString(GroupSeparator)
	writeGroup(&sb, second)
	sb.WriteString(GroupSeparator)
	writeGroup(&sb, agents)
	sb.WriteString(Terminator)
	return sb.String()
}

func writeGroup(sb *strings.Builder, ids []string) {
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(ComponentSeparator)
		}
		sb.WriteString(id)
	}
}
