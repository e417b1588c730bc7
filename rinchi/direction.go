package rinchi

// ReactantsFirst decides which of the two sorted groups is written before the
// first group separator.
//
// Both groups are walked from the start in lockstep. The first position where
// the identifiers differ decides: the group holding the smaller identifier is
// written first. When one group runs out first, the products-exhausted case
// keeps reactants first and the reactants-exhausted case moves products first.
// Equal groups keep reactants first.
//
// The decision depends only on content, so swapping the two groups never
// changes the rendered string.
func ReactantsFirst(reactants, products []string) bool {
	for i := 0; ; i++ {
		if i == len(reactants) {
			return i == len(products)
		}
		if i == len(products) {
			return true
		}
		switch {
		case products[i] < reactants[i]:
			return false
		case reactants[i] < products[i]:
			return true
		}
	}
}
