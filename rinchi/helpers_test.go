package rinchi

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// passthrough treats every molecule as adapter output already.
var passthrough = IdentifierFunc(func(m Molecule) (string, error) {
	s, ok := m.(string)
	if !ok {
		return "", fmt.Errorf("unsupported molecule %T", m)
	}
	return s, nil
})

var errBadStructure = errors.New("bad structure")

// countingIdentifier fails for molecules listed in fail and counts calls.
type countingIdentifier struct {
	calls atomic.Int64
	fail  map[string]bool
}

func (c *countingIdentifier) Identify(m Molecule) (string, error) {
	c.calls.Add(1)
	s := m.(string)
	if c.fail[s] {
		return "", errBadStructure
	}
	return s, nil
}

func mols(ss ...string) []Molecule {
	out := make([]Molecule, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
