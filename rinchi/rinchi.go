// Package rinchi encodes chemical reactions as RInChI layered strings.
//
// A reaction is three ordered collections of opaque molecules. Each molecule
// is turned into a structural identifier by an injected Identifier; the
// identifiers are grouped by role, sorted, and laid out in a fixed,
// order-independent form:
//
//	RInChI=1.00.1S/<first>!...<><second>!...<><agents>!...\n
//
// The package is write-only. It never parses RInChI text.
package rinchi

import "fmt"

const (
	// Header starts every encoded reaction.
	Header = "RInChI=1.00.1S/"
	// InChIPrefix is the required prefix of every adapter result.
	InChIPrefix = "InChI=1S/"

	// ComponentSeparator joins identifiers within one group.
	ComponentSeparator = "!"
	// GroupSeparator separates the three groups.
	GroupSeparator = "<>"
	// Terminator ends every encoded reaction.
	Terminator = "\n"
)

// Molecule is an opaque molecular structure. The encoder only hands it to an Identifier.
type Molecule any

// Reaction is the encoder input. It is owned by the caller and never mutated.
type Reaction struct {
	Reactants []Molecule
	Products  []Molecule
	Agents    []Molecule
}

// Len returns the total number of molecules across all roles.
func (r Reaction) Len() int {
	return len(r.Reactants) + len(r.Products) + len(r.Agents)
}

// Role is the part a molecule plays in a reaction.
type Role int

const (
	Reactant Role = iota
	Product
	Agent
)

func (r Role) String() string {
	switch r {
	case Reactant:
		return "reactant"
	case Product:
		return "product"
	case Agent:
		return "agent"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Identifier produces the structural identifier of one molecule.
//
// Contract: the returned text starts with InChIPrefix, or an error is returned.
// Implementations must be safe for concurrent use when the encoder runs with
// Options.Parallelism > 1.
type Identifier interface {
	Identify(m Molecule) (string, error)
}

// IdentifierFunc adapts a plain function to the Identifier interface.
type IdentifierFunc func(m Molecule) (string, error)

func (f IdentifierFunc) Identify(m Molecule) (string, error) { return f(m) }
