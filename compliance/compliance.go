// Package compliance selects how aggressively the encoder rejects input
// that is legal but suspicious.
package compliance

import "fmt"

// Mode is the input checking policy.
//
// Permissive encodes everything the format can express, including a reaction
// with no molecules. Strict prefers explicit failure: empty reactions and
// identifier bodies containing reserved separators are rejected.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "", "permissive" and "strict".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("invalid mode %q: must be permissive or strict", s)
	}
}
