package identifier

import (
	"fmt"

	"xdao.co/rinchi/rinchi"
)

// Literal returns molecules that are already identifier text unchanged.
//
// Accepted molecule values: string, []byte and fmt.Stringer. Prefix checks
// are left to the encoder.
type Literal struct{}

var _ rinchi.Identifier = Literal{}

func (Literal) Identify(m rinchi.Molecule) (string, error) {
	switch v := m.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("identifier: unsupported molecule type %T", m)
	}
}
