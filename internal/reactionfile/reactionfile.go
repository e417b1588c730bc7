// Package reactionfile reads reaction descriptions written in YAML.
//
//	reactants:
//	  - "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3"
//	products:
//	  - "InChI=1S/C2H4O/c1-2-3/h2H,1H3"
//	agents: []
//
// Entries are opaque to this package: they are whatever the selected
// identifier adapter accepts (identifier text, SMILES, ...).
package reactionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"xdao.co/rinchi/model"
	"xdao.co/rinchi/rinchi"
)

// File is the on-disk shape of a reaction.
type File struct {
	Reactants []string `yaml:"reactants"`
	Products  []string `yaml:"products"`
	Agents    []string `yaml:"agents"`
}

func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("reactionfile: empty path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes one YAML document. Unknown keys and empty entries are
// rejected.
func Parse(b []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("reactionfile: %w", err)
	}
	for _, g := range []struct {
		name string
		list []string
	}{{"reactants", f.Reactants}, {"products", f.Products}, {"agents", f.Agents}} {
		for i, s := range g.list {
			if s == "" {
				return nil, fmt.Errorf("reactionfile: %s[%d] is empty", g.name, i)
			}
		}
	}
	return &f, nil
}

// Reaction returns the molecules of f as strings, in file order.
func (f *File) Reaction() rinchi.Reaction {
	return rinchi.Reaction{
		Reactants: molecules(f.Reactants),
		Products:  molecules(f.Products),
		Agents:    molecules(f.Agents),
	}
}

// Request converts f for model.Encode.
func (f *File) Request(mode model.ComplianceMode) model.EncodeRequest {
	return model.EncodeRequest{
		Reactants:  append([]string(nil), f.Reactants...),
		Products:   append([]string(nil), f.Products...),
		Agents:     append([]string(nil), f.Agents...),
		Compliance: mode,
	}
}

func molecules(in []string) []rinchi.Molecule {
	out := make([]rinchi.Molecule, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
