package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

// EncodeRequest lists the molecules of one reaction by role. Each entry is
// handed to the configured identifier as-is.
type EncodeRequest struct {
	Reactants  []string       `json:"reactants"`
	Products   []string       `json:"products"`
	Agents     []string       `json:"agents"`
	Compliance ComplianceMode `json:"compliance,omitempty"`
}

// EncodeResult is the JSON view of one encoded reaction.
//
// Reactants, Products and Agents hold the sorted identifier bodies as they
// appear in RInChI; ReactantsFirst reports which group was written first.
type EncodeResult struct {
	RInChI         string   `json:"rinchi"`
	CID            string   `json:"cid"`
	ReactantsFirst bool     `json:"reactantsFirst"`
	Reactants      []string `json:"reactants"`
	Products       []string `json:"products"`
	Agents         []string `json:"agents"`
}

// Archived is returned by lookups in an encoded-reaction store.
type Archived struct {
	CID    string `json:"cid"`
	RInChI string `json:"rinchi"`
}
