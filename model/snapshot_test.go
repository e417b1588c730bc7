package model

import (
	"encoding/json"
	"testing"
)

func TestSnapshot_EncodeRequest_JSONShape(t *testing.T) {
	req := EncodeRequest{
		Reactants:  []string{"InChI=1S/CH4/h1H4"},
		Products:   []string{"InChI=1S/CO2/c2-1-3"},
		Agents:     []string{},
		Compliance: ComplianceStrict,
	}

	b, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	const want = "{\n" +
		"  \"reactants\": [\n" +
		"    \"InChI=1S/CH4/h1H4\"\n" +
		"  ],\n" +
		"  \"products\": [\n" +
		"    \"InChI=1S/CO2/c2-1-3\"\n" +
		"  ],\n" +
		"  \"agents\": [],\n" +
		"  \"compliance\": \"strict\"\n" +
		"}"

	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}

func TestSnapshot_EncodeResult_JSONShape(t *testing.T) {
	res := EncodeResult{
		RInChI:         "RInChI=1.00.1S/H2O/h1H2<><>\n",
		CID:            "bafk-1",
		ReactantsFirst: true,
		Reactants:      []string{"H2O/h1H2"},
		Products:       []string{},
		Agents:         []string{},
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	const want = `{"rinchi":"RInChI=1.00.1S/H2O/h1H2<><>\n","cid":"bafk-1","reactantsFirst":true,"reactants":["H2O/h1H2"],"products":[],"agents":[]}`
	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}

func TestSnapshot_CodedError_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewError(ErrEmptyReaction, "reaction has no molecules"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	const want = `{"code":"EMPTY_REACTION","message":"reaction has no molecules"}`
	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}
