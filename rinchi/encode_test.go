package rinchi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"xdao.co/rinchi/cidutil"
	"xdao.co/rinchi/compliance"
)

const (
	ethanol      = "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3"
	acetaldehyde = "InChI=1S/C2H4O/c1-2-3/h2H,1H3"
)

func TestEncode_ScenarioA(t *testing.T) {
	got, err := Encode(passthrough, Reaction{
		Reactants: mols(ethanol),
		Products:  mols(acetaldehyde),
	})
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/C2H4O/c1-2-3/h2H,1H3<>C2H6O/c1-2-3/h3H,2H2,1H3<>\n", got)
}

func TestEncode_ScenarioB_EqualSidesKeepReactantsFirst(t *testing.T) {
	l, err := NewEncoder(passthrough, Options{}).Layout(Reaction{
		Reactants: mols("InChI=1S/C6H6/c1-2-4-6-5-3-1/h1-6H"),
		Products:  mols("InChI=1S/C6H6/c1-2-4-6-5-3-1/h1-6H"),
	})
	require.NoError(t, err)
	assert.True(t, l.ReactantsFirst)
	assert.Equal(t, "RInChI=1.00.1S/C6H6/c1-2-4-6-5-3-1/h1-6H<>C6H6/c1-2-4-6-5-3-1/h1-6H<>\n", l.String())
}

func TestEncode_ScenarioC_DuplicateAgents(t *testing.T) {
	got, err := Encode(passthrough, Reaction{Agents: mols("InChI=1S/X", "InChI=1S/X")})
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/<><>X!X\n", got)
}

func TestEncode_EmptyReaction(t *testing.T) {
	got, err := Encode(passthrough, Reaction{})
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/<><>\n", got)

	_, err = NewEncoder(passthrough, Options{Mode: compliance.Strict}).Encode(Reaction{})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindEmptyReaction))
	assert.Equal(t, RuleEmptyReaction, RuleID(err))
}

func TestEncode_OrderIndependence(t *testing.T) {
	reactants := []string{
		"InChI=1S/O2/c1-2",
		"InChI=1S/CH4/h1H4",
		"InChI=1S/O2/c1-2",
		"InChI=1S/N2/c1-2",
	}
	products := []string{"InChI=1S/CO2/c2-1-3", "InChI=1S/H2O/h1H2", "InChI=1S/H2O/h1H2"}
	agents := []string{"InChI=1S/Pt", "InChI=1S/Ni"}

	want, err := Encode(passthrough, Reaction{Reactants: mols(reactants...), Products: mols(products...), Agents: mols(agents...)})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		r := append([]string(nil), reactants...)
		p := append([]string(nil), products...)
		a := append([]string(nil), agents...)
		rng.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
		rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })

		got, err := Encode(passthrough, Reaction{Reactants: mols(r...), Products: mols(p...), Agents: mols(a...)})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestEncode_RoleSwapIsInvisible(t *testing.T) {
	pairs := [][2][]string{
		{{ethanol}, {acetaldehyde}},
		{{"InChI=1S/CH4/h1H4"}, {"InChI=1S/CH4/h1H4", "InChI=1S/H2/h1H"}},
		{nil, {"InChI=1S/H2O/h1H2"}},
		{{"InChI=1S/A", "InChI=1S/C"}, {"InChI=1S/A", "InChI=1S/B"}},
	}
	for _, p := range pairs {
		forward, err := Encode(passthrough, Reaction{Reactants: mols(p[0]...), Products: mols(p[1]...)})
		require.NoError(t, err)
		backward, err := Encode(passthrough, Reaction{Reactants: mols(p[1]...), Products: mols(p[0]...)})
		require.NoError(t, err)
		assert.Equal(t, forward, backward)
	}
}

func TestEncode_PrefixRejectedInEveryRole(t *testing.T) {
	const bad = "InChI=1/CH4/h1H4"
	cases := []struct {
		role Role
		rxn  Reaction
	}{
		{Reactant, Reaction{Reactants: mols(ethanol, bad), Products: mols(acetaldehyde)}},
		{Product, Reaction{Reactants: mols(ethanol), Products: mols(acetaldehyde, bad)}},
		{Agent, Reaction{Reactants: mols(ethanol), Products: mols(acetaldehyde), Agents: mols(bad)}},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			got, err := Encode(passthrough, tc.rxn)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, IsKind(err, KindFormat))
			assert.Equal(t, RuleMissingPrefix, RuleID(err))

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tc.role, e.Role)
		})
	}
}

func TestEncode_AdapterFailureStopsSequentialWalk(t *testing.T) {
	id := &countingIdentifier{fail: map[string]bool{"InChI=1S/B": true}}
	_, err := NewEncoder(id, Options{}).Encode(Reaction{
		Reactants: mols("InChI=1S/A", "InChI=1S/B"),
		Products:  mols("InChI=1S/C"),
		Agents:    mols("InChI=1S/D"),
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAdapter))
	assert.ErrorIs(t, err, errBadStructure)
	assert.Equal(t, int64(2), id.calls.Load())

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, Reactant, e.Role)
	assert.Equal(t, 1, e.Index)
	assert.Equal(t, "reactant 1: identifier failed: bad structure", err.Error())
}

func TestEncode_ParallelMatchesSequential(t *testing.T) {
	rxn := Reaction{
		Reactants: mols("InChI=1S/O2/c1-2", "InChI=1S/CH4/h1H4", "InChI=1S/O2/c1-2"),
		Products:  mols("InChI=1S/H2O/h1H2", "InChI=1S/CO2/c2-1-3", "InChI=1S/H2O/h1H2"),
		Agents:    mols("InChI=1S/Pt"),
	}
	want, err := Encode(passthrough, rxn)
	require.NoError(t, err)

	for _, n := range []int{2, 3, 16} {
		got, err := NewEncoder(passthrough, Options{Parallelism: n}).Encode(rxn)
		require.NoError(t, err)
		assert.Equal(t, want, got, "parallelism=%d", n)
	}
}

func TestEncode_ParallelReportsFirstFailureInInputOrder(t *testing.T) {
	id := &countingIdentifier{fail: map[string]bool{"InChI=1S/B": true, "InChI=1S/D": true}}
	rxn := Reaction{
		Reactants: mols("InChI=1S/A"),
		Products:  mols("InChI=1S/B"),
		Agents:    mols("InChI=1S/C", "InChI=1S/D"),
	}
	for i := 0; i < 20; i++ {
		_, err := NewEncoder(id, Options{Parallelism: 4}).Encode(rxn)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, Product, e.Role)
		assert.Equal(t, 0, e.Index)
	}
}

func TestEncode_StrictRejectsReservedSeparators(t *testing.T) {
	rxn := Reaction{Reactants: mols("InChI=1S/A!B"), Products: mols("InChI=1S/C<>D")}

	got, err := Encode(passthrough, rxn)
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/A!B<>C<>D<>\n", got)

	_, err = NewEncoder(passthrough, Options{Mode: compliance.Strict}).Encode(rxn)
	require.Error(t, err)
	assert.Equal(t, RuleReservedSeparator, RuleID(err))
}

func TestEncode_NilIdentifier(t *testing.T) {
	_, err := NewEncoder(nil, Options{}).Encode(Reaction{})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInternal))
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	r := mols("InChI=1S/B", "InChI=1S/A")
	_, err := Encode(passthrough, Reaction{Reactants: r})
	require.NoError(t, err)
	assert.Equal(t, mols("InChI=1S/B", "InChI=1S/A"), r)
}

func TestEncodeDocument(t *testing.T) {
	doc, err := NewEncoder(passthrough, Options{}).EncodeDocument(Reaction{
		Reactants: mols(ethanol),
		Products:  mols(acetaldehyde),
	})
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/C2H4O/c1-2-3/h2H,1H3<>C2H6O/c1-2-3/h3H,2H2,1H3<>\n", doc.String())
	assert.Equal(t, cidutil.String(doc.Bytes), doc.CID)
	assert.NotEmpty(t, doc.CID)
}

func TestNewDocument_RejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"RInChI=1.00.1S/<><>",
		"InChI=1S/CH4/h1H4\n",
		"RInChI=1.00.1S/A<>\nB<>\n",
		"RInChI=1.00.1S/A<>B<>\r\n",
	} {
		_, err := NewDocument([]byte(in))
		require.Error(t, err, "%q", in)
		assert.Equal(t, RuleMalformedDocument, RuleID(err))
	}
}

func TestEncoder_LogsDirection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	enc := NewEncoder(passthrough, Options{Logger: zap.New(core)})
	_, err := enc.Encode(Reaction{Reactants: mols(ethanol), Products: mols(acetaldehyde)})
	require.NoError(t, err)

	entries := logs.FilterMessage("resolved direction").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["reactants_first"])
	assert.Equal(t, 2, logs.FilterMessage("identified molecule").Len())
}
