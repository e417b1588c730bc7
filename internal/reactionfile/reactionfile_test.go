package reactionfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/rinchi/identifier"
	"xdao.co/rinchi/model"
	"xdao.co/rinchi/rinchi"
)

func TestLoad_Esterification(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "esterification.yaml"))
	require.NoError(t, err)
	assert.Len(t, f.Reactants, 2)
	assert.Len(t, f.Products, 2)
	assert.Len(t, f.Agents, 1)

	got, err := rinchi.Encode(identifier.Literal{}, f.Reaction())
	require.NoError(t, err)
	assert.Equal(t, "RInChI=1.00.1S/C2H4O2/c1-2(3)4/h1H3,(H,3,4)!C2H6O/c1-2-3/h3H,2H2,1H3<>"+
		"C4H8O2/c1-3-6-4(2)5/h3H2,1-2H3!H2O/h1H2<>H2O4S/c1-5(2,3)4/h(H2,1,2,3,4)\n", got)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Reaction().Len())
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "reagents: [\"x\"]\n",
		"empty entry":  "products: [\"\"]\n",
		"wrong shape":  "reactants: \"InChI=1S/CH4/h1H4\"\n",
		"invalid yaml": "reactants: [\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestFile_Request(t *testing.T) {
	f, err := Parse([]byte("agents: [\"InChI=1S/H2O/h1H2\"]\n"))
	require.NoError(t, err)
	req := f.Request(model.ComplianceStrict)
	assert.Equal(t, []string{"InChI=1S/H2O/h1H2"}, req.Agents)
	assert.Empty(t, req.Reactants)
	assert.Equal(t, model.ComplianceStrict, req.Compliance)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	_, err = Load("")
	require.Error(t, err)
}
