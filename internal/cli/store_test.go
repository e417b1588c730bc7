package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/rinchi/cidutil"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found on PATH")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	stdout, _, code := execute(t, "encode", "--store-dir", a, "--store-dir", b, filepath.Join("testdata", "ethanol_oxidation.yaml"))
	require.Equal(t, ExitSuccess, code)
	require.Equal(t, ethanolOxidation, stdout)
	id := cidutil.String([]byte(ethanolOxidation))

	for _, dir := range []string{a, b} {
		got, _, code := execute(t, "get", "--store-dir", dir, id)
		require.Equal(t, ExitSuccess, code)
		assert.Equal(t, ethanolOxidation, got)
	}
}

func TestGet_Errors(t *testing.T) {
	id := cidutil.String([]byte(ethanolOxidation))

	_, _, code := execute(t, "get", id)
	assert.Equal(t, ExitCommandError, code, "no store dir")

	_, _, code = execute(t, "get", "--store-dir", t.TempDir(), "bogus")
	assert.Equal(t, ExitCommandError, code, "bad cid")

	_, stderr, code := execute(t, "get", "--store-dir", t.TempDir(), id)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "NOT_FOUND")
}

func TestCID(t *testing.T) {
	p := filepath.Join(t.TempDir(), "r.rinchi")
	require.NoError(t, os.WriteFile(p, []byte(ethanolOxidation), 0o644))

	stdout, _, code := execute(t, "cid", p)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, cidutil.String([]byte(ethanolOxidation))+"\n", stdout)

	stdout, _, code = execute(t, "--format", "json", "cid", p)
	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, `{"status":"ok"`), stdout)
}

func TestCID_Rejects(t *testing.T) {
	_, _, code := execute(t, "cid", filepath.Join("testdata", "empty.yaml"))
	assert.Equal(t, ExitFailure, code)

	_, _, code = execute(t, "cid", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, ExitCommandError, code)
}
