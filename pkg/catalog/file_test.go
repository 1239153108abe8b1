package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constructs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile_MergesUserConstructs(t *testing.T) {
	path := writeCatalogFile(t, `
constructs:
  - construct: mina-recursive
    name: Mina-Style Recursive Proofs
    category: zk succinctness
    baselineSecurity: 0.85
    privacyFactor: 0.65
    scalabilityFactor: 0.90
    description: Constant-size chain state via recursive proof composition.
`)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	assert.Len(t, cat.List(), 4)

	c, err := cat.Get("mina-recursive")
	require.NoError(t, err)
	assert.Equal(t, "Mina-Style Recursive Proofs", c.Name)
	assert.InDelta(t, 0.90, c.ScalabilityFactor, 0.0001)

	// built-ins survive the merge
	_, err = cat.Get("aztec-zk")
	assert.NoError(t, err)
}

func TestLoadFile_UserEntryOverridesBuiltin(t *testing.T) {
	path := writeCatalogFile(t, `
constructs:
  - construct: aztec-zk
    name: Tuned zk Circuit
    category: zk privacy
    baselineSecurity: 0.90
    privacyFactor: 0.90
    scalabilityFactor: 0.60
    description: Local recalibration.
`)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	c, err := cat.Get("aztec-zk")
	require.NoError(t, err)
	assert.Equal(t, "Tuned zk Circuit", c.Name)
	assert.InDelta(t, 0.90, c.BaselineSecurity, 0.0001)

	// the built-in catalog itself is untouched
	orig, err := Builtin().Get("aztec-zk")
	require.NoError(t, err)
	assert.Equal(t, "Aztec-Style zk Circuit", orig.Name)
}

func TestLoadFile_RejectsOutOfRangeFactor(t *testing.T) {
	path := writeCatalogFile(t, `
constructs:
  - construct: broken
    name: Broken
    baselineSecurity: 1.5
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baselineSecurity")
}

func TestLoadFile_RejectsMissingKey(t *testing.T) {
	path := writeCatalogFile(t, `
constructs:
  - name: Nameless Key
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key required")
}

func TestLoadFile_RejectsMissingName(t *testing.T) {
	path := writeCatalogFile(t, `
constructs:
  - construct: no-name
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name required")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_EmptyPath(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := writeCatalogFile(t, "constructs: [")
	_, err := LoadFile(path)
	assert.Error(t, err)
}
