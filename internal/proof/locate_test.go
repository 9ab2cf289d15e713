package proof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestFindFileByExtension(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "target", "release", "circuit.proof")
	writeFile(t, want, []byte{1})

	got, err := FindFileByExtension(root, "proof")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindFileByExtension_SkipsHiddenAndDeps(t *testing.T) {
	root := t.TempDir()
	// 隐藏目录与 node_modules 下的文件不应被找到
	writeFile(t, filepath.Join(root, ".git", "x.proof"), []byte{1})
	writeFile(t, filepath.Join(root, "node_modules", "y.proof"), []byte{1})

	_, err := FindFileByExtension(root, "proof")
	require.Error(t, err)

	want := filepath.Join(root, "out", "z.proof")
	writeFile(t, want, []byte{1})
	got, err := FindFileByExtension(root, "proof")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindFileByExtension_NotFound(t *testing.T) {
	_, err := FindFileByExtension(t.TempDir(), "proof")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".proof")
}

func TestLoadArtifact(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "target", "main.proof"), []byte{0xDE, 0xAD})
	writeFile(t, filepath.Join(root, "target", "main.pw"), []byte{0xBE, 0xEF, 0x01})

	artifact, proofPath, witnessPath, err := LoadArtifact(root)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, artifact.Proof)
	assert.Equal(t, []byte{0xBE, 0xEF, 0x01}, artifact.Witness)
	assert.Equal(t, 2, artifact.ProofSize())
	assert.Equal(t, 3, artifact.WitnessSize())
	assert.Equal(t, 5, artifact.TotalSize())
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}, artifact.InstructionData())
	assert.Contains(t, proofPath, "main.proof")
	assert.Contains(t, witnessPath, "main.pw")
}

func TestLoadArtifact_MissingWitness(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.proof"), []byte{1})

	_, _, _, err := LoadArtifact(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pw")
}
