package deploy

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasev/go-casper-client/internal/keys"
)

func TestDeploy_FileRoundTrip(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	d := testDeploy(t)
	require.NoError(t, d.Sign(key))

	path := filepath.Join(t.TempDir(), "deploy.json")
	require.NoError(t, d.WriteFile(path, false))

	read, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d.Hash, read.Hash)
	require.Len(t, read.Approvals, 1)
}

func TestDeploy_WriteFile_RefusesOverwrite(t *testing.T) {
	d := testDeploy(t)
	path := filepath.Join(t.TempDir(), "deploy.json")

	require.NoError(t, d.WriteFile(path, false))

	err := d.WriteFile(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	assert.NoError(t, d.WriteFile(path, true))
}

func TestDeploy_Write(t *testing.T) {
	d := testDeploy(t)

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))

	assert.Contains(t, buf.String(), `"hash"`)
	assert.Contains(t, buf.String(), d.Hash.String())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
