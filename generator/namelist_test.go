package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameList(t *testing.T) {
	data := []byte(`package: status
names:
  - pending review
  - in progress
  - done
`)

	list, err := ParseNameList(data)
	require.NoError(t, err)
	assert.Equal(t, "status", list.Package)
	assert.Equal(t, []string{"pending review", "in progress", "done"}, list.Names)
}

func TestParseNameList_JSON(t *testing.T) {
	// yaml.Unmarshal handles both YAML and JSON
	data := []byte(`{"package": "status", "names": ["pending review", "done"]}`)

	list, err := ParseNameList(data)
	require.NoError(t, err)
	assert.Equal(t, "status", list.Package)
	assert.Equal(t, []string{"pending review", "done"}, list.Names)
}

func TestParseNameList_OptionalPackage(t *testing.T) {
	data := []byte("names:\n  - hello world\n")

	list, err := ParseNameList(data)
	require.NoError(t, err)
	assert.Empty(t, list.Package)
	assert.Equal(t, []string{"hello world"}, list.Names)
}

func TestParseNameList_Invalid(t *testing.T) {
	_, err := ParseNameList([]byte("names: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse name list")
}

func TestLoadNameList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: status\nnames:\n  - done\n"), 0o600))

	list, err := LoadNameList(path)
	require.NoError(t, err)
	assert.Equal(t, "status", list.Package)
	assert.Equal(t, []string{"done"}, list.Names)
}

func TestLoadNameList_Missing(t *testing.T) {
	_, err := LoadNameList(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read name list")
}
