package topics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/ui/topics"
)

func TestManagerScanAndGet(t *testing.T) {
	dir := t.TempDir()
	testWriteFile(t, filepath.Join(dir, "table-file.md"), "# Table files\n\nbody")

	m := topics.New(dir, &topics.PlainRenderer{})
	require.NoError(t, m.Scan())

	content, ok := m.Get("table-file")
	require.True(t, ok)
	assert.Contains(t, content, "Table files")

	_, ok = m.Get("nope")
	assert.False(t, ok)
}

func TestManagerScanMissingDirIsNotAnError(t *testing.T) {
	m := topics.New(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	assert.NoError(t, m.Scan())
	assert.Empty(t, m.List())
}

func TestManagerListSorted(t *testing.T) {
	dir := t.TempDir()
	testWriteFile(t, filepath.Join(dir, "version-expression.md"), "v")
	testWriteFile(t, filepath.Join(dir, "table-file.md"), "t")

	m := topics.New(dir, nil)
	require.NoError(t, m.Scan())
	assert.Equal(t, []string{"table-file", "version-expression"}, m.List())
}

func testWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
