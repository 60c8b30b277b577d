package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHomeRespectsOverride(t *testing.T) {
	t.Setenv(paths.EnvHome, "/custom/home")
	home, err := paths.UserHome()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", home)
}

func TestUserHomeFallsBackToOSHomeDir(t *testing.T) {
	t.Setenv(paths.EnvHome, "")
	want, err := os.UserHomeDir()
	require.NoError(t, err)
	home, err := paths.UserHome()
	require.NoError(t, err)
	assert.Equal(t, want, home)
}

func TestStackIDIsStableAndFilesystemSafe(t *testing.T) {
	id := paths.StackID("/opt/eups/stacks/main")
	assert.Equal(t, "opt_eups_stacks_main", id)
	assert.NotContains(t, id, string(filepath.Separator))
}

func TestStackIDHandlesRoot(t *testing.T) {
	assert.Equal(t, "root", paths.StackID("/"))
}

func TestUserTagDBJoinsHomeAndStackID(t *testing.T) {
	got := paths.UserTagDB("/home/alice", "/opt/eups/main")
	assert.Equal(t, filepath.Join("/home/alice", ".eups", "ups_db", "opt_eups_main"), got)
}

func TestSplitStackPathDropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b"}, paths.SplitStackPath("/a::/b:"))
	assert.Nil(t, paths.SplitStackPath(""))
}

func TestLogFilePathEndsInEupsLog(t *testing.T) {
	p := paths.LogFilePath()
	assert.Equal(t, "eups.log", filepath.Base(p))
	assert.Equal(t, "eups", filepath.Base(filepath.Dir(p)))
}
