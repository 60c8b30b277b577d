package env_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/env"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func act(name string, args ...string) table.Action {
	return table.Action{Name: name, Args: args}
}

func TestEnvSetAndUnset(t *testing.T) {
	s := env.New()
	_, err := env.Apply(s, act("envSet", "FOO", "bar"))
	require.NoError(t, err)
	assert.Equal(t, "bar", s.Vars["FOO"])

	_, err = env.Apply(s, act("envUnset", "FOO"))
	require.NoError(t, err)
	_, ok := s.Vars["FOO"]
	assert.False(t, ok)
	assert.True(t, s.Unset["FOO"])
}

func TestEnvPrependAndAppend(t *testing.T) {
	s := env.New()
	s.Vars["PATH"] = "/usr/bin"

	_, err := env.Apply(s, act("envPrepend", "PATH", "/opt/cfitsio/bin"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/cfitsio/bin:/usr/bin", s.Vars["PATH"])

	_, err = env.Apply(s, act("envAppend", "PATH", "/usr/local/bin"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/cfitsio/bin:/usr/bin:/usr/local/bin", s.Vars["PATH"])
}

func TestEnvPrependDedupesExistingEntry(t *testing.T) {
	s := env.New()
	s.Vars["PATH"] = "/opt/cfitsio/bin:/usr/bin"

	_, err := env.Apply(s, act("envPrepend", "PATH", "/opt/cfitsio/bin"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/cfitsio/bin:/usr/bin", s.Vars["PATH"])
}

func TestEnvRemoveLeavesSetButEmpty(t *testing.T) {
	s := env.New()
	s.Vars["PATH"] = "/opt/cfitsio/bin"

	_, err := env.Apply(s, act("envRemove", "PATH", "/opt/cfitsio/bin"))
	require.NoError(t, err)
	v, ok := s.Vars["PATH"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.False(t, s.Unset["PATH"])
}

func TestAddAlias(t *testing.T) {
	s := env.New()
	_, err := env.Apply(s, act("addAlias", "setup-cfitsio", "eups setup cfitsio"))
	require.NoError(t, err)
	assert.Equal(t, "eups setup cfitsio", s.Aliases["setup-cfitsio"])
}

func TestApplyRejectsNonEnvActions(t *testing.T) {
	s := env.New()
	_, err := env.Apply(s, act("setupRequired", "base"))
	assert.Error(t, err)
}

func TestRevertRestoresPriorValue(t *testing.T) {
	s := env.New()
	s.Vars["FOO"] = "orig"

	m, err := env.Apply(s, act("envSet", "FOO", "new"))
	require.NoError(t, err)
	assert.Equal(t, "new", s.Vars["FOO"])

	env.Revert(s, m)
	assert.Equal(t, "orig", s.Vars["FOO"])
}

func TestRevertUnsetRestoresAbsence(t *testing.T) {
	s := env.New()
	m, err := env.Apply(s, act("envSet", "FOO", "new"))
	require.NoError(t, err)

	env.Revert(s, m)
	_, ok := s.Vars["FOO"]
	assert.False(t, ok)
}
