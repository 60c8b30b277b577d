package db_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAllowsSameScopeReuse(t *testing.T) {
	r := db.NewRegistry()
	require.NoError(t, r.Register("current", db.ScopeGlobal, "/stack/a"))
	require.NoError(t, r.Register("current", db.ScopeGlobal, "/stack/b"))
}

func TestRegistryRejectsCrossScopeConflict(t *testing.T) {
	r := db.NewRegistry()
	require.NoError(t, r.Register("mine", db.ScopeUser, "/home/me/.eups"))

	err := r.Register("mine", db.ScopeGlobal, "/stack/a")
	require.Error(t, err)
	assert.Equal(t, errors.CodeTagNameConflict, assertEupsCode(t, err))
}

func assertEupsCode(t *testing.T, err error) errors.Code {
	t.Helper()
	var e *errors.EupsError
	require.ErrorAs(t, err, &e)
	return e.Code
}
