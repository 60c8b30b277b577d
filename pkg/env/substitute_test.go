package env_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteExpandsFromBagThenState(t *testing.T) {
	s := env.New()
	s.Vars["HOME"] = "/home/user"
	bag := map[string]string{"PRODUCT_DIR": "/opt/cfitsio"}

	out, skip, err := env.Substitute([]string{"${PRODUCT_DIR}/bin", "${HOME}/.eups"}, s, bag)
	require.NoError(t, err)
	assert.False(t, skip)
	assert.Equal(t, []string{"/opt/cfitsio/bin", "/home/user/.eups"}, out)
}

func TestSubstituteUndefinedPlainVarExpandsEmpty(t *testing.T) {
	s := env.New()
	out, skip, err := env.Substitute([]string{"${MISSING}/x"}, s, nil)
	require.NoError(t, err)
	assert.False(t, skip)
	assert.Equal(t, []string{"/x"}, out)
}

func TestSubstituteGuardSkipsWholeActionWhenUndefined(t *testing.T) {
	s := env.New()
	_, skip, err := env.Substitute([]string{"${PRODUCT_DIR}/bin", "$?{OPTIONAL_EXT}/lib"}, s, map[string]string{"PRODUCT_DIR": "/opt/x"})
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestSubstituteGuardExpandsWhenDefined(t *testing.T) {
	s := env.New()
	bag := map[string]string{"OPTIONAL_EXT": "ext"}
	out, skip, err := env.Substitute([]string{"$?{OPTIONAL_EXT}/lib"}, s, bag)
	require.NoError(t, err)
	assert.False(t, skip)
	assert.Equal(t, []string{"ext/lib"}, out)
}
