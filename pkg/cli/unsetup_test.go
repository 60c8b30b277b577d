package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/shell"
	"github.com/RobertLuptonTheGood/eups/pkg/testutil"
)

func TestUnsetupInvertsEnvSetAndClearsMarker(t *testing.T) {
	root := testutil.NewTempStack(t)
	declareProduct(t, root, "cfitsio", "3.450", "Linux64", `envSet(CFITSIO_DIR, "${PRODUCT_DIR}")`)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	setup, err := cli.Setup(ctx, cli.SetupOptions{Product: "cfitsio", VersionExpr: "3.450", Flavor: "Linux64"})
	require.NoError(t, err)
	marker := setup.Markers[0]
	ctx.State.Vars[marker.VarName()] = marker.Format()
	ctx.State.Vars[marker.DirVarName()] = ctx.State.Vars["CFITSIO_DIR"]

	result, err := cli.Unsetup(ctx, "cfitsio")
	require.NoError(t, err)
	assert.Nil(t, result.Mismatch)

	var sawUnset, sawMarkerUnset bool
	for _, c := range result.Changes {
		if c.Name == "CFITSIO_DIR" && c.Kind == shell.Unset {
			sawUnset = true
		}
		if c.Name == marker.VarName() && c.Kind == shell.Unset {
			sawMarkerUnset = true
		}
	}
	assert.True(t, sawUnset)
	assert.True(t, sawMarkerUnset)
	_, stillSet := ctx.State.Vars["CFITSIO_DIR"]
	assert.False(t, stillSet)
}

func TestUnsetupDoesNotCascadeIntoDependencies(t *testing.T) {
	root := testutil.NewTempStack(t)
	declareProduct(t, root, "cfitsio", "3.450", "Linux64", `envSet(CFITSIO_DIR, "${PRODUCT_DIR}")`)
	declareProduct(t, root, "afw", "12.0", "Linux64", `
setupRequired("cfitsio 3.450")
envSet(AFW_DIR, "${PRODUCT_DIR}")
`)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	setup, err := cli.Setup(ctx, cli.SetupOptions{Product: "afw", VersionExpr: "12.0", Flavor: "Linux64"})
	require.NoError(t, err)
	var afwMarker, cfitsioMarker = setup.Markers[0], setup.Markers[1]
	if afwMarker.Product != "afw" {
		afwMarker, cfitsioMarker = cfitsioMarker, afwMarker
	}
	ctx.State.Vars[afwMarker.VarName()] = afwMarker.Format()
	ctx.State.Vars[afwMarker.DirVarName()] = ctx.State.Vars["AFW_DIR"]
	ctx.State.Vars[cfitsioMarker.VarName()] = cfitsioMarker.Format()
	ctx.State.Vars[cfitsioMarker.DirVarName()] = ctx.State.Vars["CFITSIO_DIR"]

	_, err = cli.Unsetup(ctx, "afw")
	require.NoError(t, err)

	_, stillSet := ctx.State.Vars["CFITSIO_DIR"]
	assert.True(t, stillSet, "unsetup of afw must not tear down cfitsio's own contribution")
	_, afwGone := ctx.State.Vars["AFW_DIR"]
	assert.False(t, afwGone)
}

func TestUnsetupOfNotSetupProductErrors(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	_, err := cli.Unsetup(ctx, "nope")
	assert.Error(t, err)
}
