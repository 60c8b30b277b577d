package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/testutil"
)

func TestPathResolvesProductDirWithoutSettingUp(t *testing.T) {
	root := testutil.NewTempStack(t)
	prodDir := declareProduct(t, root, "cfitsio", "3.450", "Linux64", `envSet(CFITSIO_DIR, "${PRODUCT_DIR}")`)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	dir, err := cli.Path(ctx, "cfitsio", "3.450", "Linux64")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(prodDir), filepath.Clean(dir))

	_, stillUnset := ctx.State.Vars["CFITSIO_DIR"]
	assert.False(t, stillUnset, "Path must not mutate the process environment")
}

func TestPathUnknownProductErrors(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	_, err := cli.Path(ctx, "nope", "", "Linux64")
	assert.Error(t, err)
}
