package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/testutil"
)

func TestDeclareThenFindVersionRecord(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	prodDir := filepath.Join(root, "opt", "cfitsio", "3.450")
	err := cli.Declare(ctx, cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: prodDir, UpsDir: "ups", TableFile: "cfitsio.table",
		Declarer: "tester",
	}, false)
	require.NoError(t, err)

	rec, err := db.New(stack).FindVersionRecord("cfitsio", "3.450")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, prodDir, rec.Flavors["Linux64"].ProductDir)
}

func TestDeclareExistsDifferentWithoutForce(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	base := cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: filepath.Join(root, "opt", "a"), UpsDir: "ups", TableFile: "cfitsio.table",
	}
	require.NoError(t, cli.Declare(ctx, base, false))

	conflicting := base
	conflicting.ProductDir = filepath.Join(root, "opt", "b")
	err := cli.Declare(ctx, conflicting, false)
	require.Error(t, err)

	var eupsErr *errors.EupsError
	require.ErrorAs(t, err, &eupsErr)
	assert.Equal(t, errors.CodeExistsDifferent, eupsErr.Code)
}

func TestDeclareForceOverwritesExisting(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	base := cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: filepath.Join(root, "opt", "a"), UpsDir: "ups", TableFile: "cfitsio.table",
	}
	require.NoError(t, cli.Declare(ctx, base, false))

	conflicting := base
	conflicting.ProductDir = filepath.Join(root, "opt", "b")
	require.NoError(t, cli.Declare(ctx, conflicting, true))

	rec, err := db.New(stack).FindVersionRecord("cfitsio", "3.450")
	require.NoError(t, err)
	assert.Equal(t, conflicting.ProductDir, rec.Flavors["Linux64"].ProductDir)
}

func TestUndeclareRemovesVersion(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	require.NoError(t, cli.Declare(ctx, cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: filepath.Join(root, "opt", "a"), UpsDir: "ups", TableFile: "cfitsio.table",
	}, false))

	require.NoError(t, cli.Undeclare(ctx, "cfitsio", "3.450", ""))

	_, err := db.New(stack).FindVersionRecord("cfitsio", "3.450")
	assert.Error(t, err)
}
