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

func TestTagThenTagsReportsPointer(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	require.NoError(t, cli.Declare(ctx, cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: filepath.Join(root, "opt", "cfitsio", "3.450"), UpsDir: "ups", TableFile: "cfitsio.table",
	}, false))

	require.NoError(t, cli.Tag(ctx, "", "cfitsio", "current", "Linux64", "3.450", "tester"))

	tags, err := cli.Tags(ctx, "cfitsio")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "current", tags[0].Tag)
	assert.Equal(t, "3.450", tags[0].Version)
	assert.Equal(t, "Linux64", tags[0].Flavor)
}

func TestUntagRemovesPointer(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	ctx := newTestContext(t, []*db.Stack{stack}, nil)

	require.NoError(t, cli.Declare(ctx, cli.DeclareOptions{
		Product: "cfitsio", Version: "3.450", Flavor: "Linux64",
		ProductDir: filepath.Join(root, "opt", "cfitsio", "3.450"), UpsDir: "ups", TableFile: "cfitsio.table",
	}, false))
	require.NoError(t, cli.Tag(ctx, "", "cfitsio", "current", "Linux64", "3.450", "tester"))
	require.NoError(t, cli.Untag(ctx, "", "cfitsio", "current", "Linux64"))

	tags, err := cli.Tags(ctx, "cfitsio")
	require.NoError(t, err)
	assert.Empty(t, tags)
}
