package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/testutil"
)

func TestSuggestRanksClosestNames(t *testing.T) {
	candidates := []string{"cfitsio", "afw", "astrometry"}
	got := cli.Suggest("cfitsi", candidates)
	require.NotEmpty(t, got)
	assert.Equal(t, "cfitsio", got[0])
}

func TestSuggestCapsAtThree(t *testing.T) {
	candidates := []string{"foo1", "foo2", "foo3", "foo4", "foo5"}
	got := cli.Suggest("foo", candidates)
	assert.LessOrEqual(t, len(got), 3)
}

func TestAllProductsDeduplicatesAcrossStacks(t *testing.T) {
	rootA := testutil.NewTempStack(t)
	rootB := testutil.NewTempStack(t)
	declareProduct(t, rootA, "cfitsio", "3.450", "Linux64", `envSet(CFITSIO_DIR, "${PRODUCT_DIR}")`)
	testutil.WriteVersionFile(t, rootB, "cfitsio", "3.450", "Linux64", rootB+"/opt/cfitsio/3.450", "cfitsio.table")
	testutil.WriteVersionFile(t, rootB, "afw", "12.0", "Linux64", rootB+"/opt/afw/12.0", "afw.table")

	ctx := newTestContext(t, []*db.Stack{db.NewStack(rootA), db.NewStack(rootB)}, nil)
	products, err := cli.AllProducts(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cfitsio", "afw"}, products)
}
