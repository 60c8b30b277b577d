package table_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlatStyle(t *testing.T) {
	src := `
Flavor = ANY
	setupRequired(base)
	envPrepend(PATH, "${PRODUCT_DIR}/bin")
`
	doc, err := table.Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []string{"ANY"}, doc.Blocks[0].Flavors)
	assert.Len(t, doc.Blocks[0].Payload, 2)
}

func TestParseGroupedStyle(t *testing.T) {
	src := `
Group:
	Flavor = Linux64
	Flavor = Linux
Common:
	setupRequired(base)
	pathAppend(LD_LIBRARY_PATH, "${PRODUCT_DIR}/lib")
End:
`
	doc, err := table.Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.ElementsMatch(t, []string{"Linux64", "Linux"}, doc.Blocks[0].Flavors)
	assert.True(t, doc.Blocks[0].Matches("Linux64"))
	assert.False(t, doc.Blocks[0].Matches("Darwin64"))
}

func TestParseIfBlock(t *testing.T) {
	src := `
Flavor = ANY
	if (FLAVOR == Linux64) {
		envSet(IS64, "1")
	}
	envSet(ALWAYS, "x")
`
	doc, err := table.Parse(src)
	require.NoError(t, err)

	acts, err := table.Expand(doc, table.Env{Flavor: "Linux64"})
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.Equal(t, "envSet", acts[0].Name)
	assert.Equal(t, []string{"IS64", "1"}, acts[0].Args)

	acts2, err := table.Expand(doc, table.Env{Flavor: "Darwin64"})
	require.NoError(t, err)
	require.Len(t, acts2, 1)
	assert.Equal(t, "ALWAYS", acts2[0].Args[0])
}

func TestLegacyActionAliasesCanonicalized(t *testing.T) {
	src := `
Flavor = ANY
	setenv(FOO, "bar")
	envappend(PATH, "x")
	unsetenv(BAZ)
`
	doc, err := table.Parse(src)
	require.NoError(t, err)
	acts, err := table.Expand(doc, table.Env{Flavor: "ANY"})
	require.NoError(t, err)
	require.Len(t, acts, 3)
	assert.Equal(t, "envSet", acts[0].Name)
	assert.Equal(t, "setenv", acts[0].OriginalName)
	assert.Equal(t, "envAppend", acts[1].Name)
	assert.Equal(t, "envUnset", acts[2].Name)
}

func TestAndOrConditions(t *testing.T) {
	src := `
Flavor = ANY
	if (FLAVOR == Linux64 && BUILD == opt) {
		envSet(FAST, "1")
	}
	if (FLAVOR == Darwin64 || FLAVOR == Linux64) {
		envSet(UNIXY, "1")
	}
`
	doc, err := table.Parse(src)
	require.NoError(t, err)

	acts, err := table.Expand(doc, table.Env{Flavor: "Linux64", Build: "opt"})
	require.NoError(t, err)
	require.Len(t, acts, 2)

	acts2, err := table.Expand(doc, table.Env{Flavor: "Linux64", Build: "dbg"})
	require.NoError(t, err)
	require.Len(t, acts2, 1)
	assert.Equal(t, "UNIXY", acts2[0].Args[0])
}

func TestNestedIfAndNot(t *testing.T) {
	src := `
Flavor = ANY
	if (!(FLAVOR == Darwin64)) {
		envSet(NOTMAC, "1")
	}
`
	doc, err := table.Parse(src)
	require.NoError(t, err)

	acts, err := table.Expand(doc, table.Env{Flavor: "Linux64"})
	require.NoError(t, err)
	require.Len(t, acts, 1)

	acts2, err := table.Expand(doc, table.Env{Flavor: "Darwin64"})
	require.NoError(t, err)
	require.Len(t, acts2, 0)
}

func TestCommentsIgnored(t *testing.T) {
	src := `
# this is a comment
Flavor = ANY
	# another comment
	setupRequired(base) # trailing
`
	doc, err := table.Parse(src)
	require.NoError(t, err)
	acts, err := table.Expand(doc, table.Env{Flavor: "ANY"})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "setupRequired", acts[0].Name)
	assert.Equal(t, []string{"base"}, acts[0].Args)
}
