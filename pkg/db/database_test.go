package db_test

import (
	"path/filepath"
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseDeclareAndFind(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	database := db.New(stack)

	rec := &db.VersionRecord{
		Product:  "cfitsio",
		Version:  "3.450",
		Declarer: "user",
		Flavors: map[string]db.VersionFlavorInfo{
			"Linux64": {ProductDir: "/opt/cfitsio", UpsDir: "ups", TableFile: "cfitsio.table"},
		},
	}
	require.NoError(t, database.Declare(rec))

	found, err := database.FindVersionRecord("cfitsio", "3.450")
	require.NoError(t, err)
	assert.Equal(t, "/opt/cfitsio", found.Flavors["Linux64"].ProductDir)

	assert.FileExists(t, filepath.Join(stack.DBPath(), "cfitsio", "3.450.version"))
}

func TestDatabaseUndeclare(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	database := db.New(stack)

	require.NoError(t, database.Declare(&db.VersionRecord{Product: "cfitsio", Version: "3.450", Flavors: map[string]db.VersionFlavorInfo{}}))
	require.NoError(t, database.Undeclare("cfitsio", "3.450"))

	_, err := database.FindVersionRecord("cfitsio", "3.450")
	assert.Error(t, err)

	// Undeclaring again is not an error.
	assert.NoError(t, database.Undeclare("cfitsio", "3.450"))
}

func TestDatabaseTagAndResolve(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	database := db.New(stack)

	require.NoError(t, database.Tag("cfitsio", "current", "Linux64", "3.450", "user"))

	v, ok, err := database.ResolveTag("cfitsio", "current", "Linux64")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3.450", v)

	_, ok, err = database.ResolveTag("cfitsio", "current", "Darwin64")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDatabaseUntagRemovesEmptyChain(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	database := db.New(stack)

	require.NoError(t, database.Tag("cfitsio", "current", "Linux64", "3.450", "user"))
	require.NoError(t, database.Untag("cfitsio", "current", "Linux64"))

	v, ok, err := database.ResolveTag("cfitsio", "current", "Linux64")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.NoFileExists(t, stack.ChainFilePath("cfitsio", "current"))
}

func TestStackListing(t *testing.T) {
	root := testutil.NewTempStack(t)
	stack := db.NewStack(root)
	database := db.New(stack)

	require.NoError(t, database.Declare(&db.VersionRecord{Product: "cfitsio", Version: "3.370", Flavors: map[string]db.VersionFlavorInfo{}}))
	require.NoError(t, database.Declare(&db.VersionRecord{Product: "cfitsio", Version: "3.450", Flavors: map[string]db.VersionFlavorInfo{}}))
	require.NoError(t, database.Tag("cfitsio", "current", "Linux64", "3.450", "user"))

	products, err := stack.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, []string{"cfitsio"}, products)

	versions, err := stack.ListVersions("cfitsio")
	require.NoError(t, err)
	assert.Equal(t, []string{"3.370", "3.450"}, versions)

	tags, err := stack.ListTags("cfitsio")
	require.NoError(t, err)
	assert.Equal(t, []string{"current"}, tags)
}
