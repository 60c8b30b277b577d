package db_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFileRoundTrip(t *testing.T) {
	src := `File = Version
Product = cfitsio
Version = 3.450

Group:
	Flavor = Linux64
	Qualifiers =
	PROD_DIR = /opt/cfitsio
	UPS_DIR = ups
	TABLE_FILE = cfitsio.table
End:
`
	sf, err := db.ParseSectionFile([]byte(src))
	require.NoError(t, err)

	product, ok := sf.HeaderGet("Product")
	require.True(t, ok)
	assert.Equal(t, "cfitsio", product)

	g, ok := sf.Group("Linux64")
	require.True(t, ok)
	prodDir, ok := g.Get("PROD_DIR")
	require.True(t, ok)
	assert.Equal(t, "/opt/cfitsio", prodDir)

	reparsed, err := db.ParseSectionFile(sf.Encode())
	require.NoError(t, err)
	g2, ok := reparsed.Group("Linux64")
	require.True(t, ok)
	tableFile, _ := g2.Get("TABLE_FILE")
	assert.Equal(t, "cfitsio.table", tableFile)
}

func TestVersionRecordEncodeParse(t *testing.T) {
	rec := &db.VersionRecord{
		Product:  "cfitsio",
		Version:  "3.450",
		Declarer: "user",
		Flavors: map[string]db.VersionFlavorInfo{
			"Linux64": {ProductDir: "/opt/cfitsio", UpsDir: "ups", TableFile: "cfitsio.table"},
		},
	}
	data := rec.Encode()
	parsed, err := db.ParseVersionRecord(data)
	require.NoError(t, err)
	assert.Equal(t, "cfitsio", parsed.Product)
	assert.Equal(t, "3.450", parsed.Version)
	assert.Equal(t, "/opt/cfitsio", parsed.Flavors["Linux64"].ProductDir)
}

func TestChainRecordEncodeParse(t *testing.T) {
	rec := &db.ChainRecord{
		Product:  "cfitsio",
		Tag:      "current",
		Versions: map[string]string{"Linux64": "3.450", "Darwin64": "3.450"},
	}
	data := rec.Encode()
	parsed, err := db.ParseChainRecord(data)
	require.NoError(t, err)
	assert.Equal(t, "current", parsed.Tag)
	assert.Equal(t, "3.450", parsed.Versions["Linux64"])
}
