package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/format"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]format.Format{
		"":       format.FormatAuto,
		"auto":   format.FormatAuto,
		"table":  format.FormatTable,
		"json":   format.FormatJSON,
		"yaml":   format.FormatYAML,
		"YAML":   format.FormatYAML,
		"TABLE":  format.FormatTable,
	}
	for in, want := range cases {
		got, err := format.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	_, err := format.ParseFormat("xml")
	assert.Error(t, err)
}

func TestMarshalJSONRoundTripsProductListing(t *testing.T) {
	rows := []cli.ProductListing{{Product: "cfitsio", Version: "3.450", Flavor: "Linux64", Tags: []string{"current"}}}
	out, err := format.MarshalJSON(rows)
	require.NoError(t, err)
	assert.Contains(t, out, `"product": "cfitsio"`)
	assert.Contains(t, out, `"current"`)
}

func TestMarshalYAMLRendersProductListing(t *testing.T) {
	rows := []cli.ProductListing{{Product: "cfitsio", Version: "3.450"}}
	out, err := format.MarshalYAML(rows)
	require.NoError(t, err)
	assert.Contains(t, out, "product: cfitsio")
}
