package shell_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestShPrinterSetUnsetAlias(t *testing.T) {
	out := shell.ShPrinter{}.Print([]shell.Change{
		{Kind: shell.Set, Name: "CFITSIO_DIR", Value: "/opt/cfitsio 3.45"},
		{Kind: shell.Unset, Name: "OLD_VAR"},
		{Kind: shell.Alias, Name: "ll", Value: "ls -l"},
		{Kind: shell.Unalias, Name: "ll"},
	})

	assert.Equal(t, "export CFITSIO_DIR='/opt/cfitsio 3.45';\n"+
		"unset OLD_VAR;\n"+
		"alias ll='ls -l';\n"+
		"unalias ll > /dev/null 2>&1 || true;\n", out)
}

func TestShPrinterEscapesEmbeddedSingleQuote(t *testing.T) {
	out := shell.ShPrinter{}.Print([]shell.Change{
		{Kind: shell.Set, Name: "X", Value: "it's here"},
	})
	assert.Equal(t, `export X='it'\''s here';`+"\n", out)
}

func TestShPrinterEmptyChangesProducesEmptyString(t *testing.T) {
	assert.Equal(t, "", shell.ShPrinter{}.Print(nil))
}
