package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobertLuptonTheGood/eups/pkg/ui/style"
)

func TestBoldWrapsText(t *testing.T) {
	out := style.Bold("hello")
	assert.Contains(t, out, "hello")
}

func TestIndentAddsLeadingSpace(t *testing.T) {
	out := style.Indent("x", 1)
	assert.Contains(t, out, " x")
}

func TestIndicatorsAreNonEmpty(t *testing.T) {
	assert.NotEmpty(t, style.SetupIndicator)
	assert.NotEmpty(t, style.ErrorIndicator)
	assert.NotEmpty(t, style.PendingIndicator)
}
