package version_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/version"
	"github.com/stretchr/testify/assert"
)

func TestParseExpressionBareVersion(t *testing.T) {
	e, err := version.ParseExpression("3.450")
	assert.NoError(t, err)
	v, ok := e.IsBareVersion()
	assert.True(t, ok)
	assert.Equal(t, "3.450", v)
	assert.True(t, e.Matches("3.450"))
	assert.False(t, e.Matches("3.451"))
}

func TestParseExpressionRelational(t *testing.T) {
	e, err := version.ParseExpression(">= 3.450")
	assert.NoError(t, err)
	assert.True(t, e.Matches("3.450"))
	assert.True(t, e.Matches("3.450+hack1"))
	assert.False(t, e.Matches("3.370"))
}

func TestParseExpressionOrList(t *testing.T) {
	e, err := version.ParseExpression("== 1.0 || == 2.0")
	assert.NoError(t, err)
	assert.True(t, e.Matches("1.0"))
	assert.True(t, e.Matches("2.0"))
	assert.False(t, e.Matches("1.5"))
}

func TestExpressionBestPicksHighestMatching(t *testing.T) {
	e, err := version.ParseExpression(">= 3.450")
	assert.NoError(t, err)
	best, ok := e.Best([]string{"3.370", "3.450", "3.450+hack1"})
	assert.True(t, ok)
	assert.Equal(t, "3.450+hack1", best)
}

func TestScenario2InconsistentRange(t *testing.T) {
	// afw table requires daf_base >= 11.0 and <= 12.0, declared 11.1, 12.1
	lower, err := version.ParseExpression(">= 11.0")
	assert.NoError(t, err)
	upper, err := version.ParseExpression("<= 12.0")
	assert.NoError(t, err)

	candidates := []string{"11.1", "12.1"}
	var both []string
	for _, c := range candidates {
		if lower.Matches(c) && upper.Matches(c) {
			both = append(both, c)
		}
	}
	assert.Equal(t, []string{"11.1"}, both)
}

func TestParseExpressionEmpty(t *testing.T) {
	e, err := version.ParseExpression("")
	assert.NoError(t, err)
	assert.True(t, e.Matches("anything"))
}
