package version_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/version"
	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		v              string
		vvv, eee, fff string
	}{
		{"1.2.3", "1.2.3", "", ""},
		{"1.0-rc1", "1.0", "rc1", ""},
		{"1.0+patch1", "1.0", "", "patch1"},
		{"1.0-rc1+patch1", "1.0", "rc1", "patch1"},
		{"rel-0-8-2", "rel-0-8-2", "", ""},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		vvv, eee, fff := version.Decompose(tt.v)
		assert.Equal(t, tt.vvv, vvv, "vvv for %s", tt.v)
		assert.Equal(t, tt.eee, eee, "eee for %s", tt.v)
		assert.Equal(t, tt.fff, fff, "fff for %s", tt.v)
	}
}

func TestCompareBasicOrdering(t *testing.T) {
	assert.True(t, version.Less("1.0", "1.1"))
	assert.True(t, version.Less("1.9", "1.10"))
	assert.True(t, version.Less("1.2", "1.2.1"))
	assert.True(t, version.Equal("1.2.0", "1.2.0"))
}

func TestCompareEEESortsLeftOfAbsence(t *testing.T) {
	assert.True(t, version.Less("1.0-rc1", "1.0"))
}

func TestCompareFFFSortsRightOfAbsence(t *testing.T) {
	assert.True(t, version.Less("1.0", "1.0+patch1"))
}

func TestCompareScenario1(t *testing.T) {
	// spec.md §8 scenario 1: cfitsio 3.370, 3.450, 3.450+hack1
	assert.True(t, version.Less("3.370", "3.450"))
	assert.True(t, version.Less("3.450", "3.450+hack1"))
}

func TestCompareAntisymmetry(t *testing.T) {
	pairs := [][2]string{
		{"1.0", "2.0"}, {"1.0-rc1", "1.0"}, {"1.0", "1.0+p1"}, {"1.2.3", "1.2"},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, version.Compare(a, b), -version.Compare(b, a), "%s vs %s", a, b)
	}
}

func TestCompareTransitivity(t *testing.T) {
	vs := []string{"1.0-rc1", "1.0", "1.0+p1", "1.1", "2.0", "2.0.1"}
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			assert.True(t, version.Less(vs[i], vs[j]), "%s should sort before %s", vs[i], vs[j])
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	assert.Equal(t, 0, version.Compare("1.2.3", "1.2.3"))
}
