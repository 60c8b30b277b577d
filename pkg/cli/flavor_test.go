package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/config"
	"github.com/RobertLuptonTheGood/eups/pkg/env"
)

func TestFlavorExplicitOverrideWins(t *testing.T) {
	ctx := &cli.Context{Config: &config.Config{Flavor: "NULL"}, State: env.New()}
	assert.Equal(t, "Linux64", cli.Flavor(ctx, "Linux64"))
}

func TestFlavorFallsBackToConfig(t *testing.T) {
	ctx := &cli.Context{Config: &config.Config{Flavor: "DarwinX86"}, State: env.New()}
	assert.Equal(t, "DarwinX86", cli.Flavor(ctx, ""))
}

func TestFlavorAutoDetectsWhenConfigIsNull(t *testing.T) {
	ctx := &cli.Context{Config: &config.Config{Flavor: "NULL"}, State: env.New()}
	got := cli.Flavor(ctx, "")
	assert.NotEmpty(t, got)
}
