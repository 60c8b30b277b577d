package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath overrides the location of eups.toml, bypassing the
// default `<home>/.eups/eups.toml` search.
const EnvConfigPath = "EUPS_CONFIG"

// Load builds a Config from, in increasing priority: the embedded
// defaults, an optional eups.toml found under home (or at
// EUPS_CONFIG), and EUPS_* environment variables. home is the user's
// home directory (see pkg/paths.UserHome); pass "" to skip the
// eups.toml search entirely.
func Load(home string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "loading embedded config defaults")
	}

	if path := configFilePath(home); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.CodeIO, "loading config file %s", path)
			}
		}
	}

	if overlay := envOverlay(); len(overlay) > 0 {
		if err := k.Load(confmap.Provider(overlay, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "merging EUPS_* environment overrides")
		}
	}

	var cfg Config
	decConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, decConf); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "unmarshaling configuration")
	}

	cfg.StackRoots = resolveStackRoots()
	return &cfg, nil
}

// configFilePath resolves the eups.toml location: EUPS_CONFIG if set,
// else <home>/.eups/eups.toml, else "" (no file to try) when home is
// empty.
func configFilePath(home string) string {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".eups", "eups.toml")
}

// envOverlay builds the koanf overlay map for EUPS_FLAVOR/EUPS_SHELL/
// EUPS_DEBUG, including a variable only when it is set to a non-empty
// value: an env var a shell exports empty should behave as unset, not
// as an explicit override of an already-loaded default or config value.
func envOverlay() map[string]interface{} {
	overlay := map[string]interface{}{}
	if v := os.Getenv("EUPS_FLAVOR"); v != "" {
		overlay["flavor"] = v
	}
	if v := os.Getenv("EUPS_SHELL"); v != "" {
		overlay["shell"] = v
	}
	if v := os.Getenv("EUPS_DEBUG"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			overlay["debug"] = n
		} else {
			overlay["debug"] = v
		}
	}
	return overlay
}

// resolveStackRoots reads EUPS_PATH (colon-separated) or, failing that,
// EUPS_DIR as a single-element fallback (spec.md §6). Unlike flavor,
// shell, and debug, stack roots have no eups.toml equivalent: spec.md
// defines them purely as an environment input, so there is nothing to
// layer through koanf here.
func resolveStackRoots() []string {
	if p := os.Getenv("EUPS_PATH"); p != "" {
		return paths.SplitStackPath(p)
	}
	if d := os.Getenv("EUPS_DIR"); d != "" {
		return []string{d}
	}
	return nil
}
