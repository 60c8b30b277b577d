package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf.Provider over an in-memory []byte,
// letting the embedded defaults load through the same toml.Parser() path
// as a file on disk. Grounded on dodot pkg/config/embed.go's identical
// shim (koanf has no built-in "load these bytes" provider).
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("rawBytesProvider: use ReadBytes")
}
