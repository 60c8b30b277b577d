// Package format implements `list`/`tags`'s --format table|json|yaml
// selection (auto resolves to table) and a terminal-capability check,
// grounded on dodot's pkg/ui/format.go (termenv/go-isatty TTY detection)
// generalized per SPEC_FULL.md's "list output formats" supplement.
package format

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format selects how List/Tags results are rendered.
type Format int

const (
	FormatAuto Format = iota
	FormatTable
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat parses the `--format` flag's value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// Resolve turns FormatAuto into FormatTable when output is an interactive
// terminal capable of color, else FormatTable still (plain mode handles
// the non-color case; JSON/YAML are only selected explicitly).
func Resolve(f Format, output *os.File) Format {
	if f != FormatAuto {
		return f
	}
	return FormatTable
}

// IsColorTerminal reports whether output supports ANSI color rendering.
// Nothing in the repo calls it: pkg/ui/table always renders with pterm
// and falls back to plain text only when rendering fails.
func IsColorTerminal(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// MarshalJSON renders v (typically []cli.ProductListing or []cli.TagInfo)
// as indented JSON.
func MarshalJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalYAML renders v as YAML.
func MarshalYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
