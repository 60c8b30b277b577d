// Package paths resolves the filesystem locations EUPS needs beyond a
// stack's own ups_db tree: the user's home-scoped tag directory
// (spec.md §4.3's `<home>/.eups/ups_db/<stack-id>/...` layout) and the
// XDG state directory the logger writes to. Grounded on dodot
// `pkg/paths/paths.go`'s XDG-resolution shape, narrowed to what EUPS
// itself needs (no dotfiles-root/pack-path machinery, which is specific
// to dodot's domain).
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// EnvHome, when set, overrides os.UserHomeDir — mirrors dodot's own
// override pattern and makes user-tag resolution testable without a
// real home directory.
const EnvHome = "EUPS_USERDATA_DIR"

// UserHome returns the directory EUPS treats as the user's home for tag
// storage: EnvHome if set, else os.UserHomeDir().
func UserHome() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	return os.UserHomeDir()
}

// dbDirName mirrors db.DBDirName without importing pkg/db, to keep
// pkg/paths free of a dependency on the database package it is itself a
// collaborator of.
const dbDirName = "ups_db"

// UserTagDB returns the root of the user-scope tag database for
// stackRoot, under home: `<home>/.eups/ups_db/<stack-id>`. Global
// (shared) chain files for the same product continue to live under
// stackRoot/ups_db; this tree only ever holds tags a single user
// declared privately (spec.md §4.3).
func UserTagDB(home, stackRoot string) string {
	return filepath.Join(home, ".eups", dbDirName, StackID(stackRoot))
}

// StackID derives a stable, filesystem-safe directory name from a stack
// root path, so two different stacks never collide under the shared
// per-user tag tree. It is deterministic and reversible enough for
// debugging (unlike a hash): leading slashes are dropped and the
// remaining path separators become underscores.
func StackID(stackRoot string) string {
	clean := filepath.Clean(stackRoot)
	clean = strings.TrimPrefix(clean, string(filepath.Separator))
	clean = strings.ReplaceAll(clean, string(filepath.Separator), "_")
	if clean == "" {
		clean = "root"
	}
	return clean
}

// appName is the subdirectory EUPS uses under each XDG base directory.
const appName = "eups"

// LogFilePath returns the path of the log file the logger appends to:
// $XDG_STATE_HOME/eups/eups.log, falling back to ~/.local/state/eups
// when XDG_STATE_HOME is unset (adrg/xdg's own fallback rule). It
// reloads xdg's cached environment first, so a change to XDG_STATE_HOME
// since process start (as in a test) is picked up.
func LogFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, appName, "eups.log")
}

// SplitStackPath splits an EUPS_PATH-style colon-separated list of stack
// roots into its elements, dropping empty segments a trailing/doubled
// colon would otherwise produce.
func SplitStackPath(eupsPath string) []string {
	var roots []string
	for _, p := range strings.Split(eupsPath, ":") {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}
