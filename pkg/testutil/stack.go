package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// NewTempStack creates an empty ups_db tree under a fresh temp directory and
// returns its root path.
func NewTempStack(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "ups_db"), 0755); err != nil {
		t.Fatalf("failed to create ups_db: %v", err)
	}
	return root
}

// WriteVersionFile writes a minimal *.version file for product/flavor under
// the given stack root, pointing at prodDir/tableFile.
func WriteVersionFile(t *testing.T, stackRoot, product, version, flavor, prodDir, tableFile string) string {
	t.Helper()
	dir := filepath.Join(stackRoot, "ups_db", product)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create product dir: %v", err)
	}
	path := filepath.Join(dir, version+".version")
	content := "File = Version\n" +
		"Product = " + product + "\n" +
		"Version = " + version + "\n" +
		"\nGroup:\n" +
		"\tFlavor = " + flavor + "\n" +
		"\tPROD_DIR = " + prodDir + "\n" +
		"\tUPS_DIR = ups\n" +
		"\tTABLE_FILE = " + tableFile + "\n" +
		"End:\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write version file: %v", err)
	}
	return path
}

// WriteChainFile writes a minimal *.chain (tag) file for product/flavor
// pointing at version, under the given stack root.
func WriteChainFile(t *testing.T, stackRoot, product, tag, flavor, version string) string {
	t.Helper()
	dir := filepath.Join(stackRoot, "ups_db", product)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create product dir: %v", err)
	}
	path := filepath.Join(dir, tag+".chain")
	content := "File = Chain\n" +
		"Product = " + product + "\n" +
		"Chain = " + tag + "\n" +
		"\nGroup:\n" +
		"\tFlavor = " + flavor + "\n" +
		"\tVersion = " + version + "\n" +
		"End:\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write chain file: %v", err)
	}
	return path
}

// WriteTableFile writes the given table-file content to path (creating
// parent directories) and returns path unchanged for chaining.
func WriteTableFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create table dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write table file: %v", err)
	}
	return path
}
