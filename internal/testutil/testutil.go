// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Application module layout written by WidgetApp.
const (
	MainFile      = "src/main.ts"
	PolyfillsFile = "src/polyfills.ts"
	WidgetModule  = "src/app/widget-module#WidgetModule"
	SharedLib     = "core-lib"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WidgetApp lays out a small application in a temporary directory and
// returns it. Its widget module imports the core-lib shared library and
// that library's compiled factory; neither is present on disk.
func WidgetApp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, MainFile, "console.log('app');\n")
	WriteFile(t, dir, PolyfillsFile, "export {};\n")
	WriteFile(t, dir, "src/app/widget-module.ts", `import { register } from 'core-lib';
export class WidgetModule {}
export const registered = register('widgets');
`)
	WriteFile(t, dir, "src/app/widget-module.ngfactory.ts", `import { CoreLibModuleNgFactory } from 'core-lib/core-lib.ngfactory';
export const WidgetModuleNgFactory = { module: 'widgets', parent: CoreLibModuleNgFactory };
`)
	return dir
}

// ReadFile returns the content of dir/name, failing the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}
