//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME; holds .sparkentic/config.yaml
	TemplatesDir string // an on-disk template root
	ProjectDir   string // the project being initialized
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so user settings never leak into the test. Env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		ProjectDir:   filepath.Join(t.TempDir(), "Weather Agent"),
	}

	t.Setenv("HOME", env.HomeDir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := os.MkdirAll(env.ProjectDir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}
	return env
}

// setupTemplates writes a small template root with both sets and a manifest
// template into dir.
func setupTemplates(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "core", "sparkentic.yaml"), `name: custom-core
version: "2.0.0"
workflow:
  - architect
agents:
  - name: architect
    role: Designs the agent
    command: spk-architect
    prompt: agents/architect.md
`)
	writeFile(t, filepath.Join(dir, "core", "agents", "architect.md"), "# Custom Architect\n")
	writeFile(t, filepath.Join(dir, "core", ".git", "HEAD"), "ref: refs/heads/main\n")
	writeFile(t, filepath.Join(dir, "claude", "commands", "sparkentic", "spk-architect.md"), "Custom architect command\n")
	writeFile(t, filepath.Join(dir, "pyproject.toml.tmpl"), "[tool.poetry]\nname = \"{{.Name}}\"\npython = \"^{{.PythonVersion}}\"\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
