package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/afero"

	"github.com/sparkentic/sparkentic/internal/templates"
)

const defaultPackageName = "my-agent"

// ManifestData holds the variables available to pyproject.toml.tmpl.
type ManifestData struct {
	Name          string // e.g., "weather-agent"
	Version       string // e.g., "0.1.0"
	Description   string
	Author        string // "Name <email>"
	PythonVersion string // minimum version, e.g., "3.11"
}

// NewManifestData returns defaults for a project in dir, naming the package
// after the directory.
func NewManifestData(dir string) *ManifestData {
	return &ManifestData{
		Name:          PackageName(filepath.Base(dir)),
		Version:       "0.1.0",
		Description:   "AI Agent built with SPARKENTIC + Pydantic AI",
		Author:        "Your Name <you@example.com>",
		PythonVersion: "3.11",
	}
}

// PackageName turns a directory name into a Python distribution name:
// lower case, with runs of other characters collapsed to "-".
func PackageName(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimRight(b.String(), "-")
	if name == "" {
		return defaultPackageName
	}
	return name
}

// RenderManifest executes pyproject.toml.tmpl from fsys, falling back to the
// embedded template when fsys does not provide one.
func RenderManifest(fsys afero.Fs, data *ManifestData) ([]byte, error) {
	tmplBytes, err := afero.ReadFile(fsys, templates.ManifestTemplate)
	if errors.Is(err, fs.ErrNotExist) {
		tmplBytes, err = afero.ReadFile(templates.Embedded(), templates.ManifestTemplate)
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest template: %w", err)
	}

	tmpl, err := template.New(templates.ManifestTemplate).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing manifest template: %w", err)
	}
	return buf.Bytes(), nil
}
