package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

//go:embed assets
var assets embed.FS

// Template set directories and well-known files, relative to a template root.
const (
	CoreSet          = "core"
	ClaudeSet        = "claude"
	ManifestTemplate = "pyproject.toml.tmpl"
	CoreConfigFile   = "sparkentic.yaml"
)

// Embedded returns the template tree compiled into the binary.
func Embedded() afero.Fs {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		// fs.Sub only fails for an invalid path literal.
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Source returns the template tree to install from. An empty dir selects the
// embedded templates; otherwise dir must be an existing directory and is
// exposed read-only with dir as its root.
func Source(dir string) (afero.Fs, error) {
	if dir == "" {
		return Embedded(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %s is not a directory", dir)
	}

	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// BundledCoreConfig returns the core workflow config shipped with this build.
func BundledCoreConfig() ([]byte, error) {
	return fs.ReadFile(assets, "assets/"+CoreSet+"/"+CoreConfigFile)
}
