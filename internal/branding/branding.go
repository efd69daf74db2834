// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed and overlaid on the
// hard defaults below, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	Alias       string `yaml:"alias"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	Tagline     string `yaml:"tagline"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	DocsURL     string `yaml:"docs_url"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "sparkentic",
			Alias:       "spk",
			DisplayName: "SPARKENTIC",
			Description: "Scaffold production AI agent projects",
			Tagline:     "Production-Ready AI Agents | Pydantic AI | Test-Driven",
			HomeDir:     ".sparkentic",
			EnvPrefix:   "SPARKENTIC",
			DocsURL:     "https://github.com/joaodnascimento/sparkentic",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sparkentic").
func CLIName() string { load(); return defaults.CLIName }

// Alias returns the short command alias (e.g., "spk").
func Alias() string { load(); return defaults.Alias }

// DisplayName returns the product name as shown in the banner.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the one-line product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the line printed under the banner.
func Tagline() string { load(); return defaults.Tagline }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sparkentic").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SPARKENTIC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DocsURL returns the documentation link.
func DocsURL() string { load(); return defaults.DocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("color") → "SPARKENTIC_COLOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
