// Package templates holds the template sets that "sparkentic init" installs
// into a project, compiled into the binary with //go:embed.
//
//   - core   → .sparkentic-core/ (workflow config, agent instructions, checklists)
//   - claude → .claude/ (slash commands under commands/sparkentic/)
//
// pyproject.toml.tmpl is the default project manifest, rendered with
// text/template by the project package.
//
// A templates directory on disk with the same layout can replace the embedded
// sets; see Source.
package templates
