// Package project initializes and inspects a SPARKENTIC project directory.
//
// Init installs the template sets (.sparkentic-core/ and .claude/), ensures
// the conventional docs/, src/, src/tools/ and tests/ directories exist, and
// writes pyproject.toml when the project has none. Diagnose reports what is
// missing or stale in an existing project.
package project
