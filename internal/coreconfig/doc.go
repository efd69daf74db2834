// Package coreconfig reads and checks .sparkentic-core/sparkentic.yaml, the
// workflow declaration installed by "sparkentic init". It validates the file
// against an embedded JSON Schema and compares its version with the core
// bundled in the running binary so doctor can flag stale projects.
package coreconfig
