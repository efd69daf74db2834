// Package cli defines the Cobra command tree for the sparkentic CLI. Each file
// in this package registers one top-level command (init, doctor, config,
// version) with the root command. Commands delegate to internal packages for
// the work and only handle flags and output.
package cli
