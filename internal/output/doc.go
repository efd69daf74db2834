// Package output renders everything the CLI shows a person: the banner,
// progress lines and errors.
//
// Colors live in a Palette value built once per command from the --color
// setting and TTY detection, and passed to whatever renders. There is no
// package-level color state; a plain Palette renders the same text without
// escape codes.
//
// Errors that should map to a specific process exit code are wrapped in
// ExitError; GetExitCode recovers the code in main.
package output
