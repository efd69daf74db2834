// Package materialize reproduces a template directory tree at a destination.
// Directories are created as needed and regular files are copied byte for
// byte, overwriting whatever is already at the destination path. Both sides
// are afero filesystems, so templates can come from an embedded FS, a
// directory on disk, or memory.
package materialize
