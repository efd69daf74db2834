package materialize

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotDir is wrapped by an IOError when the source root is not a directory.
var ErrNotDir = errors.New("not a directory")

// DefaultExcludes are entries that never belong in a generated project.
// Materialize copies everything unless told otherwise with WithExclude.
var DefaultExcludes = []string{".git", ".DS_Store", "node_modules"}

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Result lists what a materialization touched. Paths are slash-separated and
// relative to the destination root; the root itself is ".".
type Result struct {
	Dirs    []string // directories that did not exist before
	Files   []string // files written, new or overwritten
	Skipped []string // excluded names, symlinks and special files
}

// Option configures a materialization.
type Option func(*options)

type options struct {
	exclude map[string]bool
	logger  *slog.Logger
}

// WithExclude skips entries with any of the given base names, at any depth.
func WithExclude(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.exclude[n] = true
		}
	}
}

// WithLogger traces every created directory, written file and skipped entry
// at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type materializer struct {
	src    afero.Fs
	dst    afero.Fs
	opts   options
	result *Result
}

// Materialize reproduces the tree rooted at srcRoot in src under dstRoot in
// dst. Missing destination directories are created, files are copied byte for
// byte and existing destination files are overwritten.
//
// srcRoot is stat'ed before anything is written, so a missing source leaves
// dst untouched. Any later failure aborts the traversal and is returned as an
// *IOError together with the partial Result; entries already written are left
// in place. A destination entry whose kind differs from the source entry
// (file versus directory), or a symlink below dstRoot, is an error wrapping
// ErrKindConflict. When src and dst share storage the caller must keep
// dstRoot outside srcRoot; MaterializeDir checks this.
func Materialize(src afero.Fs, srcRoot string, dst afero.Fs, dstRoot string, opts ...Option) (*Result, error) {
	o := options{
		exclude: make(map[string]bool),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := src.Stat(srcRoot)
	if err != nil {
		return nil, ioErr("stat", srcRoot, err)
	}
	if !info.IsDir() {
		return nil, ioErr("stat", srcRoot, ErrNotDir)
	}

	m := &materializer{src: src, dst: dst, opts: o, result: &Result{}}
	if err := m.copyDir(srcRoot, dstRoot, "."); err != nil {
		return m.result, err
	}
	return m.result, nil
}

// MaterializeDir is Materialize on the host filesystem. The source side is
// opened read-only. A destination inside the source is rejected before
// anything is written.
func MaterializeDir(source, destination string, opts ...Option) (*Result, error) {
	nested, err := within(source, destination)
	if err != nil {
		return nil, ioErr("stat", destination, err)
	}
	if nested {
		return nil, ioErr("stat", destination, ErrDestinationInSource)
	}

	osFs := afero.NewOsFs()
	return Materialize(afero.NewReadOnlyFs(osFs), source, osFs, destination, opts...)
}

// within reports whether path is root or lies below it.
func within(root, path string) (bool, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

func (m *materializer) copyDir(srcDir, dstDir, rel string) error {
	if err := m.ensureDir(dstDir, rel); err != nil {
		return err
	}

	entries, err := afero.ReadDir(m.src, srcDir)
	if err != nil {
		return ioErr("readdir", srcDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := path.Join(rel, name)

		if m.opts.exclude[name] {
			m.skip(childRel, "excluded")
			continue
		}

		srcPath := filepath.Join(srcDir, name)
		dstPath := filepath.Join(dstDir, name)

		switch {
		case entry.IsDir():
			if err := m.copyDir(srcPath, dstPath, childRel); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			if err := m.copyFile(srcPath, dstPath, childRel); err != nil {
				return err
			}
		default:
			m.skip(childRel, "not a regular file")
		}
	}

	return nil
}

func (m *materializer) ensureDir(dir, rel string) error {
	// The root itself may be reached through a symlink; entries below it may not.
	var info os.FileInfo
	var err error
	if rel == "." {
		info, err = m.dst.Stat(dir)
	} else {
		info, err = m.lstat(dir)
	}
	switch {
	case err == nil && isSymlink(info):
		return ioErr("mkdir", dir, ErrKindConflict)
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return ioErr("mkdir", dir, ErrKindConflict)
	case !errors.Is(err, fs.ErrNotExist):
		return ioErr("stat", dir, err)
	}

	if err := m.dst.MkdirAll(dir, dirPerm); err != nil {
		return ioErr("mkdir", dir, err)
	}
	m.result.Dirs = append(m.result.Dirs, rel)
	m.opts.logger.Debug("created directory", "path", dir)
	return nil
}

func (m *materializer) copyFile(srcPath, dstPath, rel string) error {
	data, err := afero.ReadFile(m.src, srcPath)
	if err != nil {
		return ioErr("read", srcPath, err)
	}

	if info, err := m.lstat(dstPath); err == nil && (info.IsDir() || isSymlink(info)) {
		return ioErr("write", dstPath, ErrKindConflict)
	}

	if err := afero.WriteFile(m.dst, dstPath, data, filePerm); err != nil {
		return ioErr("write", dstPath, err)
	}
	m.result.Files = append(m.result.Files, rel)
	m.opts.logger.Debug("wrote file", "path", dstPath, "bytes", len(data))
	return nil
}

// lstat does not follow a final symlink when the destination supports it.
func (m *materializer) lstat(name string) (os.FileInfo, error) {
	if l, ok := m.dst.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return m.dst.Stat(name)
}

func isSymlink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

func (m *materializer) skip(rel, reason string) {
	m.result.Skipped = append(m.result.Skipped, rel)
	m.opts.logger.Debug("skipped entry", "path", rel, "reason", reason)
}
