package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	fsinfra "fhcleanup/internal/infra/fs"
)

var errInjected = errors.New("injected failure")

// faultyFS wraps an in-memory filesystem and fails selected operations.
type faultyFS struct {
	fsinfra.AferoFS
	failRename map[string]bool
	failRemove map[string]bool
	failMkdir  bool
	failList   map[string]bool
	failLstat  map[string]bool
	failExists map[string]bool
}

func newFaultyFS() *faultyFS {
	return &faultyFS{
		AferoFS:    fsinfra.NewMemFS(),
		failRename: map[string]bool{},
		failRemove: map[string]bool{},
		failList:   map[string]bool{},
		failLstat:  map[string]bool{},
		failExists: map[string]bool{},
	}
}

func (f *faultyFS) ReadDirNames(dir string) ([]string, error) {
	if f.failList[filepath.Clean(dir)] {
		return nil, errInjected
	}
	return f.AferoFS.ReadDirNames(dir)
}

func (f *faultyFS) Lstat(path string) (fs.FileInfo, error) {
	if f.failLstat[filepath.Clean(path)] {
		return nil, errInjected
	}
	return f.AferoFS.Lstat(path)
}

func (f *faultyFS) Exists(path string) (bool, error) {
	if f.failExists[filepath.Clean(path)] {
		return false, errInjected
	}
	return f.AferoFS.Exists(path)
}

func (f *faultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.failMkdir {
		return errInjected
	}
	return f.AferoFS.MkdirAll(path, perm)
}

func (f *faultyFS) Rename(oldPath, newPath string) error {
	if f.failRename[filepath.Clean(oldPath)] {
		return errInjected
	}
	return f.AferoFS.Rename(oldPath, newPath)
}

func (f *faultyFS) Remove(path string) error {
	if f.failRemove[filepath.Clean(path)] {
		return errInjected
	}
	return f.AferoFS.Remove(path)
}

func writeFiles(t *testing.T, fsys afero.Fs, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := afero.WriteFile(fsys, name, []byte(name), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
}

func assertExists(t *testing.T, fsys afero.Fs, name string, want bool) {
	t.Helper()
	exists, err := afero.Exists(fsys, name)
	if err != nil {
		t.Fatalf("exists %s: %v", name, err)
	}
	if exists != want {
		t.Fatalf("expected exists(%s) = %v", name, want)
	}
}
