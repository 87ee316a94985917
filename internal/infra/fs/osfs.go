package fs

import (
	"io/fs"
	"sort"

	"github.com/spf13/afero"
)

// AferoFS adapts an afero filesystem to the cleanup ports.
type AferoFS struct {
	Fs afero.Fs
}

func NewOSFS() AferoFS {
	return AferoFS{Fs: afero.NewOsFs()}
}

func NewMemFS() AferoFS {
	return AferoFS{Fs: afero.NewMemMapFs()}
}

// ReadDirNames lists the entry names of dir sorted by name. Entries are not
// stat'ed, so one unreadable entry does not hide its siblings.
func (a AferoFS) ReadDirNames(dir string) ([]string, error) {
	f, err := a.Fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Lstat describes path without following a trailing symlink when the
// underlying filesystem supports it.
func (a AferoFS) Lstat(path string) (fs.FileInfo, error) {
	if lstater, ok := a.Fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return a.Fs.Stat(path)
}

func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

func (a AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.Fs, path)
}

func (a AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.Fs.MkdirAll(path, perm)
}

func (a AferoFS) Rename(oldPath, newPath string) error {
	return a.Fs.Rename(oldPath, newPath)
}

func (a AferoFS) Remove(path string) error {
	return a.Fs.Remove(path)
}
