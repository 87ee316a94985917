package app

import (
	"io/fs"
)

type FileSystem interface {
	ReadDirNames(dir string) ([]string, error)
	Lstat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// ProgressFunc is called whenever a directory unit finishes
type ProgressFunc func(current, total int)
