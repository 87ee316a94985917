package domain

import (
	"path"
	"time"
)

// FileRecord is one timestamped revision discovered in a directory.
type FileRecord struct {
	Timestamp time.Time
	// DirPath is relative to the cleanup root, slash separated with a
	// trailing slash. Empty means the root itself.
	DirPath string
	Name    string
}

func NewFileRecord(dirPath, name string, timestamp time.Time) FileRecord {
	return FileRecord{
		Timestamp: timestamp,
		DirPath:   dirPath,
		Name:      name,
	}
}

// RelPath is the record's path relative to the cleanup root.
func (r FileRecord) RelPath() string {
	return path.Join(r.DirPath, r.Name)
}

// DisplayDir mirrors how paths are shown in diagnostics, with the root as "./".
func DisplayDir(dirPath string) string {
	if dirPath == "" {
		return "./"
	}
	return dirPath
}

// ChildDir returns the relative path of a subdirectory named name.
func ChildDir(dirPath, name string) string {
	return dirPath + name + "/"
}
