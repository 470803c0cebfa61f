package filesystem

import (
	"errors"
	"io/fs"
)

// FS is the subset of filesystem operations the fixtures need
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Exists reports whether path can be stat'ed on fsys.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsEmptyDir reports whether path is an existing directory with no entries.
func IsEmptyDir(fsys FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, &fs.PathError{Op: "readdir", Path: path, Err: errors.New("not a directory")}
	}
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
