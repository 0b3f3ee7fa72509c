package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Error constants for better error handling
var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
	ErrInvalidPath  = fmt.Errorf("filesystem: invalid path")
)

// Filesystem is the read-only surface the server depends on. The
// static document root is input, never owned state, so there is no
// write path here.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	Open(path string) (io.ReadCloser, error)

	FileExists(path string) (bool, error)
	FileSize(path string) (int64, error)
	FileMetaData(path string) (os.FileInfo, error)

	IsFile(path string) (bool, error)
	IsDirectory(path string) (bool, error)
	GetAbsolutePath(path string) (string, error)
}

type localFileSystem struct {
}

func NewLocalFileSystem() Filesystem {
	return &localFileSystem{}
}

// ReadFile implements Filesystem.
func (filesystem *localFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	return content, nil
}

// Open implements Filesystem.
func (filesystem *localFileSystem) Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	return file, nil
}

// FileExists implements Filesystem.
func (filesystem *localFileSystem) FileExists(path string) (bool, error) {
	if path == "" {
		return false, ErrInvalidPath
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return !info.IsDir(), nil
}

// FileSize implements Filesystem.
func (filesystem *localFileSystem) FileSize(path string) (int64, error) {
	info, err := filesystem.FileMetaData(path)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

// FileMetaData implements Filesystem.
func (filesystem *localFileSystem) FileMetaData(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	return info, nil
}

// IsFile implements Filesystem.
func (filesystem *localFileSystem) IsFile(path string) (bool, error) {
	info, err := filesystem.FileMetaData(path)
	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// IsDirectory implements Filesystem.
func (filesystem *localFileSystem) IsDirectory(path string) (bool, error) {
	info, err := filesystem.FileMetaData(path)
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

// GetAbsolutePath implements Filesystem.
func (filesystem *localFileSystem) GetAbsolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrInvalidPath
	}

	return filepath.Abs(path)
}
