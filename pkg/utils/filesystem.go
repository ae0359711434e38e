// Package utils provides utility functions
package utils

import (
	"os"
	"os/exec"
)

// FileSystemUtils provides file system operations
type FileSystemUtils struct{}

// NewFileSystemUtils creates a new filesystem utils instance
func NewFileSystemUtils() *FileSystemUtils {
	return &FileSystemUtils{}
}

// Exists checks if a path exists
func (f *FileSystemUtils) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory checks if a path is a directory
func (f *FileSystemUtils) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindExecutable searches PATH for an executable with the given name.
// Returns the resolved path, or "" if the name cannot be found.
func (f *FileSystemUtils) FindExecutable(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}
