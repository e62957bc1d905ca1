// Package fileutils provides the file operations shared by the store and
// the command layer.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory (and parents) if needed.
func EnsureDirectoryExists(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReadFile reads the entire contents of a file.
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile writes data to a file, creating parent directories if needed.
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadAttachments reads the given statement files and concatenates them
// into one raw text blob, each file preceded by a separator marker naming
// its source, so a single extraction covers all attachments.
func ReadAttachments(paths []string) (string, error) {
	var sb strings.Builder
	for _, p := range paths {
		data, err := ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("reading attachment %s: %w", p, err)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("--- arquivo: %s ---\n", filepath.Base(p)))
		sb.Write(data)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
