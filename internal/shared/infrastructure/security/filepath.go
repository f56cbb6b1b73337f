// Package security validates the file paths the CLI reads minutes from and
// exports them to.
package security

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	// MaxContentBytes bounds a markdown file read as meeting content.
	MaxContentBytes = 4 << 20
	// ExportFileMode is the mode of exported markdown files.
	ExportFileMode os.FileMode = 0o644
)

// dangerousChars contains shell metacharacters rejected in paths.
var dangerousChars = []string{";", "&", "|", "$", "`", "<", ">", "\n", "\r"}

// ErrContentTooLarge is returned when a content file exceeds MaxContentBytes.
var ErrContentTooLarge = fmt.Errorf("content file exceeds %d bytes", MaxContentBytes)

// ValidateFilePath cleans path, makes it absolute and resolves symlinks when
// the file exists.
func ValidateFilePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("file path cannot be empty")
	}
	for _, char := range dangerousChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("file path contains forbidden character %q: %s", char, path)
		}
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cleanPath, nil
		}
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	return resolved, nil
}

// ReadContentFile reads a markdown file after validating its path.
func ReadContentFile(path string) (string, error) {
	cleanPath, err := ValidateFilePath(path)
	if err != nil {
		return "", err
	}

	// #nosec G304 - path is validated above
	f, err := os.Open(cleanPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	return ReadContent(f)
}

// ReadContent reads markdown from r, failing with ErrContentTooLarge past
// MaxContentBytes.
func ReadContent(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxContentBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxContentBytes {
		return "", ErrContentTooLarge
	}
	return string(data), nil
}

// WriteFileAtomic writes data to a temporary file beside path, syncs it and
// renames it into place, so a failed export never leaves a truncated file.
func WriteFileAtomic(path string, data []byte) error {
	cleanPath, err := ValidateFilePath(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	if err := atomic.WriteFile(cleanPath, bytes.NewReader(data)); err != nil {
		return err
	}

	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(cleanPath, ExportFileMode)
}
