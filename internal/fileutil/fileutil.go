// Package fileutil is the aggregator's file system collaborator: it reads
// ignore-file lines and file content, and writes the assembled document
// safely.
package fileutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ReadFileText returns the content of the file at path as text. A read
// failure is reported inside the returned string rather than as an error;
// the caller renders it in place of the content.
func ReadFileText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err)
	}
	return string(data)
}

// ReadLines returns the lines of the file at path. A missing or unreadable
// file yields nil, which downstream code treats as an empty input.
func ReadLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanner.Err() != nil {
		return nil
	}
	return lines
}

// WriteDocument writes data to path atomically while holding an exclusive
// flock on "<path>.lock", so two repoed runs in the same repository cannot
// interleave their writes.
//
// The write itself uses a temp-file-and-rename strategy: readers never see
// a partial document, and the previous document survives a failed write.
func WriteDocument(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file in the target's directory and
// renames it over the target. Rename is atomic within one filesystem, which
// the shared directory guarantees.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Clean up the temp file on any failure before the rename.
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
