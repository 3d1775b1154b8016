// Package timeline loads and saves career timeline documents.
package timeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/career-pivots/internal/types"
)

// BackupSuffix is appended to the data file name by Backup.
const BackupSuffix = ".bak"

// LoadDocument loads a career timeline document from a JSON file
func LoadDocument(path string) (*types.Document, error) {
	// Read file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Unmarshal JSON
	var doc types.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &doc, nil
}

// Encode renders doc with 2-space indentation. Non-ASCII characters and HTML
// metacharacters are written literally.
func Encode(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SaveDocument writes doc to path. The content goes to a temporary file in the
// same directory which then replaces path, so a failed save leaves the
// previous file intact.
func SaveDocument(doc *types.Document, path string) error {
	content, err := Encode(doc)
	if err != nil {
		return &SaveError{Message: "failed to marshal document", Cause: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &SaveError{Message: "failed to create output directory", Cause: err}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return &SaveError{Message: "failed to create temporary file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return &SaveError{Message: fmt.Sprintf("failed to write %s", tmpPath), Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &SaveError{Message: fmt.Sprintf("failed to sync %s", tmpPath), Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to close %s", tmpPath), Cause: err}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to set mode on %s", tmpPath), Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to replace %s", path), Cause: err}
	}

	return nil
}

// Backup copies the file at path next to it with BackupSuffix and returns the
// backup path.
func Backup(path string) (string, error) {
	backupPath := path + BackupSuffix

	src, err := os.Open(path)
	if err != nil {
		return "", &SaveError{Message: fmt.Sprintf("failed to open %s for backup", path), Cause: err}
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", &SaveError{Message: fmt.Sprintf("failed to create backup %s", backupPath), Cause: err}
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", &SaveError{Message: fmt.Sprintf("failed to copy to backup %s", backupPath), Cause: err}
	}
	if err := dst.Close(); err != nil {
		return "", &SaveError{Message: fmt.Sprintf("failed to close backup %s", backupPath), Cause: err}
	}

	return backupPath, nil
}
