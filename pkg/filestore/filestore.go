// Package filestore handles resume file persistence: upload validation,
// unique naming, and best-effort deletion. All paths live in a single flat
// directory; implementations must be safe for concurrent use.
package filestore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"go-resume-collector/pkg/apperror"
)

// Store abstracts resume file storage so usecases can be tested without
// touching the real disk.
type Store interface {
	// Save validates and writes the file, returning the generated unique
	// filename. Nothing is written when validation fails.
	Save(originalName string, data []byte) (string, error)

	// Delete removes a stored file by its generated name.
	Delete(filename string) error

	// Exists reports whether a stored file is present.
	Exists(filename string) bool
}

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Content types accepted after sniffing the upload bytes.
// application/zip covers DOCX (it is a ZIP container) and
// application/x-ole-storage covers legacy DOC. application/octet-stream is
// tolerated because office documents are often indistinguishable from raw
// binary at the prefix level.
var allowedMIMEs = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/zip",
	"application/x-ole-storage",
	"application/octet-stream",
}

// LocalStore writes files to a flat directory on an afero filesystem.
// Production uses afero.NewOsFs; tests use afero.NewMemMapFs.
type LocalStore struct {
	fs      afero.Fs
	dir     string
	maxSize int64
}

func NewLocalStore(fs afero.Fs, dir string, maxSize int64) (*LocalStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalStore{fs: fs, dir: dir, maxSize: maxSize}, nil
}

func (s *LocalStore) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", apperror.InvalidFileType(
			fmt.Sprintf("Invalid file type for '%s'", originalName),
		).WithDetail("Allowed types: .pdf, .doc, .docx")
	}

	if int64(len(data)) > s.maxSize {
		return "", apperror.FileTooLarge(
			fmt.Sprintf("File '%s' size exceeds the maximum limit", originalName),
		).WithDetail(fmt.Sprintf("File size: %.2f MB, Max allowed: %.2f MB",
			float64(len(data))/(1024*1024), float64(s.maxSize)/(1024*1024)))
	}

	if !contentAllowed(data) {
		return "", apperror.InvalidFileType(
			fmt.Sprintf("File content of '%s' does not match an allowed document type", originalName),
		)
	}

	// UUID hex keeps names collision-resistant while preserving the extension
	unique := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	path := filepath.Join(s.dir, unique)

	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", apperror.Storage("Failed to save resume file", err)
	}
	return unique, nil
}

func (s *LocalStore) Delete(filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("file not found: %s", filename)
	}
	return s.fs.Remove(path)
}

func (s *LocalStore) Exists(filename string) bool {
	exists, err := afero.Exists(s.fs, filepath.Join(s.dir, filepath.Base(filename)))
	return err == nil && exists
}

func contentAllowed(data []byte) bool {
	detected := mimetype.Detect(data)
	for _, m := range allowedMIMEs {
		if detected.Is(m) {
			return true
		}
	}
	return false
}
