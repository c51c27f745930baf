package filestore_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-collector/pkg/apperror"
	"go-resume-collector/pkg/filestore"
)

const maxSize = 10 * 1024 * 1024

// pdfBytes returns a minimal payload that sniffs as application/pdf
func pdfBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("%PDF-1.4\n"))
	return data
}

func newStore(t *testing.T) (*filestore.LocalStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := filestore.NewLocalStore(fs, "uploads", maxSize)
	require.NoError(t, err)
	return store, fs
}

func TestSaveWritesUniqueNamePreservingExtension(t *testing.T) {
	store, fs := newStore(t)

	name, err := store.Save("resume.pdf", pdfBytes(64))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotEqual(t, "resume.pdf", name)
	assert.True(t, store.Exists(name))

	content, err := afero.ReadFile(fs, "uploads/"+name)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))

	// A second save of the same original name must not collide
	other, err := store.Save("resume.pdf", pdfBytes(64))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store, fs := newStore(t)

	_, err := store.Save("resume.txt", []byte("plain text resume"))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindInvalidFileType, appErr.Kind)

	// Nothing written to disk
	entries, err := afero.ReadDir(fs, "uploads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, fs := newStore(t)

	_, err := store.Save("resume.pdf", pdfBytes(11*1024*1024))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindFileTooLarge, appErr.Kind)

	entries, err := afero.ReadDir(fs, "uploads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsSpoofedContent(t *testing.T) {
	store, _ := newStore(t)

	// HTML named as .pdf must not pass the content sniff
	_, err := store.Save("resume.pdf", []byte("<html><body>not a pdf</body></html>"))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindInvalidFileType, appErr.Kind)
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)

	name, err := store.Save("resume.pdf", pdfBytes(64))
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))
	assert.False(t, store.Exists(name))

	// Deleting again reports the missing file
	assert.Error(t, store.Delete(name))
}
