package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	content := "not-really-a-jpeg"
	ref, err := store.Save(strings.NewReader(content), "photo.JPG")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/images/[a-z0-9]{8}\.jpg$`), ref)

	// The reference resolves to the stored bytes
	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))
}

func TestLocalImageStore_UniqueReferences(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ref1, err := store.Save(strings.NewReader("a"), "a.png")
	require.NoError(t, err)
	ref2, err := store.Save(strings.NewReader("b"), "b.png")
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}
