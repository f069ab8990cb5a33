package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocal(dir, "/uploads/")
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "image-abc.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "image-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestLocalPutRefusesOverwrite(t *testing.T) {
	s, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "same.gif", strings.NewReader("a"), "image/gif")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "same.gif", strings.NewReader("b"), "image/gif")
	assert.Error(t, err)
}

func TestLocalPutRejectsPathNames(t *testing.T) {
	s, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.png", "nested/dir.png", ".hidden"} {
		_, err := s.Put(context.Background(), name, strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
