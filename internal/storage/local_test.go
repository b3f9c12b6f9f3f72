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

func TestLocal_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/products/")

	res, err := l.Put(context.Background(), strings.NewReader("fake-jpeg-bytes"), PutInput{
		Filename:    "truffles.JPG",
		ContentType: "image/jpeg",
		Size:        15,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".jpg"), "extension is lowered and kept")
	assert.Equal(t, "/uploads/products/"+res.Key, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DeleteMissingIsNoError(t *testing.T) {
	l := NewLocal(t.TempDir(), "/uploads")
	assert.NoError(t, l.Delete(context.Background(), "gone.png"))
}

func TestLocal_DeleteRejectsTraversal(t *testing.T) {
	l := NewLocal(t.TempDir(), "/uploads")
	assert.Error(t, l.Delete(context.Background(), "../secret.png"))
	assert.Error(t, l.Delete(context.Background(), "a/b.png"))
}

func TestLocal_KeysAreUniquePerUpload(t *testing.T) {
	l := NewLocal(t.TempDir(), "/uploads")

	a, err := l.Put(context.Background(), strings.NewReader("one"), PutInput{Filename: "same.png"})
	require.NoError(t, err)
	b, err := l.Put(context.Background(), strings.NewReader("two"), PutInput{Filename: "same.png"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}
