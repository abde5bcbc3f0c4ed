package upload

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
	l := NewLocal(dir, "/uploads/")

	res, err := l.Put(context.Background(), strings.NewReader("png-bytes"), PutInput{
		Filename:    "custom-design.png",
		ContentType: "image/png",
		Size:        9,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(t.TempDir(), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	l := NewLocal(dir, "/uploads")
	_ = l.Delete(context.Background(), "../"+filepath.Base(filepath.Dir(outside))+"/victim.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".png", safeExt("a.PNG"))
	assert.Equal(t, ".webp", safeExt("photo.webp"))
	assert.Equal(t, "", safeExt("evil.sh"))
	assert.Equal(t, "", safeExt("noext"))
}
