package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(infos []FileInfo) []string {
	out := make([]string, 0, len(infos))
	for _, i := range infos {
		out = append(out, i.Name())
	}
	return out
}

func TestMemoryFileSystem_ReadDir_InsertionOrder(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/shaders")
	mfs.AddFile("z.frag", "void main() {}")
	mfs.AddFile("a.vert", "void main() {}")
	mfs.AddFile("nested/deep.comp", "void main() {}")
	mfs.AddFile("m.tesc", "void main() {}")

	infos, err := mfs.ReadDir("/test/shaders")
	require.NoError(t, err)
	assert.Equal(t, []string{"z.frag", "a.vert", "nested", "m.tesc"}, names(infos))
}

func TestMemoryFileSystem_ReadDir_NotRecursive(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("a/b/c.vert", "")

	infos, err := mfs.ReadDir("/root")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "a", infos[0].Name())
	assert.True(t, infos[0].IsDir())

	infos, err = mfs.ReadDir("/root/a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.vert"}, names(infos))
}

func TestMemoryFileSystem_ReadDir_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("file.vert", "")

	_, err := mfs.ReadDir("/root/missing")
	assert.Error(t, err)

	_, err = mfs.ReadDir("/root/file.vert")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.vert", "void main() {}")
	mfs.AddDir("sub.frag")

	info, err := mfs.Stat("/test/project/root.vert")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "root.vert", info.Name())
	assert.Equal(t, int64(len("void main() {}")), info.Size())

	info, err = mfs.Stat("sub.frag")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("/test/project/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.vert", "#version 450")

	content, err := mfs.ReadFile("/test/project/root.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 450", string(content))

	_, err = mfs.ReadFile("/test/project")
	assert.Error(t, err)

	_, err = mfs.ReadFile("/test/project/none.vert")
	assert.Error(t, err)
}

func TestMemoryFileSystem_AddFileOverwrites(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddFile("a.vert", "one")
	mfs.AddFile("a.vert", "two")

	infos, err := mfs.ReadDir("/r")
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	content, err := mfs.ReadFile("a.vert")
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))
}
