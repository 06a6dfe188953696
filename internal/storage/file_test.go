package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	kv, err := NewFileKV(dir, nil)
	require.NoError(t, err)
	kv.Set("greeting", "hello")

	kv2, err := NewFileKV(dir, nil)
	require.NoError(t, err)
	v, ok := kv2.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "hello", v)
}

func TestFileKV_MissingKey(t *testing.T) {
	kv, err := NewFileKV(t.TempDir(), nil)
	require.NoError(t, err)

	_, ok := kv.Get("nothing")
	require.False(t, ok)
}

func TestFileKV_CorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o644))

	kv, err := NewFileKV(dir, nil)
	require.NoError(t, err)

	_, ok := kv.Get("anything")
	require.False(t, ok)

	// A write replaces the corrupt blob with a readable one.
	kv.Set("k", "v")
	v, ok := kv.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestFileKV_RemoveAndClear(t *testing.T) {
	kv, err := NewFileKV(t.TempDir(), nil)
	require.NoError(t, err)

	kv.Set("a", "1")
	kv.Set("b", "2")

	kv.Remove("a")
	_, ok := kv.Get("a")
	require.False(t, ok)
	_, ok = kv.Get("b")
	require.True(t, ok)

	// Removing a missing key is a no-op.
	kv.Remove("a")

	kv.Clear()
	_, ok = kv.Get("b")
	require.False(t, ok)
}
