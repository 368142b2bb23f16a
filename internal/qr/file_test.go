package qr

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_PixelsMatchImage(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("https://example.com")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "qrcode.png")
	require.NoError(t, WriteFile(path, code))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	want := code.Image()
	require.Equal(t, want.Bounds(), got.Bounds())
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
	assert.Equal(t, "https://example.com", decode(t, got))
}

func TestWriteFile_Idempotent(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("twice")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "qrcode.png")
	require.NoError(t, WriteFile(path, code))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, code))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("nowhere")
	require.NoError(t, err)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "qrcode.png"), code)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_EmptyPath(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("x")
	require.NoError(t, err)
	assert.ErrorIs(t, WriteFile("", code), ErrIOFailure)
}

func TestWriteFile_ReadOnlyTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	code, err := NewEncoder(DefaultOptions()).Encode("locked")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "qrcode.png")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o444))

	err = WriteFile(path, code)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, os.ErrPermission)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data), "a read-only file is not replaced")
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), fi.Mode().Perm())
}

func TestWriteFile_KeepsExistingMode(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("private")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "qrcode.png")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, WriteFile(path, code))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestWriteFile_DirectoryTarget(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("dir")
	require.NoError(t, err)
	assert.ErrorIs(t, WriteFile(t.TempDir(), code), ErrIOFailure)
}
