package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineIndex(t *testing.T) {
	idx := BuildLineIndex([]byte("abc\ndef\nghi"))
	require.Equal(t, 3, idx.LineCount())
	assert.Equal(t, uint32(0), idx[0])
	assert.Equal(t, uint32(4), idx[1])
	assert.Equal(t, uint32(8), idx[2])
}

func TestByteRangeForLines(t *testing.T) {
	source := []byte("abc\ndef\nghi\n")
	idx := BuildLineIndex(source)

	start, end := idx.ByteRangeForLines(source, 2, 2)
	assert.Equal(t, "def\n", string(source[start:end]))

	start, end = idx.ByteRangeForLines(source, 1, 3)
	assert.Equal(t, "abc\ndef\nghi\n", string(source[start:end]))
}

func TestLineForByte(t *testing.T) {
	source := []byte("abc\ndef\nghi")
	idx := BuildLineIndex(source)

	assert.Equal(t, 1, idx.LineForByte(0))
	assert.Equal(t, 2, idx.LineForByte(4))
	assert.Equal(t, 3, idx.LineForByte(9))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.go"))
	require.Error(t, err)
}

func TestReadLinesRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.go")
	content := "line1\nline2\nline3\nline4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := ReadLines(path, 2, 3)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Number)
	assert.Equal(t, "line2", lines[0].Text)
	assert.Equal(t, "line3", lines[1].Text)
}

func TestReadLinesToEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.go")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	lines, err := ReadLines(path, 2, 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[0].Text)
	assert.Equal(t, "c", lines[1].Text)
}
