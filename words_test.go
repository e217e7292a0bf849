package prefixindex_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/prefixindex"
)

func TestReadWords(t *testing.T) {
	input := "apple\n  app \n\n\tapplication\r\nbanana"

	words, err := prefixindex.ReadWords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "app", "application", "banana"}, words)
}

func TestReadWordsError(t *testing.T) {
	boom := errors.New("boom")

	_, err := prefixindex.ReadWords(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestLoadWords(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(filename, []byte("cat\ndog\ncat\n"), 0o644))

	words, err := prefixindex.LoadWords(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "cat"}, words)

	idx := prefixindex.NewFrom(words...)
	assert.Equal(t, []string{"cat", "dog"}, idx.Display())
}

func TestLoadWordsEmptyFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(filename, nil, 0o644))

	words, err := prefixindex.LoadWords(filename)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := prefixindex.LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite(t *testing.T) {
	idx := prefixindex.NewFrom("dog", "cat", "")

	var buffer bytes.Buffer
	n, err := idx.Write(&buffer)
	require.NoError(t, err)

	assert.Equal(t, "\ncat\ndog\n", buffer.String())
	assert.Equal(t, int64(buffer.Len()), n)
}

// shortWriter accepts limit bytes and then fails.
type shortWriter struct {
	limit   int
	written bytes.Buffer
}

func (w *shortWriter) Write(p []byte) (int, error) {
	room := w.limit - w.written.Len()
	if len(p) > room {
		w.written.Write(p[:room])
		return room, errors.New("disk full")
	}
	return w.written.Write(p)
}

func TestWriteShort(t *testing.T) {
	idx := prefixindex.NewFrom("apple", "banana", "cherry")

	w := &shortWriter{limit: 9}
	n, err := idx.Write(w)
	require.Error(t, err)

	assert.Equal(t, int64(9), n)
	assert.Equal(t, "apple\nban", w.written.String())
}
