package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilters(t *testing.T) {
	raw := []string{" CRANE ", "slate", "slate", "toolong", "abc", "cr4ne", "", "haste"}
	got, err := Validate(raw, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "haste"}, got)
}

func TestValidateEmpty(t *testing.T) {
	_, err := Validate([]string{"toolong", "abc"}, 5)
	assert.Error(t, err)
}

func TestValidateLength(t *testing.T) {
	got, err := Validate([]string{"crane", "abcd", "wxyz"}, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "wxyz"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nSLATE\nnope!\n"), 0o644))

	raw, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "SLATE", "nope!"}, raw)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestInitEmbeddedDefault(t *testing.T) {
	// Init runs once per process; exercise the embedded fallback here.
	require.NoError(t, Init("", 5))
	assert.Greater(t, Count(), 100)
	for _, w := range Words()[:10] {
		assert.Len(t, w, 5)
	}
}
