package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExtra_EmptyPathReturnsNil(t *testing.T) {
	got, err := LoadExtra("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadExtra_MissingPathReturnsNil(t *testing.T) {
	got, err := LoadExtra("/nonexistent/words.txt")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadExtra_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Golang\n\n  \nRust\n"), 0o600))

	got, err := LoadExtra(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "rust"}, got)
}

func TestBangExtensions_FlattensTriggerAndName(t *testing.T) {
	got := BangExtensions([][2]string{{"Y", "YouTube"}, {"G", "Google"}})
	assert.Equal(t, []string{"y", "youtube", "g", "google"}, got)
}
