package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderDefaults(t *testing.T) {
	h, err := ParseHeader("$ ls")
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader(), h)

	h, err = ParseHeader("#! {}")
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader(), h)
}

func TestParseHeaderOverrides(t *testing.T) {
	h, err := ParseHeader(`#! {"step": 0.05, "width": 120}`)
	require.NoError(t, err)
	assert.Equal(t, 0.05, h.Step)
	assert.Equal(t, 120, h.Width)
	assert.Equal(t, DefaultHeight, h.Height)
}

func TestParseHeaderMalformed(t *testing.T) {
	_, err := ParseHeader(`#! {"step": }`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHeader))

	_, err = ParseHeader(`#! {"width": -1}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestReadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.scenario")
	content := "#! {\"height\": 30}\n$ ls\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	h, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, 30, h.Height)
	assert.Equal(t, DefaultWidth, h.Width)
}

func TestReadHeaderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.scenario")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	h, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader(), h)
}
