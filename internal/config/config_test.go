package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	s := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "", s.LogLevel)
	assert.Equal(t, "default", s.Theme)
	assert.Equal(t, "> ", s.Prompt)
	assert.False(t, s.NoColor)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"FABLE_THEME=plain\nFABLE_PROMPT=\"?? \"\nFABLE_NO_COLOR=true\n"), 0600))

	s := LoadFrom(path)

	assert.Equal(t, "plain", s.Theme)
	assert.Equal(t, "?? ", s.Prompt)
	assert.True(t, s.NoColor)
}

func TestLoadFrom_ProcessEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FABLE_THEME=plain\n"), 0600))

	t.Setenv(EnvTheme, "default")

	s := LoadFrom(path)
	assert.Equal(t, "default", s.Theme)
}

func TestLoadFrom_MalformedFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("just some words with no assignment"), 0600))

	s := LoadFrom(path)
	assert.Equal(t, "default", s.Theme)
}
