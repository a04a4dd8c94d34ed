package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	require.NoError(t, err)

	assert.Equal(t, Version, info.Version)
	assert.NotNil(t, info.SemVer)
	assert.True(t, strings.Contains(info.Platform, "/"))
}

func TestGetInfo_InvalidVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "not-a-version"
	_, err := GetInfo()
	assert.Error(t, err)
}

func TestFormatted(t *testing.T) {
	orig, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = orig, origCommit }()

	Version = "1.2.3"
	GitCommit = "abcdef0123456789"

	got := Formatted()
	assert.Contains(t, got, "FableShell v1.2.3")
	assert.Contains(t, got, "commit abcdef0")
}
