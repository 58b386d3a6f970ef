package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arch-stack/fileurl"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, "native", settings.Platform)
	assert.False(t, settings.Lossy)
	assert.False(t, settings.Verbose)
}

func TestLoadSettings_NoConfigFile(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "native", settings.Platform)
	assert.False(t, settings.Lossy)
}

func TestLoadSettings_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `platform = "windows"
lossy = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fileurl.toml"), []byte(content), 0o600))

	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "windows", settings.Platform)
	assert.True(t, settings.Lossy)
	assert.False(t, settings.Verbose)
}

func TestLoadSettings_BrokenConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fileurl.toml"), []byte("platform = ["), 0o600))

	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "native", settings.Platform)
}

func TestPlatformValue(t *testing.T) {
	tests := []struct {
		setting string
		want    fileurl.Platform
	}{
		{"posix", fileurl.Posix},
		{"windows", fileurl.Windows},
		{"Windows", fileurl.Windows}, // case-insensitive
		{"native", fileurl.Default()},
		{"", fileurl.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.setting, func(t *testing.T) {
			platform, err := (&Settings{Platform: tt.setting}).PlatformValue()
			require.NoError(t, err)
			assert.Equal(t, tt.want, platform)
		})
	}

	_, err := (&Settings{Platform: "vms"}).PlatformValue()
	assert.Error(t, err)
}
