package fileurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformNames(t *testing.T) {
	assert.Equal(t, "posix", Posix.Name())
	assert.Equal(t, "windows", Windows.Name())
}

func TestSplitDrive(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantPrefix string
		wantRest   string
	}{
		{
			name:       "drive with backslash",
			path:       `C:\WINDOWS`,
			wantPrefix: "C:",
			wantRest:   `\WINDOWS`,
		},
		{
			name:       "lowercase drive",
			path:       "c:/tmp",
			wantPrefix: "c:",
			wantRest:   "/tmp",
		},
		{
			name:       "bare drive",
			path:       "C:",
			wantPrefix: "C:",
			wantRest:   "",
		},
		{
			name:       "no drive",
			path:       `\WINDOWS`,
			wantPrefix: "",
			wantRest:   `\WINDOWS`,
		},
		{
			name:       "digit is not a drive letter",
			path:       `1:\x`,
			wantPrefix: "",
			wantRest:   `1:\x`,
		},
		{
			name:       "colon too late",
			path:       `CC:\x`,
			wantPrefix: "",
			wantRest:   `CC:\x`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, rest := splitDrive(tt.path)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestIsDriveToken(t *testing.T) {
	assert.True(t, isDriveToken("C:"))
	assert.True(t, isDriveToken("z:"))
	assert.False(t, isDriveToken("C"))
	assert.False(t, isDriveToken("C:x"))
	assert.False(t, isDriveToken("1:"))
	assert.False(t, isDriveToken("::"))
	assert.False(t, isDriveToken(""))
}

func TestPosix_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"file:",
		"file://",
		"not a url at all",
		"file:///%",
		"file:///%F",
		"file:///\xff\xfe",
	}

	for _, in := range inputs {
		_, err := Posix.FileURLToPath(in)
		require.NoError(t, err, "input %q", in)
		_, err = Posix.PathToFileURL(in)
		require.NoError(t, err, "input %q", in)
	}
}

func TestLossyMatchesStrict_WhenValid(t *testing.T) {
	url, err := Windows.PathToFileURL(`C:\Program Files\app`)
	require.NoError(t, err)
	assert.Equal(t, url, Windows.LossyPathToFileURL(`C:\Program Files\app`))

	path, err := Windows.FileURLToPath(url)
	require.NoError(t, err)
	assert.Equal(t, path, Windows.LossyFileURLToPath(url))
}
