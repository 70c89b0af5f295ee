package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestParseEnvFile_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "flat key=value pairs",
			content: "BASE_URL=http://x\nSUB_URLS=a,b\n",
			want:    map[string]string{"BASE_URL": "http://x", "SUB_URLS": "a,b"},
		},
		{
			name:    "default section header",
			content: "[DEFAULT]\nBASE_URL = http://x\n",
			want:    map[string]string{"BASE_URL": "http://x"},
		},
		{
			name:    "other sections are ignored",
			content: "BASE_URL=http://x\n[other]\nUP_URLS=http://skip\n[DEFAULT]\nRE_URLS=http://r\n",
			want:    map[string]string{"BASE_URL": "http://x", "RE_URLS": "http://r"},
		},
		{
			name:    "keys are upper-cased",
			content: "base_url=http://x\n",
			want:    map[string]string{"BASE_URL": "http://x"},
		},
		{
			name:    "colon separator",
			content: "BASE_URL: http://x\n",
			want:    map[string]string{"BASE_URL": "http://x"},
		},
		{
			name:    "comments are skipped",
			content: "# hash comment\n; semicolon comment\nBASE_URL=http://x\n",
			want:    map[string]string{"BASE_URL": "http://x"},
		},
		{
			name:    "quoted value",
			content: "SUB_URLS=\"a, b c\"\n",
			want:    map[string]string{"SUB_URLS": "a, b c"},
		},
		{
			name:    "byte order mark and CRLF",
			content: "\xEF\xBB\xBFBASE_URL=http://x\r\nUP_URLS=http://u\r\n",
			want:    map[string]string{"BASE_URL": "http://x", "UP_URLS": "http://u"},
		},
		{
			name:    "dollar signs are kept literally",
			content: "SUB_URLS=feed?sig=ab$cd,p$1\nUP_URLS=\"http://u/$HOME/${X}\"\nRE_URLS='http://r/$1'\n",
			want: map[string]string{
				"SUB_URLS": "feed?sig=ab$cd,p$1",
				"UP_URLS":  "http://u/$HOME/${X}",
				"RE_URLS":  "http://r/$1",
			},
		},
		{
			name:    "value referencing an earlier key is not expanded",
			content: "BASE_URL=http://x\nUP_URLS=$BASE_URL/up\n",
			want:    map[string]string{"BASE_URL": "http://x", "UP_URLS": "$BASE_URL/up"},
		},
		{
			name:    "empty file",
			content: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "conf.env")
			require.NoError(t, writeFile(path, tt.content))

			got, err := parseEnvFile(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvFile_MissingFile(t *testing.T) {
	_, err := parseEnvFile(filepath.Join(t.TempDir(), "nope.env"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEnvFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.env")
	require.NoError(t, writeFile(path, "BAD-KEY=1\n"))

	_, err := parseEnvFile(path)

	assert.Error(t, err)
}

func TestDefaultSectionOnly(t *testing.T) {
	raw := []byte("A=1\n[DEFAULT]\nB=2\n[x]\nC=3\n")

	got := string(defaultSectionOnly(raw))

	assert.Equal(t, "A=1\nB=2\n", got)
}

func TestDefaultSectionOnly_HidesDollarSigns(t *testing.T) {
	got := string(defaultSectionOnly([]byte("A=$1\n")))

	assert.Equal(t, "A="+dollarPlaceholder+"1\n", got)
}
