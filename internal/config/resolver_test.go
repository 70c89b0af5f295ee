// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// newTestResolver builds a Resolver over an in-memory environment and file.
func newTestResolver(env map[string]string, file map[string]string) *Resolver {
	if file == nil {
		file = map[string]string{}
	}

	return &Resolver{
		fileValues: file,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		environ: func() []string {
			out := make([]string, 0, len(env))
			for k, v := range env {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
}

func writeTempEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── Resolve ───────────────────────────────────────────────────────────────────

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file map[string]string
		opts []ResolveOption
		want string
	}{
		{
			name: "environment wins over file and default",
			env:  map[string]string{"K": "from-env"},
			file: map[string]string{"K": "from-file"},
			opts: []ResolveOption{WithDefault("d")},
			want: "from-env",
		},
		{
			name: "file used when environment is absent",
			file: map[string]string{"K": "from-file"},
			opts: []ResolveOption{WithDefault("d")},
			want: "from-file",
		},
		{
			name: "default used when neither has the key",
			opts: []ResolveOption{WithDefault("d")},
			want: "d",
		},
		{
			name: "environment value is trimmed",
			env:  map[string]string{"K": "  padded \t"},
			want: "padded",
		},
		{
			name: "empty environment value still wins",
			env:  map[string]string{"K": ""},
			file: map[string]string{"K": "from-file"},
			opts: []ResolveOption{WithDefault("d")},
			want: "",
		},
		{
			name: "blank file value falls through to default",
			file: map[string]string{"K": "   "},
			opts: []ResolveOption{WithDefault("d")},
			want: "d",
		},
		{
			name: "file value is trimmed",
			file: map[string]string{"K": " v "},
			want: "v",
		},
		{
			name: "empty default is returned as is",
			opts: []ResolveOption{WithDefault("")},
			want: "",
		},
		{
			name: "absent optional key resolves to empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.env, tt.file)

			got, err := r.Resolve("K", tt.opts...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_RequiredMissing(t *testing.T) {
	r := newTestResolver(nil, nil)

	got, err := r.Resolve("BASE_URL", Required())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "BASE_URL")
	assert.Empty(t, got)
}

func TestResolve_RequiredWithDefault(t *testing.T) {
	r := newTestResolver(nil, nil)

	got, err := r.Resolve("BASE_URL", Required(), WithDefault("http://fallback"))

	require.NoError(t, err)
	assert.Equal(t, "http://fallback", got)
}

func TestResolve_RequiredPresentInFile(t *testing.T) {
	r := newTestResolver(nil, map[string]string{"BASE_URL": "http://file"})

	got, err := r.Resolve("BASE_URL", Required())

	require.NoError(t, err)
	assert.Equal(t, "http://file", got)
}

// ── Lookup ────────────────────────────────────────────────────────────────────

func TestLookup_FileKeysAreCaseInsensitive(t *testing.T) {
	r := newTestResolver(nil, map[string]string{"BASE_URL": "http://x"})

	got, ok := r.Lookup("base_url")

	assert.True(t, ok)
	assert.Equal(t, "http://x", got)
}

func TestLookup_Absent(t *testing.T) {
	r := newTestResolver(nil, nil)

	_, ok := r.Lookup("NOPE")

	assert.False(t, ok)
}

// ── Environ ───────────────────────────────────────────────────────────────────

func TestEnviron_EnvOverlaysFile(t *testing.T) {
	r := newTestResolver(
		map[string]string{"BASE_URL": " http://env ", "UP_URLS": "a"},
		map[string]string{"BASE_URL": "http://file", "SUB_URLS": "x,y", "RE_URLS": "  "},
	)

	environ := r.Environ()

	assert.Equal(t, "http://env", environ["BASE_URL"])
	assert.Equal(t, "x,y", environ["SUB_URLS"])
	assert.Equal(t, "a", environ["UP_URLS"])
	_, hasBlank := environ["RE_URLS"]
	assert.False(t, hasBlank, "blank file entries must not be exported")
}

// ── NewResolver ───────────────────────────────────────────────────────────────

func TestNewResolver_ReadsFile(t *testing.T) {
	path := writeTempEnvFile(t, "[DEFAULT]\nBASE_URL = http://from-file\n")

	r := NewResolver(path)
	r.lookupEnv = func(string) (string, bool) { return "", false }

	got, err := r.Resolve("BASE_URL", Required())
	require.NoError(t, err)
	assert.Equal(t, "http://from-file", got)
}

func TestNewResolver_MissingFileIsEmpty(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "does-not-exist.env"))

	require.NotNil(t, r)
	assert.Empty(t, r.fileValues)
}

func TestNewResolver_MalformedFileIsEmpty(t *testing.T) {
	path := writeTempEnvFile(t, "KEY=\"unterminated\n")

	r := NewResolver(path)

	require.NotNil(t, r)
	assert.Empty(t, r.fileValues)
}

// ── ConfigFilePath ────────────────────────────────────────────────────────────

func TestConfigFilePath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		unsetEnv(t, "CONFIG_FILE")
		assert.Equal(t, "conf.env", ConfigFilePath())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", " /etc/relay/conf.env ")
		assert.Equal(t, "/etc/relay/conf.env", ConfigFilePath())
	})
}

func TestResolveUpstream(t *testing.T) {
	r := newTestResolver(
		map[string]string{"BASE_URL": "https://example.com/", "SUB_URLS": "a.txt, b c.txt"},
		map[string]string{"UP_URLS": " ,http://u1,, http://u2 ", "RE_URLS": "http://r"},
	)

	got, err := resolveUpstream(r)

	require.NoError(t, err)
	assert.Equal(t, Upstream{
		BaseURL: "https://example.com/",
		SubURLs: URLList{"a.txt", "b c.txt"},
		UpURLs:  URLList{"http://u1", "http://u2"},
		ReURLs:  URLList{"http://r"},
	}, got)
}

func TestResolveUpstream_ListsDefaultToEmpty(t *testing.T) {
	r := newTestResolver(map[string]string{"BASE_URL": "http://x"}, nil)

	got, err := resolveUpstream(r)

	require.NoError(t, err)
	assert.Equal(t, "http://x", got.BaseURL)
	assert.Empty(t, got.SubURLs)
	assert.Empty(t, got.UpURLs)
	assert.Empty(t, got.ReURLs)
}

func TestResolveUpstream_MissingBaseURL(t *testing.T) {
	r := newTestResolver(nil, map[string]string{"SUB_URLS": "a"})

	_, err := resolveUpstream(r)

	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "BASE_URL")
}
