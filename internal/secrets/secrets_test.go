// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lecture-notes/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Store
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "  AIza-abc  \n")
				writeFile(t, dir, "anthropic-api-key", "sk-ant-xyz")
				return dir
			},
			want: Store{"gemini-api-key": "AIza-abc", "anthropic-api-key": "sk-ant-xyz"},
		},
		{
			name:  "missing directory is empty",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent") },
			want:  Store{},
		},
		{
			name: "skips empty files, dotfiles and directories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "k1")
				writeFile(t, dir, "blank", " \n\t")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Store{"gemini-api-key": "k1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_UnreadableFileIsLogged(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "gemini-api-key", "good")
	bad := filepath.Join(dir, "anthropic-api-key")
	require.NoError(t, os.WriteFile(bad, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })

	var logBuf bytes.Buffer
	got, err := Load(dir, zerolog.New(&logBuf))
	require.NoError(t, err)
	assert.Equal(t, Store{"gemini-api-key": "good"}, got)
	assert.Contains(t, logBuf.String(), "could not read secret")
}

func TestStore_APIKey(t *testing.T) {
	s := Store{"gemini-api-key": "g", "anthropic-api-key": "a"}
	assert.Equal(t, "g", s.APIKey(types.ProviderGemini))
	assert.Equal(t, "a", s.APIKey(types.ProviderAnthropic))
	assert.Equal(t, "", Store{}.APIKey(types.ProviderGemini))
	assert.Equal(t, "gemini-api-key", KeyName(types.ProviderGemini))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
