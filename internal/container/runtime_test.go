// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommander answers LookPath and Quiet from tables and delegates Pipe.
type fakeCommander struct {
	onPath map[string]bool
	ok     map[string]bool // "bin arg1 arg2" -> Quiet succeeds
	pipe   func(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

func (f *fakeCommander) LookPath(file string) (string, error) {
	if f.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeCommander) Quiet(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if f.ok[key] {
		return nil
	}
	return errors.New("failed: " + key)
}

func (f *fakeCommander) Pipe(_ context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if f.pipe == nil {
		return nil
	}
	return f.pipe(name, args, stdin, stdout, stderr)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *fakeCommander
		wantName string
		wantErr  bool
	}{
		{
			name: "docker available",
			cmd: &fakeCommander{
				onPath: map[string]bool{"docker": true},
				ok:     map[string]bool{"docker info": true},
			},
			wantName: "docker",
		},
		{
			name: "podman when docker missing",
			cmd: &fakeCommander{
				onPath: map[string]bool{"podman": true},
				ok:     map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "docker daemon down falls back to podman",
			cmd: &fakeCommander{
				onPath: map[string]bool{"docker": true, "podman": true},
				ok:     map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "docker preferred when both work",
			cmd: &fakeCommander{
				onPath: map[string]bool{"docker": true, "podman": true},
				ok:     map[string]bool{"docker info": true, "podman info": true},
			},
			wantName: "docker",
		},
		{
			name:    "nothing available",
			cmd:     &fakeCommander{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detect(tt.cmd)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no container runtime available")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rt.Name())
		})
	}
}

func TestImageExists(t *testing.T) {
	cmd := &fakeCommander{ok: map[string]bool{
		"docker image inspect markitdown:latest": true,
		"podman image exists markitdown:latest":  true,
	}}

	assert.NoError(t, newDocker(cmd).ImageExists("markitdown:latest"))
	assert.NoError(t, newPodman(cmd).ImageExists("markitdown:latest"))

	err := newDocker(cmd).ImageExists("other:latest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "other:latest")
}

func TestFilter(t *testing.T) {
	cmd := &fakeCommander{
		pipe: func(name string, args []string, stdin io.Reader, stdout, _ io.Writer) error {
			assert.Equal(t, "docker", name)
			assert.Equal(t, []string{"run", "--rm", "-i", "--network", "none", "markitdown:latest"}, args)
			data, _ := io.ReadAll(stdin)
			_, _ = stdout.Write([]byte("text of " + string(data)))
			return nil
		},
	}

	var out bytes.Buffer
	err := newDocker(cmd).Filter(context.Background(), "markitdown:latest", strings.NewReader("lec1"), &out)
	require.NoError(t, err)
	assert.Equal(t, "text of lec1", out.String())
}

func TestFilter_IncludesStderrInError(t *testing.T) {
	cmd := &fakeCommander{
		pipe: func(_ string, _ []string, _ io.Reader, _, stderr io.Writer) error {
			_, _ = stderr.Write([]byte("unsupported file\n"))
			return errors.New("exit status 1")
		},
	}

	err := newPodman(cmd).Filter(context.Background(), "markitdown:latest", strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podman run markitdown:latest")
	assert.Contains(t, err.Error(), "unsupported file")
}
