// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container runs one-shot container images that read a document on
// stdin and write text on stdout. Docker is preferred; podman is the fallback.
package container

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

// Runtime runs filter-style containers.
type Runtime interface {
	// Name returns the runtime binary name ("docker" or "podman").
	Name() string

	// Available reports whether the binary is on PATH and its daemon answers.
	Available() bool

	// ImageExists returns nil when image is present locally.
	ImageExists(image string) error

	// Filter runs image with stdin attached, copying its stdout to stdout.
	// The container is removed when it exits.
	Filter(ctx context.Context, image string, stdin io.Reader, stdout io.Writer) error
}

// commander abstracts process execution for testing.
type commander interface {
	LookPath(file string) (string, error)
	Quiet(name string, args ...string) error
	Pipe(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

type osCommander struct{}

func (osCommander) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osCommander) Quiet(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osCommander) Pipe(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// cli implements Runtime for docker and podman, which differ only in the
// binary name and the image check subcommand.
type cli struct {
	bin        string
	imageCheck []string
	cmd        commander
}

func (c *cli) Name() string { return c.bin }

func (c *cli) Available() bool {
	if _, err := c.cmd.LookPath(c.bin); err != nil {
		return false
	}
	return c.cmd.Quiet(c.bin, "info") == nil
}

func (c *cli) ImageExists(image string) error {
	args := append(append([]string{}, c.imageCheck...), image)
	if err := c.cmd.Quiet(c.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, c.bin, err)
	}
	return nil
}

func (c *cli) Filter(ctx context.Context, image string, stdin io.Reader, stdout io.Writer) error {
	var stderr bytes.Buffer
	args := []string{"run", "--rm", "-i", "--network", "none", image}
	if err := c.cmd.Pipe(ctx, c.bin, args, stdin, stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s run %s: %w: %s", c.bin, image, err, msg)
		}
		return fmt.Errorf("%s run %s: %w", c.bin, image, err)
	}
	return nil
}

func newDocker(cmd commander) *cli {
	return &cli{bin: binDocker, imageCheck: []string{"image", "inspect"}, cmd: cmd}
}

func newPodman(cmd commander) *cli {
	return &cli{bin: binPodman, imageCheck: []string{"image", "exists"}, cmd: cmd}
}

// Detect returns docker when it is operational, otherwise podman.
func Detect() (Runtime, error) {
	return detect(osCommander{})
}

func detect(cmd commander) (Runtime, error) {
	for _, rt := range []*cli{newDocker(cmd), newPodman(cmd)} {
		if rt.Available() {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither %s nor %s is operational", binDocker, binPodman)
}
