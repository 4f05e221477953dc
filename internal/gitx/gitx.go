// Package gitx wraps the git CLI invocations the scaffolder needs.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client runs git commands through the CLI.
type Client struct {
	Path string // git binary, usually just "git"
}

// Init runs `git init` inside dir, blocking until it completes.
func (c *Client) Init(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, c.Path, "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git init: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Validate checks that the git binary is reachable.
func (c *Client) Validate() error {
	if _, err := exec.LookPath(c.Path); err != nil {
		return fmt.Errorf("git not found at %q: %w", c.Path, err)
	}
	return nil
}
