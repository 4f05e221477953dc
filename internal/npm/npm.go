// Package npm wraps the npm CLI: a blocking project install and detached
// global installs for task-runner CLIs.
package npm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client runs npm commands through the CLI.
type Client struct {
	Path string // npm binary, usually just "npm"
}

// Install runs `npm install` inside dir, blocking until it completes.
func (c *Client) Install(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, c.Path, "install")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npm install: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// InstallGlobal starts `npm install -g pkg` detached in its own session and
// releases the process handle. Best-effort by design: completion is never
// awaited and success is never observed — the installed tool is only needed
// by a later, manual developer action.
func (c *Client) InstallGlobal(pkg string) error {
	cmd := exec.Command(c.Path, "install", "-g", pkg)
	cmd.SysProcAttr = sessionAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting npm install -g %s: %w", pkg, err)
	}
	return cmd.Process.Release()
}

// Validate checks that the npm binary is reachable.
func (c *Client) Validate() error {
	if _, err := exec.LookPath(c.Path); err != nil {
		return fmt.Errorf("npm not found at %q: %w", c.Path, err)
	}
	return nil
}
