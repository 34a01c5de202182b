package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
)

// IsWorkTree reports whether the client directory is inside a git work tree.
func (c *Client) IsWorkTree(ctx context.Context) bool {
	out, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// StageAll stages all changes, including untracked files
func (c *Client) StageAll(ctx context.Context) error {
	if _, err := c.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all: %w", err)
	}
	return nil
}

// ResetIndex unstages everything, leaving the working tree untouched
func (c *Client) ResetIndex(ctx context.Context) error {
	if _, err := c.run(ctx, "reset", "-q"); err != nil {
		return fmt.Errorf("failed to unstage: %w", err)
	}
	return nil
}

// Stage stages the given paths, including deletions
func (c *Client) Stage(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "-A", "--"}, paths...)
	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

// Commit creates a commit with the given message. When paths are given only
// those paths are committed.
func (c *Client) Commit(ctx context.Context, message string, paths ...string) error {
	args := []string{"commit", "-m", message}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// Remove deletes a tracked path from the index and the working tree
func (c *Client) Remove(ctx context.Context, path string) error {
	if _, err := c.run(ctx, "rm", "-q", "--", path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Push publishes committed history. Empty remote or branch defer to git's
// push configuration.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	args := []string{"push"}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}
	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	return nil
}

// CurrentBranch returns the checked out branch and its configured remote
func (c *Client) CurrentBranch(ctx context.Context) (models.Branch, error) {
	out, err := c.run(ctx, "branch", "--show-current")
	if err != nil {
		return models.Branch{}, fmt.Errorf("failed to get current branch: %w", err)
	}

	branch := models.Branch{Name: strings.TrimSpace(out)}
	if branch.Detached() {
		return branch, nil
	}

	if remote, err := c.run(ctx, "config", "--get", "branch."+branch.Name+".remote"); err == nil {
		branch.Remote = strings.TrimSpace(remote)
	}
	if upstream, err := c.run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}"); err == nil {
		branch.Upstream = strings.TrimSpace(upstream)
	}

	return branch, nil
}

// Toplevel returns the absolute path of the work tree root. Porcelain status
// paths are relative to it.
func (c *Client) Toplevel(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find work tree root: %w", err)
	}
	return strings.TrimSpace(out), nil
}
