// Package git runs the git command-line tool and parses its output.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Johannes-Berggren/commitgoblin/internal/log"
	"go.uber.org/zap"
)

// Runner executes one git invocation in dir and returns its stdout.
// A non-nil error is always a *CommandError.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CommandError reports a git invocation that could not start or exited non-zero.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int // -1 when the process never ran
	Err      error
}

func (e *CommandError) Error() string {
	command := "git " + strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", command, e.Stderr)
	}
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s: exit status %d", command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs the real git binary. Pathspecs are literal, so a path
// taken from the status listing always names exactly that file.
type ExecRunner struct {
	Binary string // defaults to "git"
}

func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}

	// #nosec G204 -- arguments are built by this package, never shell interpolated
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_LITERAL_PATHSPECS=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Args:     append([]string(nil), args...),
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: -1,
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		return stdout.String(), cmdErr
	}

	return stdout.String(), nil
}

// Client issues git commands against one working tree.
type Client struct {
	dir     string
	runner  Runner
	timeout time.Duration
}

// NewClient returns a Client for the working tree at dir. A nil runner uses ExecRunner.
func NewClient(dir string, runner Runner) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{dir: dir, runner: runner}
}

// SetTimeout bounds every git invocation. Zero means no limit.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Dir returns the working tree directory the client runs in.
func (c *Client) Dir() string {
	return c.dir
}

// run executes one git command. Cancelling ctx never interrupts a command
// that has already started; only the configured timeout does.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger := log.L().With(zap.Strings("args", args), zap.String("dir", c.dir))
	logger.Debug("run")

	out, err := c.runner.Run(ctx, c.dir, args...)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			logger.Debug("error", zap.Int("exit", cmdErr.ExitCode), zap.String("stderr", cmdErr.Stderr))
		} else {
			logger.Debug("error", zap.Error(err))
		}
		return out, err
	}

	logger.Debug("ok")
	return out, nil
}
