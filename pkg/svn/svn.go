package svn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// RemoteLatest pins a query to the newest revision on the remote repository
// instead of the local checkout.
const RemoteLatest = "HEAD"

// Metadata items understood by `svn info --show-item`.
const (
	itemRevision            = "revision"
	itemLastChangedRevision = "last-changed-revision"
)

var (
	// ErrClientNotFound means the svn binary could not be located.
	ErrClientNotFound = errors.New("svn not found in PATH")
	// ErrUnparsableOutput means the client exited cleanly but its output
	// was not a single integer.
	ErrUnparsableOutput = errors.New("could not parse svn info output")
)

// ClientError carries the diagnostic message from a non-zero client exit.
type ClientError struct {
	Msg string
}

func (e *ClientError) Error() string {
	return e.Msg
}

// Runner executes the svn client in a working directory and returns its
// captured streams. Substituting a fake Runner keeps the rest of the tool
// testable without a client binary present.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs the real client via os/exec.
type ExecRunner struct {
	// Bin overrides the client binary name. Empty means "svn".
	Bin string
}

func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	bin := r.Bin
	if bin == "" {
		bin = "svn"
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Client answers single-value revision queries about files in a working copy.
type Client struct {
	Runner Runner
}

func NewClient() *Client {
	return &Client{Runner: ExecRunner{}}
}

// Info asks the client for one metadata item of path, optionally pinned to
// rev, and parses the answer as a revision number. The client runs with its
// working directory set to the file's parent folder.
func (c *Client) Info(ctx context.Context, item, path, rev string) (int, error) {
	args := []string{"info", "--show-item", item}
	if rev != "" {
		args = append(args, "-r", rev)
	}
	args = append(args, path)

	stdout, stderr, err := c.Runner.Run(ctx, filepath.Dir(path), args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return 0, ErrClientNotFound
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr)
			if msg == "" {
				msg = strings.TrimSpace(stdout)
			}
			if msg == "" {
				msg = "svn info failed"
			}
			return 0, &ClientError{Msg: msg}
		}

		return 0, fmt.Errorf("run svn: %w", err)
	}

	value, parseErr := strconv.Atoi(strings.TrimSpace(stdout))
	if parseErr != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableOutput, stdout)
	}

	return value, nil
}

// WorkingRevision reports the revision of the local checked-out copy of path.
func (c *Client) WorkingRevision(ctx context.Context, path string) (int, error) {
	return c.Info(ctx, itemRevision, path, "")
}

// LastChangedRevision reports the most recent revision in which path's
// content changed. Pass RemoteLatest as rev to evaluate against the remote
// repository head; pass "" for the local checkout.
func (c *Client) LastChangedRevision(ctx context.Context, path, rev string) (int, error) {
	return c.Info(ctx, itemLastChangedRevision, path, rev)
}
