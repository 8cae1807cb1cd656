package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/issuepage/internal/output"
)

// RunContext executes a git command in dir with the given arguments.
// An empty dir means the process working directory.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", ErrGitNotFound)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// RepoRoot returns the root directory of the git repository containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	root, err := RunContext(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// ProjectRoot returns the repository root containing dir, or dir itself when
// dir is not inside a repository or git is unavailable.
func ProjectRoot(ctx context.Context, dir string) string {
	root, err := RepoRoot(ctx, dir)
	if err != nil {
		return dir
	}
	return root
}
