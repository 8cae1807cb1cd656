// Package git locates the repository that owns the issues log.
//
// issuepage resolves its default input (.beads/issues.jsonl) and output
// paths against the repository root, the same way the tool behaves when run
// from any subdirectory of a project:
//
//	root := git.ProjectRoot(ctx, cwd) // falls back to cwd outside a repo
//
// Commands are run by shelling out to the git executable. Failures are
// returned as *output.ExitError system errors (exit code 2); a missing git
// binary wraps ErrGitNotFound.
package git
