package git

import "errors"

// ErrGitNotFound is the cause of errors returned when the git executable
// cannot be started.
var ErrGitNotFound = errors.New("git executable not found")
