package export

import (
	"os"
	"path/filepath"

	"github.com/gorewood/issuepage/internal/output"
)

// File modes for the generated page and its parent directories.
const (
	dirMode  = 0o755
	pageMode = 0o644
)

// WritePage writes content to path, creating parent directories as needed
// and replacing any existing file.
func WritePage(path string, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return output.NewSystemErrorWithCause("failed to create output directory: "+dir, err)
		}
	}

	// #nosec G306 -- the page is published content
	if err := os.WriteFile(path, []byte(content), pageMode); err != nil {
		return output.NewSystemErrorWithCause("failed to write page: "+path, err)
	}
	return nil
}
