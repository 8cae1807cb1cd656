package issue

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gorewood/issuepage/internal/output"
)

// maxLineSize bounds a single record line. Descriptions can be long.
const maxLineSize = 16 * 1024 * 1024

// ErrNotFound is wrapped by Load when the issues file does not exist.
var ErrNotFound = errors.New("issues file not found")

// Load reads an issues log and returns its records in file order.
// Blank lines are skipped. Every other line must decode as one record; the
// first line that does not aborts the load and nothing is returned.
func Load(path string) ([]*Issue, error) {
	// #nosec G304 -- path is resolved by the CLI
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserErrorWithCause(
				fmt.Sprintf("%s: %s", ErrNotFound.Error(), path),
				fmt.Errorf("%w: %w", ErrNotFound, err))
		}
		return nil, output.NewSystemErrorWithCause("failed to open issues file: "+path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var issues []*Issue
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, parseErr := parseLine(line)
		if parseErr != nil {
			return nil, output.NewUserErrorWithCause(
				fmt.Sprintf("invalid record at %s line %d: %v", path, lineNum, parseErr), parseErr)
		}
		issues = append(issues, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read issues file: "+path, err)
	}

	return issues, nil
}

// errNotObject rejects lines holding a JSON value other than an object.
var errNotObject = errors.New("record is not a JSON object")

// parseLine decodes one record, applying defaults for absent fields.
// line must be non-empty and trimmed.
func parseLine(line []byte) (*Issue, error) {
	if line[0] != '{' {
		return nil, errNotObject
	}

	rec := &Issue{Priority: DefaultPriority}
	if err := json.Unmarshal(line, rec); err != nil {
		return nil, fmt.Errorf("parsing issue JSON: %w", err)
	}
	return rec, nil
}
