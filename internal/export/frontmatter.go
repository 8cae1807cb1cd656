package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatterDelim opens and closes the front matter block.
const frontMatterDelim = "---"

// FrontMatter is the layout metadata read by the static-site generator.
// Field order is the emitted key order.
type FrontMatter struct {
	Layout    string `yaml:"layout"`
	Title     string `yaml:"title"`
	Permalink string `yaml:"permalink"`
}

// marshalFrontMatter returns the front matter block lines, delimiters included.
func marshalFrontMatter(fm FrontMatter) ([]string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}

	lines := []string{frontMatterDelim}
	lines = append(lines, strings.Split(strings.TrimRight(string(data), "\n"), "\n")...)
	return append(lines, frontMatterDelim), nil
}

// StripFrontMatter returns doc without its leading front matter block.
// Documents without front matter are returned unchanged.
func StripFrontMatter(doc string) string {
	if !strings.HasPrefix(doc, frontMatterDelim+"\n") {
		return doc
	}

	rest := doc[len(frontMatterDelim)+1:]
	_, body, ok := strings.Cut(rest, "\n"+frontMatterDelim+"\n")
	if !ok {
		return doc
	}
	return strings.TrimLeft(body, "\n")
}
