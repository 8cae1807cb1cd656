// Package issue provides the issue record schema, loading, and ordering for
// the issuepage exporter.
package issue

import (
	"encoding/json"
	"fmt"
)

// Status values that place an issue in the open or closed partition.
// Any other status (in_progress, blocked, tombstone, ...) is in neither.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// DependencyBlocks is the only dependency type rendered on the page.
const DependencyBlocks = "blocks"

// DefaultPriority is applied when a record has no priority field.
const DefaultPriority = 99

// untitled is displayed for records without a title.
const untitled = "Untitled"

// priorityLabels maps the named priority tiers (0 = highest).
var priorityLabels = map[int]string{
	0: "Critical",
	1: "High",
	2: "Medium",
	3: "Low",
}

// Issue is one record of the issues log.
// Dates are kept as the raw strings from the log: closed issues are ordered
// by string comparison and malformed dates must not fail the load.
type Issue struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Status       string       `json:"status"`
	Priority     int          `json:"priority"`
	Description  string       `json:"description,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty"`
	ClosedAt     string       `json:"closed_at,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`

	// TitleSet records that the title key was present, even if empty.
	TitleSet bool `json:"-"`
}

// UnmarshalJSON decodes a record, keeping field values that the JSON does not
// mention and noting whether a title was given.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type record Issue
	var aux struct {
		record
		Title *string `json:"title"`
	}
	aux.record = record(*i)
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*i = Issue(aux.record)
	if aux.Title != nil {
		i.Title = *aux.Title
		i.TitleSet = true
	}
	return nil
}

// Dependency is a relation from an issue to another issue.
type Dependency struct {
	Type        string `json:"type"`
	DependsOnID string `json:"depends_on_id"`
}

// IsOpen reports whether the issue status is exactly "open".
func (i *Issue) IsOpen() bool {
	return i.Status == StatusOpen
}

// IsClosed reports whether the issue status is exactly "closed".
func (i *Issue) IsClosed() bool {
	return i.Status == StatusClosed
}

// DisplayTitle returns the title, or "Untitled" for records without a title
// key. An explicitly empty title stays empty.
func (i *Issue) DisplayTitle() string {
	if i.Title == "" && !i.TitleSet {
		return untitled
	}
	return i.Title
}

// PriorityLabel returns the display label for the issue priority.
func (i *Issue) PriorityLabel() string {
	return PriorityLabel(i.Priority)
}

// Badge returns the indicator symbol for the issue priority tier.
func (i *Issue) Badge() string {
	switch i.Priority {
	case 0:
		return "🔴"
	case 1:
		return "🟠"
	case 2:
		return "🟡"
	default:
		return "⚪"
	}
}

// BlockingIDs returns the targets of all "blocks" dependencies, in order.
func (i *Issue) BlockingIDs() []string {
	var ids []string
	for _, dep := range i.Dependencies {
		if dep.Type == DependencyBlocks {
			ids = append(ids, dep.DependsOnID)
		}
	}
	return ids
}

// PriorityLabel returns "Critical", "High", "Medium" or "Low" for priorities
// 0-3 and "P<n>" for anything else.
func PriorityLabel(priority int) string {
	if label, ok := priorityLabels[priority]; ok {
		return label
	}
	return fmt.Sprintf("P%d", priority)
}
