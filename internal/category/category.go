// Package category assigns display categories to issues by matching their
// titles against an ordered rule list.
package category

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gorewood/issuepage/internal/issue"
)

// Other is the category for titles no rule matches.
const Other = "Other"

// Rule maps a title fragment to a category label.
type Rule struct {
	Match string `yaml:"match"`
	Label string `yaml:"label"`
}

// DefaultRules returns the built-in rule list, in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Match: "Boot:", Label: "Boot Sequence"},
		{Match: "Sound:", Label: "Sound & Audio"},
		{Match: "Video:", Label: "Video & Display"},
		{Match: "Images:", Label: "Image Extraction"},
		{Match: "Update:", Label: "Firmware Update"},
		{Match: "SubCPU:", Label: "Sub CPU"},
		{Match: "HDAE5000:", Label: "HD-AE5000 Expansion"},
		{Match: "FeatureDemo:", Label: "Feature Demo"},
		{Match: "Control Panel", Label: "Control Panel"},
		{Match: "maincpu:", Label: "Main CPU ROM"},
		{Match: "subcpu:", Label: "Sub CPU ROM"},
		{Match: "table_data:", Label: "Table Data ROM"},
	}
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier from rules. Rules with an empty match
// or label are rejected. A nil or empty slice classifies everything as Other.
func NewClassifier(rules []Rule) (*Classifier, error) {
	var problems []error
	for i, rule := range rules {
		if rule.Match == "" {
			problems = append(problems, fmt.Errorf("rule %d: match is empty", i+1))
		}
		if rule.Label == "" {
			problems = append(problems, fmt.Errorf("rule %d (%q): label is empty", i+1, rule.Match))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid category rules: %w", errors.Join(problems...))
	}
	return &Classifier{rules: slices.Clone(rules)}, nil
}

// Default returns a Classifier over DefaultRules.
func Default() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Rules returns a copy of the classifier rules in evaluation order.
func (c *Classifier) Rules() []Rule {
	return slices.Clone(c.rules)
}

// Classify returns the label of the first rule whose match the title starts
// with or contains, or Other.
func (c *Classifier) Classify(title string) string {
	for _, rule := range c.rules {
		if strings.HasPrefix(title, rule.Match) || strings.Contains(title, rule.Match) {
			return rule.Label
		}
	}
	return Other
}

// Group buckets issues by category, keeping the order of issues within each
// bucket.
func (c *Classifier) Group(issues []*issue.Issue) map[string][]*issue.Issue {
	groups := make(map[string][]*issue.Issue)
	for _, rec := range issues {
		label := c.Classify(rec.Title)
		groups[label] = append(groups[label], rec)
	}
	return groups
}

// Labels returns the group labels in alphabetical order.
func Labels(groups map[string][]*issue.Issue) []string {
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// Anchor converts a label to a URL fragment: lowercase, spaces become
// hyphens, ampersands are dropped, then doubled hyphens are collapsed once.
func Anchor(label string) string {
	anchor := strings.ToLower(label)
	anchor = strings.ReplaceAll(anchor, " ", "-")
	anchor = strings.ReplaceAll(anchor, "&", "")
	return strings.ReplaceAll(anchor, "--", "-")
}
