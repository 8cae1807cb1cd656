package export

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorewood/issuepage/internal/category"
	"github.com/gorewood/issuepage/internal/issue"
)

// Page defaults.
const (
	DefaultLayout      = "page"
	DefaultTitle       = "Project Issues"
	DefaultPermalink   = "/issues/"
	DefaultIntro       = "This page is auto-generated from the [Beads](https://github.com/beads-ai/beads) issue tracker."
	DefaultClosedLimit = 20
)

// Closed-table title truncation: titles longer than maxClosedTitle runes are
// cut to truncatedTitle runes plus an ellipsis.
const (
	maxClosedTitle = 60
	truncatedTitle = 57
)

// PageOptions configures RenderPage. Zero values fall back to the defaults.
type PageOptions struct {
	FrontMatter FrontMatter
	Heading     string
	Intro       string
	ClosedLimit int
	Classifier  *category.Classifier
	Now         func() time.Time
}

// withDefaults fills unset options.
func (o PageOptions) withDefaults() PageOptions {
	if o.FrontMatter.Layout == "" {
		o.FrontMatter.Layout = DefaultLayout
	}
	if o.FrontMatter.Title == "" {
		o.FrontMatter.Title = DefaultTitle
	}
	if o.FrontMatter.Permalink == "" {
		o.FrontMatter.Permalink = DefaultPermalink
	}
	if o.Heading == "" {
		o.Heading = o.FrontMatter.Title
	}
	if o.Intro == "" {
		o.Intro = DefaultIntro
	}
	if o.ClosedLimit <= 0 {
		o.ClosedLimit = DefaultClosedLimit
	}
	if o.Classifier == nil {
		o.Classifier = category.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// page holds the partitioned, ordered view of the issues being rendered.
type page struct {
	opts   PageOptions
	total  int
	open   []*issue.Issue
	closed []*issue.Issue
	groups map[string][]*issue.Issue
	labels []string
	lines  []string
}

// RenderPage renders issues as a single Markdown page.
// The input slice is not reordered.
func RenderPage(issues []*issue.Issue, opts PageOptions) (string, error) {
	opts = opts.withDefaults()

	open, closed := issue.Partition(issues)
	issue.SortOpen(open)
	issue.SortClosed(closed)
	groups := opts.Classifier.Group(open)

	p := &page{
		opts:   opts,
		total:  len(issues),
		open:   open,
		closed: closed,
		groups: groups,
		labels: category.Labels(groups),
	}

	if err := p.writeHeader(); err != nil {
		return "", err
	}
	p.writeQuickLinks()
	p.writeOpenIssues()
	p.writeRecentlyClosed()
	p.writeStatistics()
	p.writeFooter()

	return strings.Join(p.lines, "\n"), nil
}

// add appends lines to the document.
func (p *page) add(lines ...string) {
	p.lines = append(p.lines, lines...)
}

// writeHeader writes front matter, heading, intro and totals.
func (p *page) writeHeader() error {
	fm, err := marshalFrontMatter(p.opts.FrontMatter)
	if err != nil {
		return err
	}
	p.add(fm...)
	p.add(
		"",
		"# "+p.opts.Heading,
		"",
		p.opts.Intro,
		"",
		fmt.Sprintf("**Total Issues:** %d (%d open, %d closed)", p.total, len(p.open), len(p.closed)),
		"",
	)
	return nil
}

// writeQuickLinks writes one link per category with its open count.
func (p *page) writeQuickLinks() {
	links := make([]string, 0, len(p.labels))
	for _, label := range p.labels {
		links = append(links, fmt.Sprintf("[%s](#%s) (%d)", label, category.Anchor(label), len(p.groups[label])))
	}
	p.add("**Quick Links:** ", strings.Join(links, " · "))
}

// writeOpenIssues writes a section per category, categories alphabetical.
func (p *page) writeOpenIssues() {
	p.add("", "---", "", "## Open Issues", "")

	for _, label := range p.labels {
		p.add(fmt.Sprintf("### %s {#%s}", label, category.Anchor(label)), "")
		for _, rec := range p.groups[label] {
			p.writeIssue(rec)
		}
	}
}

// writeIssue writes the heading, metadata and body of one open issue.
func (p *page) writeIssue(rec *issue.Issue) {
	p.add(
		fmt.Sprintf("#### %s %s {#%s}", rec.Badge(), rec.DisplayTitle(), issueAnchor(rec.ID)),
		"",
		fmt.Sprintf("**ID:** `%s` | **Priority:** %s | **Created:** %s",
			rec.ID, rec.PriorityLabel(), FormatDate(rec.CreatedAt)),
		"",
	)

	if rec.Description != "" {
		p.add(rec.Description, "")
	}
	if rec.Notes != "" {
		p.add("**Notes:** "+rec.Notes, "")
	}
	if blocking := rec.BlockingIDs(); len(blocking) > 0 {
		links := make([]string, 0, len(blocking))
		for _, id := range blocking {
			links = append(links, fmt.Sprintf("[`%s`](#%s)", id, issueAnchor(id)))
		}
		p.add("**Depends on:** "+strings.Join(links, ", "), "")
	}

	p.add("---", "")
}

// writeRecentlyClosed writes the capped table of most recently closed issues.
func (p *page) writeRecentlyClosed() {
	if len(p.closed) == 0 {
		return
	}

	p.add(
		"## Recently Closed",
		"",
		"| Issue | Title | Closed |",
		"|-------|-------|--------|",
	)

	shown := p.closed[:min(len(p.closed), p.opts.ClosedLimit)]
	for _, rec := range shown {
		p.add(fmt.Sprintf("| `%s` | %s | %s |", rec.ID, truncateTitle(rec.DisplayTitle()), FormatDate(rec.ClosedAt)))
	}

	if extra := len(p.closed) - len(shown); extra > 0 {
		p.add("", fmt.Sprintf("*...and %d more closed issues*", extra))
	}
	p.add("")
}

// writeStatistics writes open-issue counts by priority and by category.
func (p *page) writeStatistics() {
	p.add(
		"---",
		"",
		"## Statistics",
		"",
		"### By Priority",
		"",
		"| Priority | Count |",
		"|----------|-------|",
	)

	byPriority := issue.CountByPriority(p.open)
	priorities := make([]int, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	slices.Sort(priorities)
	for _, priority := range priorities {
		p.add(fmt.Sprintf("| %s | %d |", issue.PriorityLabel(priority), byPriority[priority]))
	}

	p.add(
		"",
		"### By Category",
		"",
		"| Category | Count |",
		"|----------|-------|",
	)
	for _, label := range p.labels {
		p.add(fmt.Sprintf("| %s | %d |", label, len(p.groups[label])))
	}
}

// writeFooter writes the generation timestamp and the trailing newline.
func (p *page) writeFooter() {
	p.add(
		"",
		"---",
		"",
		fmt.Sprintf("*Last updated: %s*", p.opts.Now().Format("2006-01-02 15:04")),
		"",
	)
}

// issueAnchor returns the in-page anchor for an issue ID.
func issueAnchor(id string) string {
	return "issue-" + id
}

// truncateTitle shortens titles for the closed-issues table.
func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= maxClosedTitle {
		return title
	}
	return firstRunes(title, truncatedTitle) + "..."
}

// firstRunes returns at most n runes from the start of s.
func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
