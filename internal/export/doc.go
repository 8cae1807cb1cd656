// Package export renders issues as a Markdown page and writes it to disk.
//
// # Rendering
//
// RenderPage turns the full list of loaded issues into one document:
//
//	doc, err := export.RenderPage(issues, export.PageOptions{
//		Classifier: classifier,
//		Now:        time.Now,
//	})
//
// Open issues are sorted by (priority, title) and grouped by category;
// closed issues are sorted by closed_at, newest first. The page layout is:
//
//	---
//	layout: page
//	title: Project Issues
//	permalink: /issues/
//	---
//
//	# Project Issues
//
//	**Total Issues:** 2 (1 open, 1 closed)
//
//	**Quick Links:**
//	[Boot Sequence](#boot-sequence) (1)
//
//	## Open Issues
//	### Boot Sequence {#boot-sequence}
//	#### 🔴 Boot: fix checksum {#issue-bd-1}
//	...
//	## Recently Closed
//	| Issue | Title | Closed |
//	...
//	## Statistics
//	...
//	*Last updated: 2024-02-02 09:30*
//
// Only the footer timestamp depends on the clock, so a fixed Now makes the
// output byte-for-byte reproducible.
//
// # Writing
//
// WritePage creates the parent directories and overwrites the target file.
// Failures are returned as output.ExitError system errors.
package export
